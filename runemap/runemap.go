/*
Package runemap maps code points to small dense IDs.

The map is a two-level page table over the Basic Multilingual Plane:

  - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
  - Pages is a flat array of NumPages*256 entries.

Lookup costs two array reads. Arabic letters and marks all live in block
U+06xx, so a transcription table touches a single page (512 bytes).
Code points outside the BMP are never mapped.
*/
package runemap

// Map is a paged rune → ID map. The zero value is an empty map.
// An ID of 0 means "absent"; callers must use IDs ≥ 1.
type Map struct {
	top   [256]uint16 // page index (1-based); 0 means none
	pages []uint16    // flat: NumPages*256
	size  int
}

// Lookup returns the ID stored for r, or 0 if r is not mapped.
func (m *Map) Lookup(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	pi := m.top[r>>8]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << 8 // *256
	return m.pages[base+int(r&0xFF)]
}

// Has reports whether r is mapped.
func (m *Map) Has(r rune) bool {
	return m.Lookup(r) != 0
}

// Set maps r to id. Setting id 0 clears the entry. It returns false if r
// is outside the BMP.
func (m *Map) Set(r rune, id uint16) bool {
	if r < 0 || r > 0xFFFF {
		return false
	}
	hi := uint16(r >> 8)
	pi := m.top[hi]
	if pi == 0 {
		if id == 0 {
			return true
		}
		pi = m.ensurePage(hi)
	}
	slot := int(pi-1)<<8 + int(r&0xFF)
	switch old := m.pages[slot]; {
	case old == 0 && id != 0:
		m.size++
	case old != 0 && id == 0:
		m.size--
	}
	m.pages[slot] = id
	return true
}

// Len returns the number of mapped runes.
func (m *Map) Len() int { return m.size }

// NumPages returns the number of allocated pages.
func (m *Map) NumPages() int { return len(m.pages) >> 8 }

func (m *Map) ensurePage(hi uint16) uint16 {
	if pi := m.top[hi]; pi != 0 {
		return pi
	}
	m.pages = append(m.pages, make([]uint16, 256)...)
	pi := uint16(len(m.pages) >> 8) // number of pages, 1-based index
	m.top[hi] = pi
	return pi
}
