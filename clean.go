package xsampa

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const byteOrderMark = '\uFEFF'

// CleanWord prepares a raw input token for transcription: surrounding white
// space and every byte-order-mark artifact are removed.
//
// With nfc set, the token is additionally brought into Unicode normal form C.
// This composes alef or waw followed by a combining hamza into the
// corresponding hamza letter. Note that NFC also reorders stacked marks
// canonically (e.g., shadda after fatha), which changes slot order.
func CleanWord(s string, nfc bool) string {
	s = strings.ReplaceAll(s, string(byteOrderMark), "")
	s = strings.TrimSpace(s)
	if nfc {
		s = norm.NFC.String(s)
	}
	return s
}
