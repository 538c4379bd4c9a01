// README: Vietnamese address text folding and the island delivery blacklist.
package shipping

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldAddress normalizes Vietnamese address text for matching: lowercase,
// diacritics stripped (NFD + combining-mark removal), đ folded to d, common
// "tp."/"hcm" abbreviations expanded, whitespace collapsed.
func foldAddress(s string) string {
	s = strings.ToLower(s)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	// NFD does not decompose đ; fold it by hand.
	s = strings.ReplaceAll(s, "đ", "d")
	s = strings.ReplaceAll(s, "tp.", " ")
	s = strings.ReplaceAll(s, "hcm", "ho chi minh")
	return strings.Join(strings.Fields(s), " ")
}

type island struct {
	Name     string
	Province string
}

// islands the store does not deliver to. Matching is by folded island name in
// the combined province+address text; matching on province alone would wrongly
// reject mainland Kiên Giang or Hải Phòng addresses.
var islands = []island{
	{Name: "Phú Quốc", Province: "Kiên Giang"},
	{Name: "Côn Đảo", Province: "Bà Rịa - Vũng Tàu"},
	{Name: "Cát Bà", Province: "Hải Phòng"},
}

// matchIsland reports the display name of the matched island destination,
// if any.
func matchIsland(province, addressLine string) (string, bool) {
	haystack := foldAddress(province + " " + addressLine)
	if haystack == "" {
		return "", false
	}
	for _, isl := range islands {
		if strings.Contains(haystack, foldAddress(isl.Name)) {
			return isl.Name, true
		}
	}
	return "", false
}
