package hardware

import "strings"

// Vendors decorate the same part name many ways: "Intel® Core™ i5-8400",
// "i5 8400 or better". Matching works on a normalized form with the
// decoration stripped.
var decorations = strings.NewReplacer(
	"®", " ",
	"™", " ",
	"-", " ",
	"–", " ",
	"—", " ",
)

// Normalize lower-cases s, replaces trademark marks and hyphens/dashes with
// spaces, and collapses runs of whitespace. Total over all strings; the empty
// string normalizes to itself.
func Normalize(s string) string {
	return strings.Join(strings.Fields(decorations.Replace(strings.ToLower(s))), " ")
}

// stripAlnum keeps only the letters and digits of s.
func stripAlnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
