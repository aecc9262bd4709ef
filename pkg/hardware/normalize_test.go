package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"already clean", "intel core i5 8400", "intel core i5 8400"},
		{"trademark marks", "Intel® Core™ i5-8400", "intel core i5 8400"},
		{"hyphens and dashes", "GTX-1060 — 6GB", "gtx 1060 6gb"},
		{"whitespace runs", "  AMD   Ryzen  5 ", "amd ryzen 5"},
		{"only decoration", "®™--", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestStripAlnum(t *testing.T) {
	assert.Equal(t, "i58400", stripAlnum("i5 8400"))
	assert.Equal(t, "rtx3060", stripAlnum("rtx-3060"))
	assert.Equal(t, "", stripAlnum(" -®™ "))
}
