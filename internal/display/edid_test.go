package display

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildEDID returns the hex lines of a minimal 128 byte EDID block with the
// given monitor name descriptor at 0x36.
func buildEDID(t *testing.T, name string) []string {
	t.Helper()

	raw := make([]byte, 128)
	copy(raw, []byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00})

	desc := raw[0x36 : 0x36+descriptorLen]
	desc[3] = tagMonitorName

	text := []byte(name + "\x0a")
	for len(text) < 13 {
		text = append(text, ' ')
	}
	copy(desc[5:], text[:13])

	encoded := hex.EncodeToString(raw)
	var lines []string
	for i := 0; i < len(encoded); i += 32 {
		lines = append(lines, encoded[i:i+32])
	}
	return lines
}

func TestParseEDIDForName(t *testing.T) {
	lines := buildEDID(t, "LG ULTRAWIDE")
	assert.Equal(t, "LG ULTRAWIDE", parseEDIDForName(lines))
}

func TestParseEDIDForNameTrimsPadding(t *testing.T) {
	lines := buildEDID(t, "U2720Q")
	assert.Equal(t, "U2720Q", parseEDIDForName(lines))
}

func TestParseEDIDForNameMalformed(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"empty", nil},
		{"not hex", []string{"zzzz"}},
		{"too short", []string{"00ffffffffffff00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, parseEDIDForName(tt.lines))
		})
	}
}

func TestParseEDIDForNameNoNameDescriptor(t *testing.T) {
	raw := make([]byte, 128)
	lines := []string{hex.EncodeToString(raw)}
	assert.Empty(t, parseEDIDForName(lines))
}
