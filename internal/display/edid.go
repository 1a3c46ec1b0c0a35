package display

import (
	"encoding/hex"
	"strings"
	"unicode"
)

// EDID display descriptor blocks sit at fixed offsets in the base block.
var descriptorOffsets = []int{0x36, 0x48, 0x5A, 0x6C}

const (
	descriptorLen  = 18
	tagMonitorName = 0xFC
)

// parseEDIDForName decodes the raw EDID hex dump from xrandr and extracts
// the monitor name descriptor, if present. Any malformed input yields "".
func parseEDIDForName(edidLines []string) string {
	raw, err := hex.DecodeString(strings.Join(edidLines, ""))
	if err != nil || len(raw) < 128 {
		return ""
	}

	for _, offset := range descriptorOffsets {
		if offset+descriptorLen > len(raw) {
			break
		}
		desc := raw[offset : offset+descriptorLen]

		// Display descriptors start with a zero pixel clock; byte 3 is the tag.
		if desc[0] != 0x00 || desc[1] != 0x00 || desc[3] != tagMonitorName {
			continue
		}

		name := strings.TrimRight(string(desc[5:]), "\x00\x0a\x0d ")
		if name != "" && isPrintable(name) {
			return name
		}
	}

	return ""
}

func isPrintable(s string) bool {
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
