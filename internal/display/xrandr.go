package display

import (
	"os/exec"
	"strings"

	"golang.org/x/exp/slices"
)

var runXrandr = func(args ...string) (string, error) {
	out, err := exec.Command("xrandr", args...).Output()
	return string(out), err
}

// detectXrandr queries connected outputs via `xrandr --query` and enriches
// them with monitor names from `xrandr --prop`. It degrades instead of
// failing: a missing or broken xrandr yields FallbackDisplays.
func detectXrandr() []Display {
	queryOut, err := runXrandr("--query")
	if err != nil {
		return FallbackDisplays()
	}

	displays := parseQuery(queryOut)
	if len(displays) == 0 {
		return []Display{{Port: "HDMI-1"}, {Port: "DP-1"}}
	}

	// Monitor names are best effort, --prop failing is fine.
	if propOut, err := runXrandr("--prop"); err == nil {
		for i := range displays {
			displays[i].Name = monitorNameFromProps(propOut, displays[i].Port)
		}
	}

	return displays
}

// parseQuery extracts (port, resolution) pairs from `xrandr --query` output.
func parseQuery(out string) []Display {
	var displays []Display
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, " connected") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		d := Display{Port: fields[0]}
		for _, field := range fields[1:] {
			// Active mode looks like 1920x1080+0+0.
			if strings.Contains(field, "x") && (strings.Contains(field, "+") || isDigit(field[0])) {
				d.Resolution = strings.SplitN(field, "+", 2)[0]
				break
			}
		}

		displays = append(displays, d)
	}
	return displays
}

// monitorNameFromProps scans `xrandr --prop` output for the given port and
// returns its monitor name, preferring the structured "Monitor name:"
// property and falling back to the EDID descriptor blocks.
func monitorNameFromProps(out, port string) string {
	lines := strings.Split(out, "\n")

	for i, line := range lines {
		if !strings.Contains(line, port) || !strings.Contains(line, " connected") {
			continue
		}

		limit := min(i+10, len(lines))
		for j := i + 1; j < limit; j++ {
			next := strings.TrimSpace(lines[j])

			if name, ok := strings.CutPrefix(next, "Monitor name:"); ok {
				return strings.TrimSpace(name)
			}

			if strings.HasPrefix(next, "EDID:") {
				var edidLines []string
				for k := j + 1; k < min(j+9, len(lines)); k++ {
					hexLine := strings.TrimSpace(lines[k])
					if !isHexLine(hexLine) {
						break
					}
					edidLines = append(edidLines, hexLine)
				}
				if len(edidLines) > 0 {
					return parseEDIDForName(edidLines)
				}
			}

			// Next output section starts at column zero.
			if next != "" && len(lines[j]) > 0 && !isSpace(lines[j][0]) {
				break
			}
		}
		break
	}

	return ""
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSpace(b byte) bool { return b == ' ' || b == '\t' }

func isHexLine(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !slices.Contains([]rune("0123456789abcdefABCDEF"), r) {
			return false
		}
	}
	return true
}
