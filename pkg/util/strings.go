package util

import "strings"

// SplitTickers splits a comma-joined ticker list, trimming blanks and dropping empty entries.
// Order and duplicates are preserved.
func SplitTickers(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
