// Package toolutil provides shared helper functions for HiringHub MCP tools.
package toolutil

// NormLimit clamps a caller-supplied limit: non-positive or over-max values
// fall back to def.
func NormLimit(n, def, max int) int {
	if n <= 0 || n > max {
		return def
	}
	return n
}

// FirstNonEmpty returns the first non-empty string, or "".
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
