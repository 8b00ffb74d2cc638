package utils

import "strconv"

// StringToUint64 parses a numeric string, useful for IDs from URL params.
// Returns 0 when parsing fails.
func StringToUint64(str string) uint64 {
	val, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0
	}
	return val
}
