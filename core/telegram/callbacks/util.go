package callbacks

import "strconv"

// PayloadInt parses a numeric payload, commonly a catalog index.
func PayloadInt(payload string) (int, bool) {
	n, err := strconv.Atoi(payload)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IntPayload formats a catalog index for callback data.
func IntPayload(n int) string {
	return strconv.Itoa(n)
}
