package callbacks

import "strings"

// Callback data travels as "<key>|<payload>". The key selects the handler
// through the registry, the payload is handler-specific.

const sep = "|"

// Join builds callback data from a handler key and an optional payload.
func Join(key, payload string) string {
	if payload == "" {
		return key
	}
	return key + sep + payload
}

// Split parses callback data into a handler key and payload.
// Telegram prefixes inline button data with "\f" which is stripped here.
func Split(data string) (key, payload string) {
	data = strings.TrimPrefix(data, "\f")
	key, payload, _ = strings.Cut(data, sep)
	return key, payload
}
