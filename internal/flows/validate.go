package flows

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrValidation marks recoverable bad user input; the step re-prompts
// without advancing.
var ErrValidation = errors.New("invalid input")

// ParsePrice accepts a positive decimal number.
func ParsePrice(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: not a number", ErrValidation)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	return v, nil
}

// CleanID trims an id and rejects empty input.
func CleanID(text string) (string, error) {
	id := strings.TrimSpace(text)
	if id == "" {
		return "", fmt.Errorf("%w: empty id", ErrValidation)
	}
	return id, nil
}
