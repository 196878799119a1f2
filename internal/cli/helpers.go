package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/thenoetrevino/trench/internal/models"
)

// ParseID parses a user-typed row id
func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%q: %w", s, models.ErrInvalidID)
	}
	return id, nil
}

// ParseNumber parses a user-typed amount or hour count. Range checks are
// left to the services.
func ParseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) {
		return 0, fmt.Errorf("%q: %w", s, models.ErrInvalidNumber)
	}
	return f, nil
}
