package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound is returned by Get when no row matches.
var ErrNotFound = errors.New("store: record not found")

// Record is one solved or unsolvable hand.
type Record struct {
	Numbers    [4]int64
	Target     int64
	Solved     bool
	Expression string // infix, empty when unsolved
	Postfix    string // winning candidate, empty when unsolved
	Shape      string
	Examined   int
	RunID      string
	CreatedAt  time.Time
}

// formatNumbers encodes a hand as "a,b,c,d".
func formatNumbers(nums [4]int64) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.FormatInt(n, 10)
	}
	return strings.Join(parts, ",")
}

// parseNumbers decodes formatNumbers output.
func parseNumbers(s string) ([4]int64, error) {
	var nums [4]int64
	parts := strings.Split(s, ",")
	if len(parts) != len(nums) {
		return nums, fmt.Errorf("store: malformed numbers %q", s)
	}
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nums, fmt.Errorf("store: malformed numbers %q: %w", s, err)
		}
		nums[i] = n
	}
	return nums, nil
}
