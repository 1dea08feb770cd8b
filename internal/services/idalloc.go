package services

import (
	"fmt"
	"strconv"
	"strings"
)

// IDAllocator issues sequential textual IDs of the form <Prefix><NNN>, with
// the numeric suffix zero-padded to at least three digits ("PR001",
// "TR042", "AR1000"). The last-inserted ID is read through the injected
// lookup, so a counter table or database sequence can replace the
// read-then-increment strategy without touching call sites.
//
// Allocation is NOT safe under concurrent writers: two allocations that
// observe the same last ID produce the same next ID, and the outcome then
// depends on whatever unique constraint the store enforces. This matches
// the deployed behavior and is covered by a test.
type IDAllocator struct {
	Prefix string
	last   func() (string, error)
}

func NewIDAllocator(prefix string, last func() (string, error)) *IDAllocator {
	return &IDAllocator{
		Prefix: prefix,
		last:   last,
	}
}

// Next returns the next free ID; <Prefix>001 when the table is empty.
func (a *IDAllocator) Next() (string, error) {
	n, err := a.LastNumber()
	if err != nil {
		return "", err
	}
	return a.Format(n + 1), nil
}

// NextBatch reserves n consecutive IDs starting from the current max+1.
func (a *IDAllocator) NextBatch(n int) ([]string, error) {
	lastNum, err := a.LastNumber()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		ids = append(ids, a.Format(lastNum+i))
	}
	return ids, nil
}

// LastNumber returns the numeric suffix of the most recent ID, 0 when the
// table is empty.
func (a *IDAllocator) LastNumber() (int, error) {
	lastID, err := a.last()
	if err != nil {
		return 0, err
	}
	if lastID == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(lastID, a.Prefix))
	if err != nil {
		return 0, fmt.Errorf("malformed id %q for prefix %q: %w", lastID, a.Prefix, err)
	}
	return n, nil
}

func (a *IDAllocator) Format(n int) string {
	return fmt.Sprintf("%s%03d", a.Prefix, n)
}
