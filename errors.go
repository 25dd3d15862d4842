// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voro2d

import "fmt"

// MemoryLimitError reports that growing an arena past its configured
// absolute maximum was requested. The core panics with this type instead
// of terminating the process directly, so that an embedding library can
// recover if it chooses to.
type MemoryLimitError struct {
	// Arena names which arena was exhausted: "vertex" or "delete stack".
	Arena string
	// Requested is the capacity growth would have produced.
	Requested int
	// Max is the configured absolute maximum for that arena.
	Max int
}

func (e *MemoryLimitError) Error() string {
	return fmt.Sprintf("voro2d: %s arena growth to %d exceeds configured maximum %d", e.Arena, e.Requested, e.Max)
}
