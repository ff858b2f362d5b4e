package catalog

import (
	"fmt"

	"stylique/internal/model"

	"go.uber.org/multierr"
)

// RecordError describes one invalid catalogue record.
type RecordError struct {
	Index  int
	ID     string
	Reason string
}

func (e *RecordError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("record %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("record %d (%s): %s", e.Index, e.ID, e.Reason)
}

// Validate checks every record and returns all problems combined. Index is
// 1-based.
func Validate(products []model.Product) error {
	var errs error
	seen := make(map[string]int, len(products))

	for i, p := range products {
		idx := i + 1
		fail := func(reason string) {
			errs = multierr.Append(errs, &RecordError{Index: idx, ID: p.ID, Reason: reason})
		}

		if p.ID == "" {
			fail("id is required")
		} else if first, dup := seen[p.ID]; dup {
			fail(fmt.Sprintf("duplicate id, first seen at record %d", first))
		} else {
			seen[p.ID] = idx
		}
		if p.Name == "" {
			fail("name is required")
		}
		if p.Category == "" {
			fail("category is required")
		}
		if p.Price < 0 {
			fail("price must not be negative")
		}
		if p.Rating < 0 || p.Rating > 5 {
			fail("rating must be between 0 and 5")
		}
		if p.Stock < 0 {
			fail("stock must not be negative")
		}
	}

	return errs
}
