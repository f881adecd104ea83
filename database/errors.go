package database

import (
	"errors"
	"fmt"

	"github.com/Konsultn-Engineering/sqltpl/query"
)

// wrap annotates driver errors. Build failures pass through unchanged so
// callers can test for query.ErrBuildFailed.
func wrap(op string, err error) error {
	if errors.Is(err, query.ErrBuildFailed) {
		return err
	}
	return fmt.Errorf("database: %s: %w", op, err)
}
