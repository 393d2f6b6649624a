package repository

import (
	"database/sql"
	"errors"
	"fmt"

	apperrors "github.com/vaidashi/fastfood-api/pkg/errors"
)

var (
	ErrNotFound = fmt.Errorf("record not found: %w", apperrors.ErrNotFound)
	ErrDatabase = errors.New("database error")
)

// classify maps a driver error onto the package errors
func classify(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrDatabase, err)
}

// expectRows turns a zero-row write into ErrNotFound
func expectRows(res sql.Result) error {
	n, err := res.RowsAffected()

	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}
