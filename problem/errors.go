package problem

import "errors"

// Sentinel errors. Call sites wrap them with the offending line so a bad file
// can be fixed from the message alone; match with errors.Is.
var (
	// ErrEmptyTable indicates a table with no header or no product columns.
	ErrEmptyTable = errors.New("problem: table has no products")

	// ErrDuplicateProduct indicates two header cells with the same product name.
	ErrDuplicateProduct = errors.New("problem: duplicate product")

	// ErrDuplicateResource indicates two data rows with the same resource name.
	ErrDuplicateResource = errors.New("problem: duplicate resource")

	// ErrRowLength indicates a data row whose value count differs from the product count.
	ErrRowLength = errors.New("problem: row length does not match product count")

	// ErrNotNumeric indicates a coefficient cell that is not a number.
	ErrNotNumeric = errors.New("problem: coefficient is not a number")

	// ErrInvalidCoefficient indicates a negative, NaN or infinite coefficient.
	ErrInvalidCoefficient = errors.New("problem: coefficient must be finite and non-negative")
)
