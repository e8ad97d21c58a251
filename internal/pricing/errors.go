// =============================================================================
// Shipping List Processor - Pricing Errors
// =============================================================================
//
// Error taxonomy for the pricing pipeline. Every error aborts the whole
// run: silently dropping a line item would desynchronize quantities and
// totals between the deduplicated list and the receipts. RowError carries
// the offending row's identity so the source workbook can be corrected and
// the run repeated.
//
// =============================================================================

package pricing

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes of the pipeline. Callers match
// them with errors.Is.
var (
	// ErrInvalidInput marks a required field that is missing or out of
	// domain, such as a negative markup or a non-positive quantity.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingWeight marks a row where neither total net weight nor
	// total gross weight is available for the shipping-cost fallback.
	ErrMissingWeight = errors.New("missing weight")

	// ErrDivisionUndefined marks a zero or absent divisor: the row
	// quantity or the RMB/USD exchange rate.
	ErrDivisionUndefined = errors.New("division undefined")
)

// RowError wraps a pipeline error with the identity of the row it
// occurred on.
type RowError struct {
	// SequenceNo is the manifest serial number of the row.
	SequenceNo int

	// PartNumber is the part number of the row.
	PartNumber string

	// Err is the underlying error, typically one of the sentinels.
	Err error
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (P/N %s): %v", e.SequenceNo, e.PartNumber, e.Err)
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *RowError) Unwrap() error {
	return e.Err
}

// rowErr wraps err with the row identity.
func rowErr(seq int, partNumber string, err error) error {
	return &RowError{SequenceNo: seq, PartNumber: partNumber, Err: err}
}

// rowErrf wraps a formatted message around sentinel for the given row.
func rowErrf(seq int, partNumber string, sentinel error, format string, args ...interface{}) error {
	return rowErr(seq, partNumber, fmt.Errorf(format+": %w", append(args, sentinel)...))
}
