package records

import "errors"

var (
	// ErrInvalidOperation is returned when a mutation that must be
	// attributable is attempted without an acting user.
	ErrInvalidOperation = errors.New("records: acting user required")

	// ErrGenerationExhausted is returned when external-id generation cannot
	// find an unused candidate within the retry budget.
	ErrGenerationExhausted = errors.New("records: external id generation exhausted")
)
