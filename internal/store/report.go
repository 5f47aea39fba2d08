package store

import "github.com/PolarWolf314/pigment/internal/configs"

// Outcome describes how Load arrived at the current settings.
type Outcome int

const (
	// OutcomeFresh means nothing was stored and defaults are in use.
	OutcomeFresh Outcome = iota
	// OutcomeDecoded means the stored blob was decoded, possibly with field-level fallbacks.
	OutcomeDecoded
	// OutcomeDefaulted means the stored blob was unreadable and every field is at its default.
	OutcomeDefaulted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFresh:
		return "fresh"
	case OutcomeDecoded:
		return "decoded"
	case OutcomeDefaulted:
		return "defaulted"
	default:
		return "unknown"
	}
}

// LoadReport records every fallback taken while loading.
type LoadReport struct {
	Outcome Outcome

	// Version is the format version found in the payload, or 0 when absent.
	Version int

	// Cause is the storage or container error behind OutcomeDefaulted.
	Cause error

	// FieldErrors lists entries that were present but unusable.
	FieldErrors []configs.FieldError

	// Defaulted lists the fields that took their default value.
	Defaulted []configs.Tag

	// Unknown lists tags written by a newer build.
	Unknown []configs.Tag

	// Upgraded is set when an older payload was re-saved at the current version.
	Upgraded bool
}
