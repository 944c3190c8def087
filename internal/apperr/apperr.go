package apperr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrValidation indicates caller input validation failure.
	ErrValidation = errors.New("validation")
	// ErrConflict indicates a concurrent-state conflict, e.g. a second
	// active typhoon being declared while one is already open.
	ErrConflict = errors.New("conflict")
	// ErrInvalidState indicates a lifecycle transition not valid from the
	// record's current status.
	ErrInvalidState = errors.New("invalid state")
	// ErrNotFound indicates the referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrGateBlocked indicates a report write rejected by the form gate.
	ErrGateBlocked = errors.New("gate blocked")
)

// Validation tags an error as validation failure.
func Validation(msg string) error {
	return errors.Join(ErrValidation, errors.New(strings.TrimSpace(msg)))
}

// Conflict tags an error as conflict failure.
func Conflict(msg string) error {
	return errors.Join(ErrConflict, errors.New(strings.TrimSpace(msg)))
}

// InvalidState tags an error as an invalid lifecycle transition.
func InvalidState(msg string) error {
	return errors.Join(ErrInvalidState, errors.New(strings.TrimSpace(msg)))
}

// NotFound tags an error as a missing-record failure.
func NotFound(msg string) error {
	return errors.Join(ErrNotFound, errors.New(strings.TrimSpace(msg)))
}

// GateBlockedError carries the gate's structured rejection reason so the
// caller can render the right disabled-state explanation.
type GateBlockedError struct {
	Reason string
}

func (e *GateBlockedError) Error() string {
	return "report submission blocked: " + e.Reason
}

func (e *GateBlockedError) Unwrap() error { return ErrGateBlocked }

// GateBlocked builds a gate rejection with the given reason.
func GateBlocked(reason string) error {
	return &GateBlockedError{Reason: strings.TrimSpace(reason)}
}

// MapError folds storage-layer failures into the typed error set.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrConflict),
		errors.Is(err, ErrInvalidState),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrGateBlocked):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errors.Join(ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23505": // unique_violation
			return errors.Join(ErrConflict, err)
		case "23503": // foreign_key_violation
			return errors.Join(ErrValidation, err)
		}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") {
		return errors.Join(ErrConflict, err)
	}
	return err
}
