package ledger

import (
	"errors"
	"fmt"

	"github.com/mmynk/sheetledger/internal/storage"
)

// Kind classifies ledger errors independently of any transport.
type Kind int

const (
	// KindInternal is an unexpected failure, usually from the store.
	KindInternal Kind = iota
	KindNotFound
	KindDuplicate
	KindConflict
	KindInvalidArgument
	KindUnauthenticated
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindDuplicate:
		return "duplicate resource"
	case KindConflict:
		return "conflict"
	case KindInvalidArgument:
		return "invalid argument"
	case KindUnauthenticated:
		return "unauthenticated"
	default:
		return "internal"
	}
}

// Error is a business-rule failure with a human-readable reason.
type Error struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Reason
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels below, so errors.Is(err, ErrNotFound)
// holds for every NotFound error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Reason != "" || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrDuplicate       = &Error{Kind: KindDuplicate}
	ErrConflict        = &Error{Kind: KindConflict}
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrUnauthenticated = &Error{Kind: KindUnauthenticated}
)

// KindOf classifies err. Errors that are not ledger errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

func invalidArgument(format string, args ...any) *Error {
	return newError(KindInvalidArgument, format, args...)
}

// fromStore turns a store error into a ledger error. Ledger errors pass
// through untouched so a failure keeps the kind of the component that
// raised it; unknown errors are wrapped and stay internal.
func fromStore(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	var le *Error
	if errors.As(err, &le) {
		return err
	}

	reason := fmt.Sprintf(format, args...)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return &Error{Kind: KindNotFound, Reason: reason, Err: err}
	case errors.Is(err, storage.ErrDuplicate):
		return &Error{Kind: KindDuplicate, Reason: reason, Err: err}
	case errors.Is(err, storage.ErrConflict):
		return &Error{Kind: KindConflict, Reason: reason + " was modified concurrently, reload and retry", Err: err}
	default:
		return fmt.Errorf("%s: %w", reason, err)
	}
}

func isStoreNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
