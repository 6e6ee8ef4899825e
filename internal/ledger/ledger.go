// Package ledger implements the expense-ledger core: sheets, expenses, the
// per-sheet category registry, analytics and cell annotations.
//
// Every operation takes the caller's user ID and scopes all reads and writes
// to it. Multi-step mutations run inside one storage transaction and
// re-check ownership there. Failures are *Error values carrying a Kind;
// anything else is an internal failure.
package ledger

import (
	"log/slog"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/mmynk/sheetledger/internal/storage"
)

// Ledger groups the managers that share one store.
type Ledger struct {
	Sheets      *SheetManager
	Expenses    *ExpenseManager
	Categories  *CategoryRegistry
	Analytics   *AnalyticsEngine
	Annotations *AnnotationStore
	Accounts    *Accounts
}

type options struct {
	now       func() time.Time
	claimDemo bool
}

// Option configures a Ledger.
type Option func(*options)

// WithClock overrides the time source used for "today".
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithDemoClaim lets the first user to sign in inherit the demo data.
func WithDemoClaim(enabled bool) Option {
	return func(o *options) { o.claimDemo = enabled }
}

// base holds what every manager needs.
type base struct {
	store  storage.Store
	logger *slog.Logger
	now    func() time.Time
}

func (b base) today() civil.Date {
	return civil.DateOf(b.now())
}

// New wires the managers around store.
func New(store storage.Store, logger *slog.Logger, opts ...Option) *Ledger {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = slog.Default()
	}

	b := base{store: store, logger: logger, now: o.now}
	return &Ledger{
		Sheets:      &SheetManager{base: b},
		Expenses:    &ExpenseManager{base: b},
		Categories:  &CategoryRegistry{base: b},
		Analytics:   &AnalyticsEngine{base: b},
		Annotations: &AnnotationStore{base: b},
		Accounts:    &Accounts{base: b, claimDemo: o.claimDemo},
	}
}

func requireUser(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return newError(KindUnauthenticated, "no verified caller identity")
	}
	return nil
}
