package ledger

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/mmynk/sheetledger/internal/auth"
	"github.com/mmynk/sheetledger/internal/models"
	"github.com/mmynk/sheetledger/internal/storage"
)

// SheetView is a sheet plus its derived expense count.
type SheetView struct {
	models.Sheet
	ExpenseCount int64
}

// SheetUpdate carries the new state of a sheet.
type SheetUpdate struct {
	Name string
	// PIN replaces the access PIN when non-nil; an empty value clears it.
	PIN *string
	// Version is the version the caller last read. Zero skips the check
	// against the caller's copy, but the write is still compare-and-swap.
	Version int64
}

// SheetManager owns sheet lifecycle.
type SheetManager struct {
	base
}

// Create makes a new sheet at version 1. A non-empty pin is stored hashed.
func (m *SheetManager) Create(ctx context.Context, userID uuid.UUID, name string, pin *string) (*SheetView, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	name, err := validateSheetName(name)
	if err != nil {
		return nil, err
	}

	sheet := &models.Sheet{
		UserID:    userID,
		Name:      name,
		CreatedAt: m.now().Unix(),
	}
	if err := setPIN(sheet, pin); err != nil {
		return nil, err
	}

	if err := m.store.CreateSheet(ctx, sheet); err != nil {
		return nil, fromStore(err, "create sheet %q", name)
	}

	m.logger.Info("Sheet created", "user_id", userID, "sheet_id", sheet.ID)
	return &SheetView{Sheet: *sheet}, nil
}

// Update renames a sheet and optionally replaces its PIN.
func (m *SheetManager) Update(ctx context.Context, userID, sheetID uuid.UUID, upd SheetUpdate) (*SheetView, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	name, err := validateSheetName(upd.Name)
	if err != nil {
		return nil, err
	}

	var updated *models.Sheet
	err = m.store.InTx(ctx, func(q storage.Queries) error {
		sheet, err := q.GetSheet(ctx, userID, sheetID)
		if err != nil {
			return fromStore(err, "sheet %s", sheetID)
		}

		expected := upd.Version
		if expected == 0 {
			expected = sheet.Version
		}

		sheet.Name = name
		if upd.PIN != nil {
			if err := setPIN(sheet, upd.PIN); err != nil {
				return err
			}
		}

		if err := q.UpdateSheet(ctx, sheet, expected); err != nil {
			return fromStore(err, "sheet %s", sheetID)
		}
		updated = sheet
		return nil
	})
	if err != nil {
		return nil, err
	}

	count, err := m.expenseCount(ctx, userID, sheetID)
	if err != nil {
		return nil, err
	}

	m.logger.Info("Sheet updated", "user_id", userID, "sheet_id", sheetID, "version", updated.Version)
	return &SheetView{Sheet: *updated, ExpenseCount: count}, nil
}

// Delete removes a sheet together with its expenses, their annotations and
// the sheet's curated categories, all in one transaction.
func (m *SheetManager) Delete(ctx context.Context, userID, sheetID uuid.UUID) error {
	if err := requireUser(userID); err != nil {
		return err
	}

	var expenses int64
	err := m.store.InTx(ctx, func(q storage.Queries) error {
		if _, err := q.GetSheet(ctx, userID, sheetID); err != nil {
			return fromStore(err, "sheet %s", sheetID)
		}
		if _, err := q.DeleteSheetAnnotations(ctx, userID, sheetID); err != nil {
			return fromStore(err, "delete annotations of sheet %s", sheetID)
		}
		n, err := q.DeleteSheetExpenses(ctx, userID, sheetID)
		if err != nil {
			return fromStore(err, "delete expenses of sheet %s", sheetID)
		}
		expenses = n
		if _, err := q.DeleteSheetCategories(ctx, sheetID); err != nil {
			return fromStore(err, "delete categories of sheet %s", sheetID)
		}
		if err := q.DeleteSheet(ctx, userID, sheetID); err != nil {
			return fromStore(err, "sheet %s", sheetID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	m.logger.Info("Sheet deleted", "user_id", userID, "sheet_id", sheetID, "expenses_deleted", expenses)
	return nil
}

// List returns the user's sheets with their expense counts.
func (m *SheetManager) List(ctx context.Context, userID uuid.UUID) ([]SheetView, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	sheets, err := m.store.ListSheets(ctx, userID)
	if err != nil {
		return nil, fromStore(err, "list sheets")
	}
	counts, err := m.store.CountExpensesBySheet(ctx, userID)
	if err != nil {
		return nil, fromStore(err, "count expenses")
	}

	views := make([]SheetView, len(sheets))
	for i, sheet := range sheets {
		views[i] = SheetView{Sheet: sheet, ExpenseCount: counts[sheet.ID]}
	}
	return views, nil
}

// Get returns one sheet with its expense count.
func (m *SheetManager) Get(ctx context.Context, userID, sheetID uuid.UUID) (*SheetView, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	sheet, err := m.store.GetSheet(ctx, userID, sheetID)
	if err != nil {
		return nil, fromStore(err, "sheet %s", sheetID)
	}
	count, err := m.expenseCount(ctx, userID, sheetID)
	if err != nil {
		return nil, err
	}
	return &SheetView{Sheet: *sheet, ExpenseCount: count}, nil
}

// VerifyPIN reports whether pin unlocks the sheet. Sheets without a PIN
// are always unlocked.
func (m *SheetManager) VerifyPIN(ctx context.Context, userID, sheetID uuid.UUID, pin string) (bool, error) {
	if err := requireUser(userID); err != nil {
		return false, err
	}

	sheet, err := m.store.GetSheet(ctx, userID, sheetID)
	if err != nil {
		return false, fromStore(err, "sheet %s", sheetID)
	}
	if !sheet.HasPIN {
		return true, nil
	}
	return auth.CheckPIN(sheet.PINHash, pin), nil
}

func (m *SheetManager) expenseCount(ctx context.Context, userID, sheetID uuid.UUID) (int64, error) {
	counts, err := m.store.CountExpensesBySheet(ctx, userID)
	if err != nil {
		return 0, fromStore(err, "count expenses")
	}
	return counts[sheetID], nil
}

func validateSheetName(name string) (string, error) {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	if n == 0 {
		return "", invalidArgument("sheet name must not be empty")
	}
	if n > models.MaxSheetNameLength {
		return "", invalidArgument("sheet name must be at most %d characters", models.MaxSheetNameLength)
	}
	return name, nil
}

// setPIN hashes pin into the sheet. Nil or empty clears the PIN.
func setPIN(sheet *models.Sheet, pin *string) error {
	if pin == nil || *pin == "" {
		sheet.PINHash = ""
		sheet.HasPIN = false
		return nil
	}

	hash, err := auth.HashPIN(*pin)
	if errors.Is(err, auth.ErrPINTooLong) {
		return invalidArgument("%v", err)
	}
	if err != nil {
		return err
	}
	sheet.PINHash = hash
	sheet.HasPIN = true
	return nil
}
