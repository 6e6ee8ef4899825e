package service

import (
	"github.com/mmynk/sheetledger/internal/calculator"
	"github.com/mmynk/sheetledger/internal/ledger"
	"github.com/mmynk/sheetledger/internal/models"
	"github.com/mmynk/sheetledger/internal/storage"
	"github.com/mmynk/sheetledger/pkg/api"
)

func toAPISheet(s *ledger.SheetView) api.Sheet {
	return api.Sheet{
		ID:           s.ID,
		Name:         s.Name,
		HasPIN:       s.HasPIN,
		CreatedAt:    s.CreatedAt,
		Version:      s.Version,
		ExpenseCount: s.ExpenseCount,
	}
}

func toAPIExpense(e *models.Expense) api.Expense {
	return api.Expense{
		ID:        e.ID,
		SheetID:   e.SheetID,
		Date:      e.Date,
		Amount:    e.Amount,
		Category:  e.Category,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
		Version:   e.Version,
	}
}

func toAPIExpenses(expenses []models.Expense) []api.Expense {
	out := make([]api.Expense, len(expenses))
	for i := range expenses {
		out[i] = toAPIExpense(&expenses[i])
	}
	return out
}

func toAPIDescription(a *models.Annotation) api.Description {
	return api.Description{
		ID:          a.ID,
		ExpenseID:   a.ExpenseID,
		ColumnName:  a.ColumnName,
		Description: a.Text,
		CreatedAt:   a.CreatedAt,
	}
}

func toAPIDescriptions(annotations []models.Annotation) []api.Description {
	out := make([]api.Description, len(annotations))
	for i := range annotations {
		out[i] = toAPIDescription(&annotations[i])
	}
	return out
}

func toAPIUser(u *models.User) api.User {
	return api.User{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Picture: u.Picture,
	}
}

func bucketTotals(buckets []calculator.Bucket) []api.Total {
	out := make([]api.Total, len(buckets))
	for i, b := range buckets {
		out[i] = api.Total{Key: b.Key, Amount: b.Total}
	}
	return out
}

func categoryTotals(sums []storage.CategorySum) []api.Total {
	out := make([]api.Total, len(sums))
	for i, s := range sums {
		out[i] = api.Total{Key: s.Category, Amount: s.Total}
	}
	return out
}
