package report

import (
	"sort"
	"time"

	"fintrack/internal/models"
)

// Summary holds the roll-up of a transaction collection for one period.
// All amounts are cents.
type Summary struct {
	Income   int64 `json:"income"`
	Expenses int64 `json:"expenses"`
	Balance  int64 `json:"balance"`
	Count    int   `json:"count"`
}

// Summarize filters transactions to the period and rolls them up.
// Cancelled transactions are always excluded; income and expenses are
// summed by type and balance is their difference. A window whose end
// precedes its start simply matches nothing.
func Summarize(transactions []models.Transaction, period Period, now time.Time) Summary {
	var s Summary
	for i := range transactions {
		tx := &transactions[i]
		if !retained(tx, period, now) {
			continue
		}
		switch tx.Type {
		case models.TransactionTypeIncome:
			s.Income += tx.Amount
		case models.TransactionTypeExpense:
			s.Expenses += tx.Amount
		}
		s.Count++
	}
	s.Balance = s.Income - s.Expenses
	return s
}

// FilterByPeriod returns the transactions retained for the period, in
// input order. Cancelled transactions are excluded.
func FilterByPeriod(transactions []models.Transaction, period Period, now time.Time) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))
	for i := range transactions {
		if retained(&transactions[i], period, now) {
			out = append(out, transactions[i])
		}
	}
	return out
}

// CategoryTotal is the roll-up of one category within a period.
// CategoryID is nil for uncategorized transactions.
type CategoryTotal struct {
	CategoryID *string               `json:"category_id"`
	Type       models.TransactionType `json:"type"`
	Total      int64                 `json:"total"`
	Count      int                   `json:"count"`
}

// SummarizeByCategory groups retained transactions by category and type.
// Results are ordered by descending total, then category id, so repeated
// calls over the same inputs produce identical output.
func SummarizeByCategory(transactions []models.Transaction, period Period, now time.Time) []CategoryTotal {
	type key struct {
		categoryID string
		txType     models.TransactionType
	}
	totals := make(map[key]*CategoryTotal)

	for i := range transactions {
		tx := &transactions[i]
		if !retained(tx, period, now) {
			continue
		}
		k := key{txType: tx.Type}
		if tx.CategoryID != nil {
			k.categoryID = *tx.CategoryID
		}
		entry, ok := totals[k]
		if !ok {
			entry = &CategoryTotal{Type: tx.Type}
			if tx.CategoryID != nil {
				id := *tx.CategoryID
				entry.CategoryID = &id
			}
			totals[k] = entry
		}
		entry.Total += tx.Amount
		entry.Count++
	}

	out := make([]CategoryTotal, 0, len(totals))
	for _, entry := range totals {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return categoryKey(out[i].CategoryID) < categoryKey(out[j].CategoryID)
	})
	return out
}

func categoryKey(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}

func retained(tx *models.Transaction, period Period, now time.Time) bool {
	if tx.Status == models.TransactionStatusCancelled {
		return false
	}
	return period.Contains(tx.Date, now)
}
