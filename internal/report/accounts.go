package report

import "fintrack/internal/models"

// AccountsSummary aggregates a user's accounts. Amounts are cents.
// Credit accounts are liabilities: their balances are excluded from
// TotalBalance and surface as TotalDebt (absolute value) instead.
type AccountsSummary struct {
	TotalBalance int64 `json:"total_balance"`
	TotalDebt    int64 `json:"total_debt"`
	ActiveCount  int   `json:"active_count"`
	TotalCount   int   `json:"total_count"`
}

// SummarizeAccounts rolls up an account collection. Only active accounts
// contribute to balances and the active count; TotalCount covers all.
func SummarizeAccounts(accounts []models.Account) AccountsSummary {
	s := AccountsSummary{TotalCount: len(accounts)}

	var debt int64
	for i := range accounts {
		a := &accounts[i]
		if !a.IsActive {
			continue
		}
		s.ActiveCount++
		if a.Type == models.AccountTypeCredit {
			debt += a.Balance
			continue
		}
		s.TotalBalance += a.Balance
	}

	if debt < 0 {
		debt = -debt
	}
	s.TotalDebt = debt
	return s
}
