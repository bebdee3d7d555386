package seed

import (
	"github.com/shopspring/decimal"

	"github.com/baharkarakas/expense-api/internal/models"
)

// Users is the fixed demo directory.
func Users() []models.User {
	return []models.User{
		{ID: "u-admin", Name: "Alex Morgan", Email: "alex.morgan@example.com", Role: models.RoleAdmin, Department: "Finance"},
		{ID: "u-manager", Name: "Priya Shah", Email: "priya.shah@example.com", Role: models.RoleManager, Department: "Sales"},
		{ID: "u-emp-1", Name: "Jordan Lee", Email: "jordan.lee@example.com", Role: models.RoleEmployee, Department: "Sales"},
		{ID: "u-emp-2", Name: "Sam Rivera", Email: "sam.rivera@example.com", Role: models.RoleEmployee, Department: "Engineering"},
		{ID: "u-emp-3", Name: "Taylor Kim", Email: "taylor.kim@example.com", Role: models.RoleEmployee, Department: "Marketing"},
	}
}

// Expenses is the demo ledger; dates are fixed unix millis so listings are deterministic.
func Expenses() []models.Expense {
	const day = int64(24 * 60 * 60 * 1000)
	base := int64(1735689600000) // 2025-01-01T00:00:00Z

	mk := func(id, user, merchant, amount, category, desc string, date int64, status models.ExpenseStatus, actor string) models.Expense {
		e := models.NewExpense{
			UserID:      user,
			Merchant:    merchant,
			Amount:      decimal.RequireFromString(amount),
			Date:        float64(date),
			Description: desc,
			Category:    category,
		}.Build(id)
		if status != models.ExpensePending {
			e.Status = status
			e.History = []models.HistoryEntry{{Status: status, ActorID: actor, At: date + day}}
		}
		return e
	}

	return []models.Expense{
		mk("exp-seed-1", "u-emp-1", "Delta Air Lines", "412.80", "Travel", "Client visit, Chicago", base+2*day, models.ExpenseApproved, "u-manager"),
		mk("exp-seed-2", "u-emp-1", "Hilton", "289.00", "Lodging", "Two nights", base+3*day, models.ExpenseApproved, "u-manager"),
		mk("exp-seed-3", "u-emp-1", "Blue Bottle Coffee", "18.40", "Meals", "", base+9*day, models.ExpensePending, ""),
		mk("exp-seed-4", "u-emp-2", "Amazon Web Services", "74.12", "Software", "Sandbox account", base+5*day, models.ExpenseRejected, "u-admin"),
		mk("exp-seed-5", "u-emp-2", "Staples", "36.99", "Office Supplies", "Notebooks", base+12*day, models.ExpensePending, ""),
		mk("exp-seed-6", "u-emp-3", "Uber", "27.65", "Travel", "Airport transfer", base+7*day, models.ExpensePending, ""),
		mk("exp-seed-7", "u-manager", "The Capital Grille", "168.30", "Meals", "Team dinner", base+10*day, models.ExpenseApproved, "u-admin"),
	}
}
