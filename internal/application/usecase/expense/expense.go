// Package expense contains expense aggregation use cases. Aggregations are
// computed in memory from the user's expense transactions on each request.
package expense

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// UncategorizedLabel groups expenses whose category is absent or was
// deleted after the transaction was recorded.
const UncategorizedLabel = "uncategorized"

// ExpenseOutput represents a single expense returned by aggregation queries.
type ExpenseOutput struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Category    string
}

// categoryLabel resolves the display label for an expense.
func categoryLabel(c *entity.Category) string {
	if c == nil {
		return UncategorizedLabel
	}
	return c.Name
}

// matchesCategory reports whether an expense belongs to the requested
// category label, compared case-insensitively.
func matchesCategory(label, requested string) bool {
	return strings.EqualFold(label, requested)
}

// matchesMonth reports whether a date falls in the given month,
// regardless of year. Month is zero-indexed: January is 0.
func matchesMonth(date time.Time, month int) bool {
	return int(date.Month())-1 == month
}

// matchesYear reports whether a date falls in the given year.
func matchesYear(date time.Time, year int) bool {
	return date.Year() == year
}
