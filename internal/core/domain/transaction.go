package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction records money coming in or going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid reports whether the type is one of the two known values.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Category labels a transaction. The set below is the fixed label set used by
// the UI; labels outside it are kept as-is and displayed raw.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategoryBills         Category = "bills"
	CategoryHealthcare    Category = "healthcare"
	CategorySalary        Category = "salary"
	CategoryFreelance     Category = "freelance"
	CategoryOther         Category = "other"
)

var categoryLabels = map[Category]string{
	CategoryFood:          "Food & Dining",
	CategoryTransport:     "Transportation",
	CategoryEntertainment: "Entertainment",
	CategoryShopping:      "Shopping",
	CategoryBills:         "Bills & Utilities",
	CategoryHealthcare:    "Healthcare",
	CategorySalary:        "Salary",
	CategoryFreelance:     "Freelance",
	CategoryOther:         "Other",
}

// DisplayName returns the human readable label for a known category.
// Unrecognized categories pass through unchanged.
func (c Category) DisplayName() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Transaction represents one recorded money movement in a user's ledger.
type Transaction struct {
	TransactionID int64           `json:"transactionID"` // Milliseconds since epoch at creation; unique per ledger scope
	Description   string          `json:"description"`   // Non-empty user text
	Amount        decimal.Decimal `json:"amount"`        // Positive; precise decimal type
	Type          TransactionType `json:"type"`          // income or expense
	Category      Category        `json:"category"`
	Date          time.Time       `json:"date"`      // User-chosen calendar date; monthly bucketing and default sort key
	CreatedAt     time.Time       `json:"createdAt"` // Record creation time, informational only
	UserID        string          `json:"userID"`    // Owning ledger scope
}
