package salarymodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryModel is a named commission tier shared by any number of agents.
// IDs are numeric-coercible strings; legacy imports reference models as "1",
// "01" or 1 interchangeably.
type SalaryModel struct {
	ID                   string
	Name                 string
	CommissionLiv        decimal.Decimal // percent
	CommissionSkade      decimal.Decimal // percent
	BaseSalary           decimal.Decimal
	BonusEnabled         bool
	BonusThreshold       *decimal.Decimal
	BonusPercentageLiv   decimal.Decimal
	BonusPercentageSkade decimal.Decimal
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
