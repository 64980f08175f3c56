package employee

import "time"

// Employee is an agent on the roster. Sales are attributed by durable id when
// the sale row carries one, falling back to exact name match for legacy rows.
type Employee struct {
	ID            string
	Name          string
	AgentCompany  string
	HireDate      time.Time
	SalaryModelID string
	// ApplyFivePercentDeduction is tri-state: nil defers to the tenure rule,
	// an explicit value is authoritative in both directions.
	ApplyFivePercentDeduction *bool
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}
