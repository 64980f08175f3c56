package commission

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/provipay/commission-backend-go/internal/domain/commission"
	"github.com/provipay/commission-backend-go/internal/domain/employee"
	"github.com/provipay/commission-backend-go/internal/domain/sale"
)

// Aggregator folds raw sale records into per-agent-month aggregates. It is a
// pure computation over its inputs; the clock is injected so tenure math is
// testable.
type Aggregator struct {
	policy commission.Policy
	logger *slog.Logger
	now    func() time.Time
}

func NewAggregator(policy commission.Policy, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		policy: policy,
		logger: logger,
		now:    time.Now,
	}
}

// Aggregate groups non-cancelled sales by (agent name, month) and resolves
// each pair's salary-model and deduction context from the roster. It returns
// the aggregates and the distinct months, most recent first.
func (a *Aggregator) Aggregate(sales []sale.SaleRecord, roster []employee.Employee) ([]commission.AgentMonthAggregate, []string) {
	byID := make(map[string]employee.Employee, len(roster))
	byName := make(map[string]employee.Employee, len(roster))
	for _, emp := range roster {
		byID[emp.ID] = emp
		byName[emp.Name] = emp
	}

	type key struct {
		agent string
		month string
	}
	aggregates := make(map[key]*commission.AgentMonthAggregate)
	monthSet := make(map[string]struct{})

	for _, record := range sales {
		if record.Cancelled() {
			continue
		}
		if record.PolicySaleDate.IsZero() {
			a.logger.Warn("sale record has no parseable sale date, skipping",
				slog.String("sale_id", record.ID),
				slog.String("agent", record.AgentName),
			)
			continue
		}

		month := monthKey(record.PolicySaleDate)
		monthSet[month] = struct{}{}

		k := key{agent: record.AgentName, month: month}
		agg, ok := aggregates[k]
		if !ok {
			agg = a.newAggregate(record, month, byID, byName)
			aggregates[k] = agg
		}

		agg.TotalPremium = agg.TotalPremium.Add(record.NetPremium)
		agg.TotalCount++
		switch classify(record.CommissionGroup) {
		case bucketLiv:
			agg.LivPremium = agg.LivPremium.Add(record.NetPremium)
			agg.LivCount++
		case bucketSkade:
			agg.SkadePremium = agg.SkadePremium.Add(record.NetPremium)
			agg.SkadeCount++
		}
	}

	result := make([]commission.AgentMonthAggregate, 0, len(aggregates))
	for _, agg := range aggregates {
		result = append(result, *agg)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Month != result[j].Month {
			return result[i].Month > result[j].Month
		}
		return result[i].AgentName < result[j].AgentName
	})

	months := make([]string, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	return result, months
}

// newAggregate resolves the employee context for a freshly observed
// (agent, month) pair. Agents missing from the roster fall back to the
// policy's default model and unknown-office label.
func (a *Aggregator) newAggregate(record sale.SaleRecord, month string, byID, byName map[string]employee.Employee) *commission.AgentMonthAggregate {
	agg := &commission.AgentMonthAggregate{
		AgentName:     record.AgentName,
		AgentID:       record.AgentID,
		Month:         month,
		Office:        a.policy.UnknownOfficeLabel,
		SalaryModelID: a.policy.DefaultSalaryModelID,
	}

	var emp employee.Employee
	found := false
	if record.AgentID != nil {
		emp, found = byID[*record.AgentID]
	}
	if !found {
		emp, found = byName[record.AgentName]
	}
	if !found {
		a.logger.Warn("agent not on roster, using fallback context",
			slog.String("agent", record.AgentName),
			slog.String("month", month),
		)
		return agg
	}

	agg.AgentID = &emp.ID
	agg.Office = emp.AgentCompany
	agg.SalaryModelID = emp.SalaryModelID
	agg.MonthsEmployed = wholeMonthsBetween(emp.HireDate, a.now())

	// The manual flag is authoritative in both directions; the tenure rule
	// applies only when it is unset.
	if emp.ApplyFivePercentDeduction != nil {
		agg.ApplyFivePercent = *emp.ApplyFivePercentDeduction
	} else {
		agg.ApplyFivePercent = agg.MonthsEmployed < a.policy.TenureMonths
	}

	return agg
}

type bucket int

const (
	bucketUnclassified bucket = iota
	bucketLiv
	bucketSkade
)

// classify maps the free-text commission group onto a premium line.
// Unmatched groups still count toward the aggregate totals, just not toward
// either typed bucket.
func classify(group string) bucket {
	g := strings.ToLower(group)
	if strings.Contains(g, "life") {
		return bucketLiv
	}
	if strings.Contains(g, "pc") || strings.Contains(g, "child") || strings.Contains(g, "skad") {
		return bucketSkade
	}
	return bucketUnclassified
}

func monthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// wholeMonthsBetween counts complete calendar months from hire date to now.
func wholeMonthsBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
