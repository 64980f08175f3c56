package commission

import (
	"testing"
	"time"

	"github.com/provipay/commission-backend-go/internal/domain/commission"
	"github.com/provipay/commission-backend-go/internal/domain/employee"
	"github.com/provipay/commission-backend-go/internal/domain/sale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAggregator(now time.Time) *Aggregator {
	a := NewAggregator(commission.DefaultPolicy(), testLogger())
	a.now = func() time.Time { return now }
	return a
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func testRoster() []employee.Employee {
	return []employee.Employee{
		{
			ID:            "emp-1",
			Name:          "Kari Nordmann",
			AgentCompany:  "Oslo Vest",
			HireDate:      date("2020-01-15"),
			SalaryModelID: "2",
		},
		{
			ID:            "emp-2",
			Name:          "Ola Hansen",
			AgentCompany:  "Bergen",
			HireDate:      date("2025-03-01"),
			SalaryModelID: "1",
		},
	}
}

func TestAggregator_GroupsByAgentAndMonth(t *testing.T) {
	a := newTestAggregator(date("2025-07-15"))

	sales := []sale.SaleRecord{
		{ID: "s1", AgentName: "Kari Nordmann", PolicySaleDate: date("2025-06-03"), CommissionGroup: "Life", NetPremium: dec("10000")},
		{ID: "s2", AgentName: "Kari Nordmann", PolicySaleDate: date("2025-06-20"), CommissionGroup: "Life", NetPremium: dec("20000")},
		{ID: "s3", AgentName: "Kari Nordmann", PolicySaleDate: date("2025-05-28"), CommissionGroup: "PC", NetPremium: dec("5000")},
	}

	aggs, months := a.Aggregate(sales, testRoster())

	require.Len(t, aggs, 2)
	assert.Equal(t, []string{"2025-06", "2025-05"}, months)

	// Months sort most recent first.
	june := aggs[0]
	assert.Equal(t, "2025-06", june.Month)
	assert.True(t, june.LivPremium.Equal(dec("30000")))
	assert.Equal(t, 2, june.LivCount)
	assert.True(t, june.TotalPremium.Equal(dec("30000")))

	may := aggs[1]
	assert.Equal(t, "2025-05", may.Month)
	assert.True(t, may.SkadePremium.Equal(dec("5000")))
	assert.Equal(t, 1, may.SkadeCount)
}

func TestAggregator_SkipsCancelledSales(t *testing.T) {
	a := newTestAggregator(date("2025-07-15"))

	sales := []sale.SaleRecord{
		{ID: "s1", AgentName: "Kari Nordmann", PolicySaleDate: date("2025-06-03"), CommissionGroup: "Life", NetPremium: dec("10000")},
		{ID: "s2", AgentName: "Kari Nordmann", PolicySaleDate: date("2025-06-20"), CommissionGroup: "Life", NetPremium: dec("20000"), CancelCode: "C1"},
	}

	aggs, _ := a.Aggregate(sales, testRoster())

	require.Len(t, aggs, 1)
	assert.True(t, aggs[0].LivPremium.Equal(dec("10000")))
	assert.Equal(t, 1, aggs[0].TotalCount)
}

func TestAggregator_SkipsSalesWithoutDate(t *testing.T) {
	a := newTestAggregator(date("2025-07-15"))

	sales := []sale.SaleRecord{
		{ID: "s1", AgentName: "Kari Nordmann", CommissionGroup: "Life", NetPremium: dec("10000")},
	}

	aggs, months := a.Aggregate(sales, testRoster())

	assert.Empty(t, aggs)
	assert.Empty(t, months)
}

func TestAggregator_Classification(t *testing.T) {
	a := newTestAggregator(date("2025-07-15"))

	sales := []sale.SaleRecord{
		{ID: "s1", AgentName: "Kari Nordmann", PolicySaleDate: date("2025-06-01"), CommissionGroup: "Life Insurance", NetPremium: dec("100")},
		{ID: "s2", AgentName: "Kari Nordmann", PolicySaleDate: date("2025-06-02"), CommissionGroup: "PC Product", NetPremium: dec("200")},
		{ID: "s3", AgentName: "Kari Nordmann", PolicySaleDate: date("2025-06-03"), CommissionGroup: "Child", NetPremium: dec("300")},
		{ID: "s4", AgentName: "Kari Nordmann", PolicySaleDate: date("2025-06-04"), CommissionGroup: "Skadeforsikring", NetPremium: dec("400")},
		{ID: "s5", AgentName: "Kari Nordmann", PolicySaleDate: date("2025-06-05"), CommissionGroup: "Mystery", NetPremium: dec("500")},
	}

	aggs, _ := a.Aggregate(sales, testRoster())

	require.Len(t, aggs, 1)
	agg := aggs[0]
	assert.True(t, agg.LivPremium.Equal(dec("100")))
	assert.True(t, agg.SkadePremium.Equal(dec("900")))
	// Unclassified rows still count toward the totals.
	assert.True(t, agg.TotalPremium.Equal(dec("1500")))
	assert.Equal(t, 5, agg.TotalCount)
	assert.Equal(t, 1, agg.LivCount)
	assert.Equal(t, 3, agg.SkadeCount)
}

func TestAggregator_TenureRule(t *testing.T) {
	a := newTestAggregator(date("2025-07-15"))

	sales := []sale.SaleRecord{
		{ID: "s1", AgentName: "Kari Nordmann", PolicySaleDate: date("2025-06-01"), CommissionGroup: "Life", NetPremium: dec("100")},
		{ID: "s2", AgentName: "Ola Hansen", PolicySaleDate: date("2025-06-01"), CommissionGroup: "Life", NetPremium: dec("100")},
	}

	aggs, _ := a.Aggregate(sales, testRoster())

	require.Len(t, aggs, 2)
	for _, agg := range aggs {
		switch agg.AgentName {
		case "Kari Nordmann":
			// Hired 2020, well past the nine month mark.
			assert.False(t, agg.ApplyFivePercent)
		case "Ola Hansen":
			// Hired 2025-03-01, four whole months by mid July.
			assert.Equal(t, 4, agg.MonthsEmployed)
			assert.True(t, agg.ApplyFivePercent)
		}
	}
}

func TestAggregator_ManualOverrideBeatsTenure(t *testing.T) {
	a := newTestAggregator(date("2025-07-15"))

	roster := []employee.Employee{
		{
			ID:       "emp-1",
			Name:     "Veteran Exempt",
			HireDate: date("2025-06-01"), // brand new, tenure says deduct
			// but the manual flag says no
			SalaryModelID:             "1",
			ApplyFivePercentDeduction: boolPtr(false),
		},
		{
			ID:                        "emp-2",
			Name:                      "Old Timer Flagged",
			HireDate:                  date("2010-01-01"), // tenure says no deduction
			SalaryModelID:             "1",
			ApplyFivePercentDeduction: boolPtr(true),
		},
	}
	sales := []sale.SaleRecord{
		{ID: "s1", AgentName: "Veteran Exempt", PolicySaleDate: date("2025-06-15"), CommissionGroup: "Life", NetPremium: dec("100")},
		{ID: "s2", AgentName: "Old Timer Flagged", PolicySaleDate: date("2025-06-15"), CommissionGroup: "Life", NetPremium: dec("100")},
	}

	aggs, _ := a.Aggregate(sales, roster)

	require.Len(t, aggs, 2)
	for _, agg := range aggs {
		switch agg.AgentName {
		case "Veteran Exempt":
			assert.False(t, agg.ApplyFivePercent)
		case "Old Timer Flagged":
			assert.True(t, agg.ApplyFivePercent)
		}
	}
}

func TestAggregator_UnknownAgentFallback(t *testing.T) {
	a := newTestAggregator(date("2025-07-15"))

	sales := []sale.SaleRecord{
		{ID: "s1", AgentName: "Ghost Agent", PolicySaleDate: date("2025-06-01"), CommissionGroup: "Life", NetPremium: dec("100")},
	}

	aggs, _ := a.Aggregate(sales, testRoster())

	require.Len(t, aggs, 1)
	agg := aggs[0]
	assert.Equal(t, "Ukjent", agg.Office)
	assert.Equal(t, "1", agg.SalaryModelID)
	assert.False(t, agg.ApplyFivePercent)
}

func TestAggregator_ResolvesByAgentID(t *testing.T) {
	a := newTestAggregator(date("2025-07-15"))

	// The durable id wins even when the sale row carries a stale spelling of
	// the name.
	sales := []sale.SaleRecord{
		{ID: "s1", AgentID: strPtr("emp-1"), AgentName: "K. Nordmann", PolicySaleDate: date("2025-06-01"), CommissionGroup: "Life", NetPremium: dec("100")},
	}

	aggs, _ := a.Aggregate(sales, testRoster())

	require.Len(t, aggs, 1)
	assert.Equal(t, "Oslo Vest", aggs[0].Office)
	assert.Equal(t, "2", aggs[0].SalaryModelID)
}

func TestWholeMonthsBetween(t *testing.T) {
	cases := []struct {
		from string
		to   string
		want int
	}{
		{"2025-03-01", "2025-07-15", 4},
		{"2025-03-20", "2025-07-15", 3}, // day not yet reached
		{"2025-07-15", "2025-07-15", 0},
		{"2025-08-01", "2025-07-15", 0}, // future hire clamps to zero
		{"2024-07-15", "2025-07-15", 12},
	}
	for _, c := range cases {
		got := wholeMonthsBetween(date(c.from), date(c.to))
		assert.Equal(t, c.want, got, "from %s to %s", c.from, c.to)
	}
}
