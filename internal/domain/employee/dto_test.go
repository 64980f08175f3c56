package employee

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateEmployeeRequest_DeductionFlagTriState(t *testing.T) {
	// Field absent: leave the override as is.
	var absent UpdateEmployeeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Kari"}`), &absent))
	assert.Nil(t, absent.ApplyFivePercentDeduction)

	// Explicit null: clear the override back to the tenure rule.
	var cleared UpdateEmployeeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"apply_five_percent_deduction":null}`), &cleared))
	require.NotNil(t, cleared.ApplyFivePercentDeduction)
	assert.Nil(t, *cleared.ApplyFivePercentDeduction)

	// Explicit value: authoritative override.
	var set UpdateEmployeeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"apply_five_percent_deduction":false}`), &set))
	require.NotNil(t, set.ApplyFivePercentDeduction)
	require.NotNil(t, *set.ApplyFivePercentDeduction)
	assert.False(t, **set.ApplyFivePercentDeduction)
}

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	valid := CreateEmployeeRequest{
		Name:          "Kari Nordmann",
		HireDate:      "2024-01-15",
		SalaryModelID: "1",
	}
	assert.NoError(t, valid.Validate())

	missing := CreateEmployeeRequest{HireDate: "not-a-date"}
	err := missing.Validate()
	require.Error(t, err)
}
