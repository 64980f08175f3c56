package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "01-01-2023", "2023/01/01", "", "abc"}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"2025-01", "2025-12", "1999-06"}
	invalid := []string{"2025-13", "2025-00", "2025-1", "2025-06-01", "25-06", "", "abc"}
	for _, month := range valid {
		if !IsValidMonth(month) {
			t.Errorf("IsValidMonth(%q) = false, want true", month)
		}
	}
	for _, month := range invalid {
		if IsValidMonth(month) {
			t.Errorf("IsValidMonth(%q) = true, want false", month)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123", "1.5"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"life", "pc", "child"}
	if !IsInSlice("pc", slice) {
		t.Error("IsInSlice should find existing value")
	}
	if IsInSlice("skade", slice) {
		t.Error("IsInSlice should not find missing value")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "agent_name", Message: "is required"},
		{Field: "month", Message: "must be in YYYY-MM format"},
	}

	if errs.Error() != "agent_name: is required; month: must be in YYYY-MM format" {
		t.Errorf("unexpected Error() output: %q", errs.Error())
	}

	m := errs.ToMap()
	if len(m) != 2 || m["agent_name"] != "is required" {
		t.Errorf("unexpected ToMap() output: %v", m)
	}
}
