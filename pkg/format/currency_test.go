package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "$0.00"},
		{1234.56, "$1,234.56"},
		{-1234.56, "-$1,234.56"},
		{999.99, "$999.99"},
		{1000000, "$1,000,000.00"},
		{0.005, "$0.01"},
	}

	for _, tt := range tests {
		if result := Currency(tt.input); result != tt.expected {
			t.Errorf("Currency(%v) = %s, expected %s", tt.input, result, tt.expected)
		}
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{1234.56, "1,234.56"},
		{-1234.56, "-1,234.56"},
		{0, "0.00"},
	}

	for _, tt := range tests {
		if result := NumericCurrency(tt.input); result != tt.expected {
			t.Errorf("NumericCurrency(%v) = %s, expected %s", tt.input, result, tt.expected)
		}
	}
}

func TestPercent(t *testing.T) {
	if result := Percent(7.2); result != "7.20%" {
		t.Errorf("Percent(7.2) = %s, expected 7.20%%", result)
	}
	if result := Percent(-3.456); result != "-3.46%" {
		t.Errorf("Percent(-3.456) = %s, expected -3.46%%", result)
	}
}

func TestRateAsPercent(t *testing.T) {
	if result := RateAsPercent(0.057); result != "5.70%" {
		t.Errorf("RateAsPercent(0.057) = %s, expected 5.70%%", result)
	}
	if result := RateAsPercent(0); result != "0.00%" {
		t.Errorf("RateAsPercent(0) = %s, expected 0.00%%", result)
	}
}
