package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "£0.00"},
		{1234.5, "£1,234.50"},
		{1000000, "£1,000,000.00"},
		{95.42, "£95.42"},
		{-42.1, "-£42.10"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatMoney_CustomSymbol(t *testing.T) {
	SetCurrency("$")
	defer SetCurrency("£")

	if got := FormatMoney(10); got != "$10.00" {
		t.Errorf("FormatMoney(10) = %q, want $10.00", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatMonths(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0m"},
		{7, "7m"},
		{12, "1y"},
		{27, "2y 3m"},
		{600, "50y"},
	}
	for _, tc := range cases {
		if got := FormatMonths(tc.in); got != tc.want {
			t.Errorf("FormatMonths(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatAPR(t *testing.T) {
	if got := FormatAPR(22.9); got != "22.9%" {
		t.Errorf("FormatAPR(22.9) = %q, want 22.9%%", got)
	}
	if got := FormatAPR(0); got != "0%" {
		t.Errorf("FormatAPR(0) = %q, want 0%%", got)
	}
}
