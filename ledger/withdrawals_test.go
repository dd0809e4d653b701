package ledger

import "testing"

func TestTRC20AddressFormat(t *testing.T) {
	valid := []string{
		"TJRabPrwbZy45sbavfcjinPJC18kjpRTv8",
		"TN3W4H6rK2ce4vX9YnFQHwKENnHjoxb3m9",
	}
	for _, a := range valid {
		if !trc20Address.MatchString(a) {
			t.Fatalf("expected %q to match", a)
		}
	}

	invalid := []string{
		"",
		"JRabPrwbZy45sbavfcjinPJC18kjpRTv8T",  // does not start with T
		"TJRabPrwbZy45sbavfcjinPJC18kjpRTv",   // too short
		"TJRabPrwbZy45sbavfcjinPJC18kjpRTv88", // too long
		"T0RabPrwbZy45sbavfcjinPJC18kjpRTv8",  // 0 is not base58
		"TORabPrwbZy45sbavfcjinPJC18kjpRTv8",  // O is not base58
	}
	for _, a := range invalid {
		if trc20Address.MatchString(a) {
			t.Fatalf("expected %q to be rejected", a)
		}
	}
}
