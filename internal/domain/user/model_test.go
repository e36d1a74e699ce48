package user

import "testing"

func TestCurrencySymbol(t *testing.T) {
	cases := []struct {
		currency Currency
		want     string
		ok       bool
	}{
		{currency: CurrencyDollar, want: "$", ok: true},
		{currency: CurrencyEuro, want: "€", ok: true},
		{currency: CurrencyPound, want: "£", ok: true},
		{currency: Currency(3), ok: false},
		{currency: Currency(-1), ok: false},
	}

	for _, tc := range cases {
		got, ok := tc.currency.Symbol()
		if ok != tc.ok || got != tc.want {
			t.Fatalf("currency %d: got (%q, %v), want (%q, %v)", tc.currency, got, ok, tc.want, tc.ok)
		}
	}
}

func TestProfileEdition(t *testing.T) {
	t.Run("parses numeric edition", func(t *testing.T) {
		got, err := Profile{FIFAEdition: " 20 "}.Edition()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 20 {
			t.Fatalf("expected 20, got %d", got)
		}
	})

	t.Run("rejects empty edition", func(t *testing.T) {
		if _, err := (Profile{}).Edition(); err == nil {
			t.Fatalf("expected error for empty edition")
		}
	})

	t.Run("rejects non numeric edition", func(t *testing.T) {
		if _, err := (Profile{FIFAEdition: "fifa20"}).Edition(); err == nil {
			t.Fatalf("expected error for non numeric edition")
		}
	})
}
