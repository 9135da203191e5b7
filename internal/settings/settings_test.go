package settings

import "testing"

func TestSharedVisibility(t *testing.T) {
	shared := New(INR, 5, 10)

	// Two holders of the same instance observe each other's mutations.
	holderA := shared
	holderB := shared

	holderA.ToggleCurrency()
	if holderB.Currency != USD {
		t.Fatalf("expected USD via second holder, got %s", holderB.Currency)
	}
}

func TestToggleCurrencyIsInvolutive(t *testing.T) {
	tests := []struct {
		name  string
		start Currency
	}{
		{name: "from INR", start: INR},
		{name: "from USD", start: USD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.start, 5, 10)
			s.ToggleCurrency()
			if s.Currency == tt.start {
				t.Fatalf("toggle did not change currency from %s", tt.start)
			}
			s.ToggleCurrency()
			if s.Currency != tt.start {
				t.Fatalf("double toggle changed currency: got %s, want %s", s.Currency, tt.start)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	s := New(INR, 5, 10)
	want := "Currency=INR, Tax=5%, Discount=10%"
	if got := s.Describe(); got != want {
		t.Fatalf("Describe() = %q, want %q", got, want)
	}
}
