package format

import (
	"fmt"
	"math"
	"testing"

	"github.com/Supermarket-List/create-list/models"
)

func TestCapitalizeWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "arroz integral", "Arroz Integral"},
		{"already capitalized", "Mercado X", "Mercado X"},
		{"all caps", "FEIJÃO PRETO", "Feijão Preto"},
		{"accented first letter", "água mineral", "Água Mineral"},
		{"empty", "", ""},
		{"single word", "pão", "Pão"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CapitalizeWords(tt.input)
			if got != tt.expected {
				t.Errorf("CapitalizeWords(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCapitalizeWords_Idempotent(t *testing.T) {
	inputs := []string{
		"arroz integral",
		"MERCADO DO ZÉ",
		"água com gás",
		"",
		"a b c",
	}

	for _, s := range inputs {
		once := CapitalizeWords(s)
		twice := CapitalizeWords(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", s, once, twice)
		}
	}
}

func TestMaskCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"digits only", "1050", "R$ 10,50"},
		{"re-masking own output", "R$ 10,50", "R$ 10,50"},
		{"single digit", "5", "R$ 0,05"},
		{"rejects decimal point", "10.50", "R$ 10,50"},
		{"mixed garbage", "abc12x3", "R$ 1,23"},
		{"zero", "0", "R$ 0,00"},
		{"empty clears", "", ""},
		{"no digits clears", "R$ ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskCurrency(tt.input)
			if got != tt.expected {
				t.Errorf("MaskCurrency(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// Every non-negative cent amount must survive the mask-then-parse round trip.
func TestCurrencyRoundTrip(t *testing.T) {
	for cents := 0; cents <= 25000; cents++ {
		display := MaskCurrency(fmt.Sprintf("%d", cents))
		got := ToDecimal(display)
		want := float64(cents) / 100
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("round trip failed for %d cents: display %q, parsed %v, want %v", cents, display, got, want)
		}
	}
}

func TestToDecimal(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"R$ 10,50", 10.50},
		{"R$ 0,00", 0},
		{"10,50", 10.50},
		{"", 0},
		{"garbage", 0},
	}

	for _, tt := range tests {
		if got := ToDecimal(tt.input); got != tt.expected {
			t.Errorf("ToDecimal(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"exactly 11 digits", "11913311054", "11 91331-1054"},
		{"already masked", "11 91331-1054", "11 91331-1054"},
		{"fewer digits pass through", "1191331", "1191331"},
		{"non-digits stripped", "(11) 9133", "119133"},
		{"twelve digits pass through", "119133110545", "119133110545"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskPhone(tt.input)
			if got != tt.expected {
				t.Errorf("MaskPhone(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name     string
		itens    []models.Item
		expected string
	}{
		{"empty draft", nil, "0.00"},
		{
			"two items",
			[]models.Item{
				{Valor: 10.00, Quantidade: 2},
				{Valor: 5.50, Quantidade: 1},
			},
			"25.50",
		},
		{"single unit", []models.Item{{Valor: 0.05, Quantidade: 3}}, "0.15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Total(tt.itens); got != tt.expected {
				t.Errorf("Total = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTotalBRL(t *testing.T) {
	itens := []models.Item{{Valor: 10.00, Quantidade: 2}, {Valor: 5.50, Quantidade: 1}}
	if got := TotalBRL(itens); got != "R$ 25,50" {
		t.Errorf("TotalBRL = %q, want %q", got, "R$ 25,50")
	}
	if got := TotalBRL(nil); got != "R$ 0,00" {
		t.Errorf("TotalBRL(nil) = %q, want %q", got, "R$ 0,00")
	}
}
