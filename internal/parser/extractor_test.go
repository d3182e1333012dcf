package parser

import (
	"fmt"
	"testing"

	"drivethru/internal/catalog"
)

func newTestExtractor() *Extractor {
	return NewExtractor(catalog.DefaultMenu())
}

func TestExtract_EmptyTranscript(t *testing.T) {
	e := newTestExtractor()

	for _, transcript := range []string{"", "   ", "halo selamat pagi", "saya mau tanya jalan"} {
		got := e.Extract(transcript)
		if len(got) != 0 {
			t.Errorf("Extract(%q) = %v, want empty map", transcript, got)
		}
	}
}

func TestExtract_BareKeywordDefaultsToOne(t *testing.T) {
	e := newTestExtractor()

	got := e.Extract("burger")
	if got["burger"] != 1 {
		t.Fatalf("expected quantity 1, got %v", got)
	}
}

func TestExtract_DigitQuantities(t *testing.T) {
	e := newTestExtractor()

	for n := 1; n <= 20; n++ {
		cases := []string{
			fmt.Sprintf("%d burger", n),
			fmt.Sprintf("burger %d", n),
			fmt.Sprintf("mau %d burger", n),
		}
		for _, transcript := range cases {
			got := e.Extract(transcript)
			if got["burger"] != n {
				t.Errorf("Extract(%q) = %v, want burger=%d", transcript, got, n)
			}
		}
	}
}

func TestExtract_SpelledOutQuantities(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		transcript string
		item       string
		want       int
	}{
		{"satu burger", "burger", 1},
		{"dua ayam goreng", "ayam goreng", 2},
		{"tiga kentang goreng", "kentang goreng", 3},
		{"burger lima", "burger", 5},
		{"sepuluh cola", "cola", 10},
		{"sebelas hot dog", "hot dog", 11},
		{"dua belas burger", "burger", 12},
		{"sembilan belas cola", "cola", 19},
		{"dua puluh es krim", "es krim", 20},
		{"two burger", "burger", 2},
		{"twelve cola", "cola", 12},
		{"burger twenty", "burger", 20},
		{"mau tujuh burger", "burger", 7},
		{"pesan three fried chicken", "ayam goreng", 3},
	}

	for _, tt := range tests {
		got := e.Extract(tt.transcript)
		if got[tt.item] != tt.want {
			t.Errorf("Extract(%q) = %v, want %s=%d", tt.transcript, got, tt.item, tt.want)
		}
	}
}

func TestExtract_IntentPhraseWithoutNumber(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		transcript string
		item       string
	}{
		{"mau burger", "burger"},
		{"pesan cola", "cola"},
		{"ingin es krim", "es krim"},
		{"order hot dog", "hot dog"},
	}

	for _, tt := range tests {
		got := e.Extract(tt.transcript)
		if got[tt.item] != 1 {
			t.Errorf("Extract(%q) = %v, want %s=1", tt.transcript, got, tt.item)
		}
	}
}

func TestExtract_AliasesResolveToCanonicalName(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		transcript string
		item       string
		want       int
	}{
		{"dua hamburger", "burger", 2},
		{"tiga ayam", "ayam goreng", 3},
		{"fried chicken", "ayam goreng", 1},
		{"empat french fries", "kentang goreng", 4},
		{"dua sosis", "hot dog", 2},
		{"satu pepsi", "cola", 1},
		{"air mineral", "mineral water", 1},
		{"ice cream dua", "es krim", 2},
	}

	for _, tt := range tests {
		got := e.Extract(tt.transcript)
		if got[tt.item] != tt.want {
			t.Errorf("Extract(%q) = %v, want %s=%d", tt.transcript, got, tt.item, tt.want)
		}
	}
}

func TestExtract_MultipleItemsInOneTranscript(t *testing.T) {
	e := newTestExtractor()

	got := e.Extract("saya mau dua burger dan satu cola")

	if got["burger"] != 2 {
		t.Errorf("expected burger=2, got %v", got)
	}
	if got["cola"] != 1 {
		t.Errorf("expected cola=1, got %v", got)
	}
	if len(got) != 2 {
		t.Errorf("expected exactly 2 items, got %v", got)
	}
}

func TestExtract_UppercaseTranscript(t *testing.T) {
	e := newTestExtractor()

	got := e.Extract("MAU DUA BURGER")
	if got["burger"] != 2 {
		t.Fatalf("expected burger=2, got %v", got)
	}
}

// Repeated mentions of one item are not summed: the first match wins.
func TestExtract_RepeatedMentionNotSummed(t *testing.T) {
	e := newTestExtractor()

	got := e.Extract("dua burger satu burger lagi")
	if got["burger"] != 2 {
		t.Fatalf("expected burger=2 (first match), got %v", got)
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		token string
		want  int
	}{
		{"3", 3},
		{"20", 20},
		{"dua", 2},
		{"dua belas", 12},
		{"seventeen", 17},
		{"", 1},
		{"banyak", 1}, // unrecognized word degrades to 1
	}

	for _, tt := range tests {
		if got := parseQuantity(tt.token); got != tt.want {
			t.Errorf("parseQuantity(%q) = %d, want %d", tt.token, got, tt.want)
		}
	}
}

func TestExtract_QuantityNeverBelowOne(t *testing.T) {
	e := newTestExtractor()

	// "0 burger" carries an explicit zero; a match of any kind is
	// floored at quantity 1.
	got := e.Extract("0 burger")
	if got["burger"] != 1 {
		t.Fatalf("expected burger=1, got %v", got)
	}
}
