package usecase

import (
	"strings"
	"testing"
)

func TestNewTagParser(t *testing.T) {
	t.Run("creates parser with debug logging disabled", func(t *testing.T) {
		p := NewTagParser(false)
		if p.enableDebugLogging {
			t.Error("expected debug logging to be disabled")
		}
	})

	t.Run("creates parser with debug logging enabled", func(t *testing.T) {
		p := NewTagParser(true)
		if !p.enableDebugLogging {
			t.Error("expected debug logging to be enabled")
		}
	})
}

func TestParse_Totality(t *testing.T) {
	p := NewTagParser(false)

	testCases := []struct {
		name string
		text string
	}{
		{name: "empty string", text: ""},
		{name: "whitespace only", text: "   \n\t  \n  "},
		{name: "no digits", text: "just words\nand more words"},
		{name: "only punctuation", text: "!@#$%^&*()"},
		{name: "single newline", text: "\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := p.Parse(tc.text)

			if result.RawText != strings.TrimSpace(tc.text) {
				t.Errorf("RawText = %q, want %q", result.RawText, strings.TrimSpace(tc.text))
			}
			if result.MRP != nil {
				t.Errorf("MRP = %v, want nil", *result.MRP)
			}
			if result.SellPrice != nil {
				t.Errorf("SellPrice = %v, want nil", *result.SellPrice)
			}
		})
	}
}

func TestParse_KeywordExtraction(t *testing.T) {
	p := NewTagParser(false)

	testCases := []struct {
		name     string
		text     string
		wantMRP  float64
		wantSell float64
	}{
		{
			name:     "explicit mrp and sell keywords",
			text:     "Lux Soap\nMRP: 120\nSell Price 90",
			wantMRP:  120.0,
			wantSell: 90.0,
		},
		{
			name:     "dotted mrp variant with hyphen separator",
			text:     "M.R.P- 99.50\nOffer 85",
			wantMRP:  99.50,
			wantSell: 85.0,
		},
		{
			name:     "max retail wording",
			text:     "Max Retail 250\nNow 199",
			wantMRP:  250.0,
			wantSell: 199.0,
		},
		{
			name:     "currency symbol between keyword and amount",
			text:     "MRP ₹150\nSale ₹ 120",
			wantMRP:  150.0,
			wantSell: 120.0,
		},
		{
			name:     "our price keyword",
			text:     "price mrp 500\nour price: 450",
			wantMRP:  500.0,
			wantSell: 450.0,
		},
		{
			name:     "keywords are case-insensitive",
			text:     "mrp:340\nSELLING 299",
			wantMRP:  340.0,
			wantSell: 299.0,
		},
		{
			name:     "keyword values win over larger fallback numbers",
			text:     "Batch 999999\nMRP: 120\nSell: 90",
			wantMRP:  120.0,
			wantSell: 90.0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := p.Parse(tc.text)

			if result.MRP == nil {
				t.Fatal("MRP = nil, want value")
			}
			if *result.MRP != tc.wantMRP {
				t.Errorf("MRP = %v, want %v", *result.MRP, tc.wantMRP)
			}
			if result.SellPrice == nil {
				t.Fatal("SellPrice = nil, want value")
			}
			if *result.SellPrice != tc.wantSell {
				t.Errorf("SellPrice = %v, want %v", *result.SellPrice, tc.wantSell)
			}
		})
	}
}

func TestParse_FallbackPool(t *testing.T) {
	p := NewTagParser(false)

	t.Run("biggest number becomes mrp, smallest becomes sell", func(t *testing.T) {
		result := p.Parse("Parle Biscuits\n45\n99")

		if result.MRP == nil || *result.MRP != 99.0 {
			t.Errorf("MRP = %v, want 99.0", result.MRP)
		}
		if result.SellPrice == nil || *result.SellPrice != 45.0 {
			t.Errorf("SellPrice = %v, want 45.0", result.SellPrice)
		}
	})

	t.Run("single number collapses into both fields", func(t *testing.T) {
		result := p.Parse("Parle Biscuits\n199")

		if result.MRP == nil || *result.MRP != 199.0 {
			t.Errorf("MRP = %v, want 199.0", result.MRP)
		}
		if result.SellPrice == nil || *result.SellPrice != 199.0 {
			t.Errorf("SellPrice = %v, want 199.0", result.SellPrice)
		}
	})

	t.Run("duplicate numbers are pooled once", func(t *testing.T) {
		result := p.Parse("55 55 55")

		if result.MRP == nil || *result.MRP != 55.0 {
			t.Errorf("MRP = %v, want 55.0", result.MRP)
		}
		if result.SellPrice == nil || *result.SellPrice != 55.0 {
			t.Errorf("SellPrice = %v, want 55.0", result.SellPrice)
		}
	})

	t.Run("currency-prefixed amounts join the pool", func(t *testing.T) {
		result := p.Parse("Rs. 80\nINR 120\n₹95")

		if result.MRP == nil || *result.MRP != 120.0 {
			t.Errorf("MRP = %v, want 120.0", result.MRP)
		}
		if result.SellPrice == nil || *result.SellPrice != 80.0 {
			t.Errorf("SellPrice = %v, want 80.0", result.SellPrice)
		}
	})

	t.Run("keyword mrp plus pooled sell", func(t *testing.T) {
		// No sell keyword; mrp resolves by keyword, sell falls back
		// to the pool minimum because more than one amount exists
		result := p.Parse("MRP: 120\n90")

		if result.MRP == nil || *result.MRP != 120.0 {
			t.Errorf("MRP = %v, want 120.0", result.MRP)
		}
		if result.SellPrice == nil || *result.SellPrice != 90.0 {
			t.Errorf("SellPrice = %v, want 90.0", result.SellPrice)
		}
	})

	t.Run("single digit numbers are ignored", func(t *testing.T) {
		result := p.Parse("Pack of 5")

		if result.MRP != nil {
			t.Errorf("MRP = %v, want nil", *result.MRP)
		}
		if result.SellPrice != nil {
			t.Errorf("SellPrice = %v, want nil", *result.SellPrice)
		}
	})

	t.Run("decimal amounts keep up to two places", func(t *testing.T) {
		result := p.Parse("49.99\n34.50")

		if result.MRP == nil || *result.MRP != 49.99 {
			t.Errorf("MRP = %v, want 49.99", result.MRP)
		}
		if result.SellPrice == nil || *result.SellPrice != 34.50 {
			t.Errorf("SellPrice = %v, want 34.50", result.SellPrice)
		}
	})

	t.Run("fallback sell never exceeds fallback mrp with multiple candidates", func(t *testing.T) {
		result := p.Parse("30 700 245")

		if result.MRP == nil || result.SellPrice == nil {
			t.Fatal("expected both fields resolved")
		}
		if *result.SellPrice > *result.MRP {
			t.Errorf("SellPrice %v > MRP %v", *result.SellPrice, *result.MRP)
		}
	})
}

func TestParse_NameGuess(t *testing.T) {
	p := NewTagParser(false)

	testCases := []struct {
		name     string
		text     string
		wantName string
		wantNil  bool
	}{
		{
			name:     "plain name line with no numbers",
			text:     "Fresh Organic Ghee",
			wantName: "Fresh Organic Ghee",
		},
		{
			name:     "first line skipped for mrp keyword",
			text:     "MRP ₹150\nLavender Soap",
			wantName: "Lavender Soap",
		},
		{
			name:     "currency glyph line skipped",
			text:     "₹ 99\nHerbal Shampoo\nBatch 12",
			wantName: "Herbal Shampoo",
		},
		{
			name:    "no qualifying line in first three",
			text:    "MRP 100\nprice 90\nrs 80\nActual Name Too Late",
			wantNil: true,
		},
		{
			name:    "digits-only lines never name",
			text:    "1234\n5678",
			wantNil: true,
		},
		{
			name:     "name line trimmed of whitespace",
			text:     "   Amul Butter   \nMRP: 60",
			wantName: "Amul Butter",
		},
		{
			name:    "empty input",
			text:    "",
			wantNil: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := p.Parse(tc.text)

			if tc.wantNil {
				if result.Name != nil {
					t.Errorf("Name = %q, want nil", *result.Name)
				}
				return
			}
			if result.Name == nil {
				t.Fatal("Name = nil, want value")
			}
			if *result.Name != tc.wantName {
				t.Errorf("Name = %q, want %q", *result.Name, tc.wantName)
			}
		})
	}
}

func TestParse_Idempotence(t *testing.T) {
	p := NewTagParser(false)

	first := p.Parse("  Amul Butter\nMRP: 60\nOffer 52  ")
	second := p.Parse(first.RawText)

	if second.RawText != first.RawText {
		t.Errorf("RawText changed: %q vs %q", second.RawText, first.RawText)
	}
	if first.Name == nil || second.Name == nil || *first.Name != *second.Name {
		t.Errorf("Name changed: %v vs %v", first.Name, second.Name)
	}
	if first.MRP == nil || second.MRP == nil || *first.MRP != *second.MRP {
		t.Errorf("MRP changed: %v vs %v", first.MRP, second.MRP)
	}
	if first.SellPrice == nil || second.SellPrice == nil || *first.SellPrice != *second.SellPrice {
		t.Errorf("SellPrice changed: %v vs %v", first.SellPrice, second.SellPrice)
	}
}

func TestTokenizeLines(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "drops empty lines and trims",
			text: "  a  \n\n b\n   \nc",
			want: []string{"a", "b", "c"},
		},
		{
			name: "windows line endings",
			text: "one\r\ntwo\r\n",
			want: []string{"one", "two"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tokenizeLines(tc.text)

			if len(got) != len(tc.want) {
				t.Fatalf("got %d lines %v, want %d", len(got), got, len(tc.want))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}
