package payroll

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestJurisdictionFromCode(t *testing.T) {
	assert.Equal(t, JurisdictionUS, JurisdictionFromCode("US"))
	assert.Equal(t, JurisdictionUS, JurisdictionFromCode("usa"))
	assert.Equal(t, JurisdictionCA, JurisdictionFromCode("CA"))
	assert.Equal(t, JurisdictionCA, JurisdictionFromCode(" can "))
	assert.Equal(t, JurisdictionOther, JurisdictionFromCode("DE"))
	assert.Equal(t, JurisdictionOther, JurisdictionFromCode(""))
}

func TestFederalIncomeTax_US(t *testing.T) {
	tests := []struct {
		gross string
		want  string
	}{
		{"0", "0"},
		{"200", "20"},       // first bracket, 10%
		{"300", "30"},       // first bracket upper bound
		{"800", "90"},       // 30 + 0.12*(800-300)
		{"1000", "114"},     // second bracket upper bound
		{"1100", "136"},     // 114 + 0.22*(1100-1000)
		{"2000", "334"},     // third bracket upper bound
		{"3000", "574"},     // 334 + 0.24*1000
		{"5000", "1134"},    // 814 + 0.32*1000, open-ended bracket
	}
	for _, tt := range tests {
		t.Run(tt.gross, func(t *testing.T) {
			got := FederalIncomeTax(d(tt.gross), JurisdictionUS, taxYear)
			assert.True(t, got.Equal(d(tt.want)), "gross %s: got %s, want %s", tt.gross, got, tt.want)
		})
	}
}

func TestFederalIncomeTax_CA(t *testing.T) {
	tests := []struct {
		gross string
		want  string
	}{
		{"400", "60"},
		{"600", "101"},   // 60 + 0.205*200
		{"1700", "379"},  // 350 + 0.29*(1700-1600)
		{"3200", "814"},
		{"4200", "1144"}, // 814 + 0.33*1000
	}
	for _, tt := range tests {
		t.Run(tt.gross, func(t *testing.T) {
			got := FederalIncomeTax(d(tt.gross), JurisdictionCA, taxYear)
			assert.True(t, got.Equal(d(tt.want)), "gross %s: got %s, want %s", tt.gross, got, tt.want)
		})
	}
}

func TestFederalIncomeTax_OtherIsFlatFifteenPercent(t *testing.T) {
	got := FederalIncomeTax(d("1000"), JurisdictionOther, taxYear)
	assert.True(t, got.Equal(d("150")), "got %s", got)
}

func TestContributionTax(t *testing.T) {
	t.Run("us standard rate", func(t *testing.T) {
		got := ContributionTax(d("800"), decimal.Zero, JurisdictionUS, taxYear)
		assert.True(t, got.Equal(d("49.6")), "got %s", got)
	})

	t.Run("ytd exactly at cap yields zero", func(t *testing.T) {
		got := ContributionTax(d("800"), d("160200"), JurisdictionUS, taxYear)
		assert.True(t, got.IsZero(), "got %s", got)
	})

	t.Run("ytd above cap yields zero", func(t *testing.T) {
		got := ContributionTax(d("800"), d("200000"), JurisdictionUS, taxYear)
		assert.True(t, got.IsZero(), "got %s", got)
	})

	t.Run("partial room under cap taxes only the remainder", func(t *testing.T) {
		got := ContributionTax(d("800"), d("160000"), JurisdictionUS, taxYear)
		assert.True(t, got.Equal(d("12.4")), "got %s", got) // 200 * 0.062
	})

	t.Run("ca rate and cap", func(t *testing.T) {
		got := ContributionTax(d("1000"), decimal.Zero, JurisdictionCA, taxYear)
		assert.True(t, got.Equal(d("59.5")), "got %s", got)

		got = ContributionTax(d("1000"), d("68500"), JurisdictionCA, taxYear)
		assert.True(t, got.IsZero(), "got %s", got)
	})

	t.Run("other jurisdiction yields zero", func(t *testing.T) {
		got := ContributionTax(d("1000"), decimal.Zero, JurisdictionOther, taxYear)
		assert.True(t, got.IsZero(), "got %s", got)
	})
}

func TestSecondaryContributionTax(t *testing.T) {
	t.Run("us is uncapped", func(t *testing.T) {
		got := SecondaryContributionTax(d("800"), JurisdictionUS, taxYear)
		assert.True(t, got.Equal(d("11.6")), "got %s", got)

		got = SecondaryContributionTax(d("100000"), JurisdictionUS, taxYear)
		assert.True(t, got.Equal(d("1450")), "got %s", got)
	})

	// The CA variant caps the current period's pay against the annual
	// figure instead of tracking YTD. Two consecutive periods under the
	// cap are each taxed in full even if together they exceed it.
	t.Run("ca caps period pay against the annual figure", func(t *testing.T) {
		got := SecondaryContributionTax(d("70000"), JurisdictionCA, taxYear)
		assert.True(t, got.Equal(d("998.56")), "got %s", got) // 63200 * 0.0158

		got = SecondaryContributionTax(d("40000"), JurisdictionCA, taxYear)
		assert.True(t, got.Equal(d("632")), "got %s", got) // full 40000 taxed, no YTD memory
	})

	t.Run("other jurisdiction yields zero", func(t *testing.T) {
		got := SecondaryContributionTax(d("1000"), JurisdictionOther, taxYear)
		assert.True(t, got.IsZero(), "got %s", got)
	})
}

func TestStateProvincialTax(t *testing.T) {
	ca := "CA"
	tx := "TX"
	on := "ON"
	unknown := "ZZ"

	t.Run("nil sub-jurisdiction uses the country default", func(t *testing.T) {
		got := StateProvincialTax(d("800"), JurisdictionUS, nil)
		assert.True(t, got.Equal(d("40")), "got %s", got)
	})

	t.Run("known sub-jurisdiction rates", func(t *testing.T) {
		got := StateProvincialTax(d("800"), JurisdictionUS, &ca)
		assert.True(t, got.Equal(d("72")), "got %s", got)

		got = StateProvincialTax(d("800"), JurisdictionUS, &tx)
		assert.True(t, got.IsZero(), "got %s", got)

		got = StateProvincialTax(d("1000"), JurisdictionCA, &on)
		assert.True(t, got.Equal(d("50.5")), "got %s", got)
	})

	t.Run("unknown sub-jurisdiction falls back to default", func(t *testing.T) {
		got := StateProvincialTax(d("800"), JurisdictionUS, &unknown)
		assert.True(t, got.Equal(d("40")), "got %s", got)
	})

	t.Run("other jurisdiction yields zero", func(t *testing.T) {
		got := StateProvincialTax(d("800"), JurisdictionOther, &ca)
		assert.True(t, got.IsZero(), "got %s", got)
	})
}

// Every calculator must return a value in [0, gross] for the configured
// rates, across jurisdictions and a spread of gross amounts.
func TestCalculatorsStayWithinGross(t *testing.T) {
	grosses := []string{"0", "0.01", "150", "800", "1234.56", "5000", "160200", "1000000"}
	jurisdictions := []Jurisdiction{JurisdictionUS, JurisdictionCA, JurisdictionOther}

	for _, j := range jurisdictions {
		for _, g := range grosses {
			gross := d(g)
			results := map[string]decimal.Decimal{
				"federal":      FederalIncomeTax(gross, j, taxYear),
				"contribution": ContributionTax(gross, decimal.Zero, j, taxYear),
				"secondary":    SecondaryContributionTax(gross, j, taxYear),
				"state":        StateProvincialTax(gross, j, nil),
			}
			for name, got := range results {
				label := fmt.Sprintf("%s jurisdiction=%d gross=%s", name, j, g)
				assert.False(t, got.IsNegative(), "%s returned negative %s", label, got)
				assert.True(t, got.LessThanOrEqual(gross), "%s returned %s above gross", label, got)
			}
		}
	}
}
