package payroll

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Jurisdiction selects which tax tables apply to a payroll run.
type Jurisdiction int

const (
	JurisdictionOther Jurisdiction = iota
	JurisdictionUS
	JurisdictionCA
)

func JurisdictionFromCode(code string) Jurisdiction {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "US", "USA":
		return JurisdictionUS
	case "CA", "CAN":
		return JurisdictionCA
	default:
		return JurisdictionOther
	}
}

// taxYear is the only year with configured tables. The year argument on
// the calculators is accepted so callers can record which tables a run
// used; any other year falls back to these figures.
const taxYear = 2025

// taxBracket is one progressive bracket: tax below the bracket floor is
// base, income inside the bracket is taxed at rate. The last bracket of
// a schedule has no upper bound.
type taxBracket struct {
	upper decimal.Decimal
	base  decimal.Decimal
	rate  decimal.Decimal
}

// Illustrative biweekly bracket schedules, not authoritative tax law.
var federalBrackets = map[Jurisdiction][]taxBracket{
	JurisdictionUS: {
		{upper: decimal.NewFromInt(300), base: decimal.Zero, rate: decimal.NewFromFloat(0.10)},
		{upper: decimal.NewFromInt(1000), base: decimal.NewFromInt(30), rate: decimal.NewFromFloat(0.12)},
		{upper: decimal.NewFromInt(2000), base: decimal.NewFromInt(114), rate: decimal.NewFromFloat(0.22)},
		{upper: decimal.NewFromInt(4000), base: decimal.NewFromInt(334), rate: decimal.NewFromFloat(0.24)},
		{base: decimal.NewFromInt(814), rate: decimal.NewFromFloat(0.32)},
	},
	JurisdictionCA: {
		{upper: decimal.NewFromInt(400), base: decimal.Zero, rate: decimal.NewFromFloat(0.15)},
		{upper: decimal.NewFromInt(800), base: decimal.NewFromInt(60), rate: decimal.NewFromFloat(0.205)},
		{upper: decimal.NewFromInt(1600), base: decimal.NewFromInt(142), rate: decimal.NewFromFloat(0.26)},
		{upper: decimal.NewFromInt(3200), base: decimal.NewFromInt(350), rate: decimal.NewFromFloat(0.29)},
		{base: decimal.NewFromInt(814), rate: decimal.NewFromFloat(0.33)},
	},
}

// flatFederalRate applies to any jurisdiction without a bracket schedule.
var flatFederalRate = decimal.NewFromFloat(0.15)

type contributionRule struct {
	rate      decimal.Decimal
	annualCap decimal.Decimal
}

var contributionRules = map[Jurisdiction]contributionRule{
	JurisdictionUS: {rate: decimal.NewFromFloat(0.062), annualCap: decimal.NewFromInt(160200)},
	JurisdictionCA: {rate: decimal.NewFromFloat(0.0595), annualCap: decimal.NewFromInt(68500)},
}

// secondaryContributionRule covers medicare (US) and EI (CA). A zero
// cap means the rate applies to the full gross pay.
type secondaryContributionRule struct {
	rate      decimal.Decimal
	periodCap decimal.Decimal
	hasCap    bool
}

var secondaryContributionRules = map[Jurisdiction]secondaryContributionRule{
	JurisdictionUS: {rate: decimal.NewFromFloat(0.0145)},
	JurisdictionCA: {rate: decimal.NewFromFloat(0.0158), periodCap: decimal.NewFromInt(63200), hasCap: true},
}

var stateProvincialRates = map[Jurisdiction]map[string]decimal.Decimal{
	JurisdictionUS: {
		"CA": decimal.NewFromFloat(0.09),
		"NY": decimal.NewFromFloat(0.065),
		"TX": decimal.Zero,
		"FL": decimal.Zero,
	},
	JurisdictionCA: {
		"ON": decimal.NewFromFloat(0.0505),
		"BC": decimal.NewFromFloat(0.0506),
		"AB": decimal.NewFromFloat(0.10),
		"QC": decimal.NewFromFloat(0.15),
	},
}

var defaultStateProvincialRate = decimal.NewFromFloat(0.05)

// FederalIncomeTax computes progressive federal tax on a single period's
// gross pay. Jurisdictions without a bracket schedule pay a flat 15%.
// The result is unrounded.
func FederalIncomeTax(gross decimal.Decimal, j Jurisdiction, year int) decimal.Decimal {
	if gross.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	brackets, ok := federalBrackets[j]
	if !ok {
		return gross.Mul(flatFederalRate)
	}

	floor := decimal.Zero
	for i, b := range brackets {
		last := i == len(brackets)-1
		if last || gross.LessThanOrEqual(b.upper) {
			return b.base.Add(b.rate.Mul(gross.Sub(floor)))
		}
		floor = b.upper
	}
	return decimal.Zero
}

// ContributionTax computes the social-security-equivalent contribution,
// honoring the annual income cap against year-to-date gross. Once YTD
// gross reaches the cap, further periods contribute zero.
func ContributionTax(gross, ytdGross decimal.Decimal, j Jurisdiction, year int) decimal.Decimal {
	rule, ok := contributionRules[j]
	if !ok {
		return decimal.Zero
	}

	remaining := rule.annualCap.Sub(ytdGross)
	if remaining.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	taxable := decimal.Min(gross, remaining)
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return taxable.Mul(rule.rate)
}

// SecondaryContributionTax computes the medicare/EI-equivalent
// contribution. The CA variant caps the current period's pay against an
// annual figure without tracking YTD; callers rely on that exact
// behavior for reproducibility.
func SecondaryContributionTax(gross decimal.Decimal, j Jurisdiction, year int) decimal.Decimal {
	rule, ok := secondaryContributionRules[j]
	if !ok {
		return decimal.Zero
	}
	if gross.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	taxable := gross
	if rule.hasCap {
		taxable = decimal.Min(gross, rule.periodCap)
	}
	return taxable.Mul(rule.rate)
}

// StateProvincialTax applies a flat sub-jurisdiction rate, or the
// per-country default when the sub-jurisdiction is absent or unknown.
// Jurisdictions outside US/CA pay zero.
func StateProvincialTax(gross decimal.Decimal, j Jurisdiction, subJurisdiction *string) decimal.Decimal {
	rates, ok := stateProvincialRates[j]
	if !ok {
		return decimal.Zero
	}
	if gross.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	rate := defaultStateProvincialRate
	if subJurisdiction != nil {
		if r, found := rates[strings.ToUpper(strings.TrimSpace(*subJurisdiction))]; found {
			rate = r
		}
	}
	return gross.Mul(rate)
}
