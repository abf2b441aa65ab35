package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleConfig = `---
loan:
  principal: 59957.41
  annualRate: 0.057285
  baseMonthlyPayment: 1336.39
  escrow: 450.00
  startDate: "2025-01"
analysis:
  extraMonthlyPayment: 250.00
  oneTimeAmount: 5000.00
  oneTimeMonth: 6
  targetPayoffDate: "2028-06"
  asOfDate: "2026-03"
  alternativeReturnRate: 0.06
  projectionYears: 15
property:
  currentMarketValue: 500000
  purchasePrice: 325000
  monthlyRentalIncome: 3000
  monthlyMortgagePayment: 1500
  monthlyPropertyTax: 400
  yearsOwned: 10
personal:
  currentRent: 2000
  currentUtilities: 200
tax:
  filingStatus: married-joint
  annualIncome: 120000
  depreciableValue: 300000
  landValue: 50000
  stateTaxRate: 0.05
output:
  format: pretty
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Loan.Principal != 59957.41 {
		t.Errorf("Loan.Principal = %v, expected 59957.41", conf.Loan.Principal)
	}
	if conf.Loan.AnnualRate != 0.057285 {
		t.Errorf("Loan.AnnualRate = %v, expected 0.057285", conf.Loan.AnnualRate)
	}
	if conf.Analysis.ExtraMonthlyPayment != 250 {
		t.Errorf("Analysis.ExtraMonthlyPayment = %v, expected 250", conf.Analysis.ExtraMonthlyPayment)
	}
	if conf.Analysis.ProjectionYears != 15 {
		t.Errorf("Analysis.ProjectionYears = %d, expected 15", conf.Analysis.ProjectionYears)
	}
	if conf.Property.CurrentMarketValue != 500000 {
		t.Errorf("Property.CurrentMarketValue = %v, expected 500000", conf.Property.CurrentMarketValue)
	}
	if conf.Personal.CurrentRent != 2000 {
		t.Errorf("Personal.CurrentRent = %v, expected 2000", conf.Personal.CurrentRent)
	}
	if conf.Tax.FilingStatus != "married-joint" {
		t.Errorf("Tax.FilingStatus = %q, expected married-joint", conf.Tax.FilingStatus)
	}
	if conf.Output.Format != "pretty" {
		t.Errorf("Output.Format = %q, expected pretty", conf.Output.Format)
	}
}

func TestLoadConfiguration_MissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("LoadConfiguration() expected error for missing file")
	}
}

func TestLoadConfigurationFromBytes(t *testing.T) {
	conf, err := LoadConfigurationFromBytes([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromBytes() error = %v", err)
	}
	if conf.Loan.BaseMonthlyPayment != 1336.39 {
		t.Errorf("Loan.BaseMonthlyPayment = %v, expected 1336.39", conf.Loan.BaseMonthlyPayment)
	}
}

func TestLoadConfigurationFromBytes_Invalid(t *testing.T) {
	if _, err := LoadConfigurationFromBytes([]byte("loan: [not: a: mapping")); err == nil {
		t.Errorf("LoadConfigurationFromBytes() expected error for malformed YAML")
	}
}

func TestApplyDefaults(t *testing.T) {
	conf, err := LoadConfigurationFromBytes([]byte("loan:\n  principal: 1000\n  annualRate: 0.05\n  baseMonthlyPayment: 100\n  startDate: \"2025-01\"\n"))
	if err != nil {
		t.Fatalf("LoadConfigurationFromBytes() error = %v", err)
	}
	if conf.Analysis.ProjectionYears != 10 {
		t.Errorf("default ProjectionYears = %d, expected 10", conf.Analysis.ProjectionYears)
	}
	if conf.Analysis.AlternativeReturnRate != 0.07 {
		t.Errorf("default AlternativeReturnRate = %v, expected 0.07", conf.Analysis.AlternativeReturnRate)
	}
	if conf.Tax.FilingStatus != "single" {
		t.Errorf("default FilingStatus = %q, expected single", conf.Tax.FilingStatus)
	}
}

func TestLoanParameters(t *testing.T) {
	conf, err := LoadConfigurationFromBytes([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromBytes() error = %v", err)
	}

	loan, err := conf.LoanParameters()
	if err != nil {
		t.Fatalf("LoanParameters() error = %v", err)
	}
	expected := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !loan.StartDate.Equal(expected) {
		t.Errorf("StartDate = %v, expected %v", loan.StartDate, expected)
	}
	if loan.Escrow != 450 {
		t.Errorf("Escrow = %v, expected 450", loan.Escrow)
	}
}

func TestLoanParameters_BadDate(t *testing.T) {
	conf := Configuration{Loan: LoanConfig{StartDate: "June 2025"}}
	if _, err := conf.LoanParameters(); err == nil {
		t.Errorf("LoanParameters() expected error for unparseable date")
	}
}

func TestTargetPayoffDate(t *testing.T) {
	conf := Configuration{}
	if _, ok, err := conf.TargetPayoffDate(); ok || err != nil {
		t.Errorf("TargetPayoffDate() = (_, %v, %v), expected not configured", ok, err)
	}

	conf.Analysis.TargetPayoffDate = "2028-06"
	target, ok, err := conf.TargetPayoffDate()
	if err != nil || !ok {
		t.Fatalf("TargetPayoffDate() = (_, %v, %v), expected configured", ok, err)
	}
	if target.Year() != 2028 || target.Month() != time.June {
		t.Errorf("TargetPayoffDate() = %v, expected 2028-06", target)
	}

	conf.Analysis.TargetPayoffDate = "soon"
	if _, _, err := conf.TargetPayoffDate(); err == nil {
		t.Errorf("TargetPayoffDate() expected error for unparseable date")
	}
}

func TestAsOfDate(t *testing.T) {
	conf := Configuration{}
	if _, ok, err := conf.AsOfDate(); ok || err != nil {
		t.Errorf("AsOfDate() = (_, %v, %v), expected not configured", ok, err)
	}

	conf.Analysis.AsOfDate = "2026-03"
	asOf, ok, err := conf.AsOfDate()
	if err != nil || !ok {
		t.Fatalf("AsOfDate() = (_, %v, %v), expected configured", ok, err)
	}
	if asOf.Year() != 2026 || asOf.Month() != time.March {
		t.Errorf("AsOfDate() = %v, expected 2026-03", asOf)
	}
}

func TestValidateConfiguration(t *testing.T) {
	conf, err := LoadConfigurationFromBytes([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromBytes() error = %v", err)
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("ValidateConfiguration() = %v, expected no warnings", warnings)
	}
}

func TestValidateConfiguration_TargetBeforeStart(t *testing.T) {
	conf, err := LoadConfigurationFromBytes([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromBytes() error = %v", err)
	}
	conf.Analysis.TargetPayoffDate = "2024-06"

	warnings := conf.ValidateConfiguration()
	if len(warnings) != 1 {
		t.Fatalf("ValidateConfiguration() = %v, expected one warning", warnings)
	}
}

func TestValidateConfiguration_BadLoanDate(t *testing.T) {
	conf, err := LoadConfigurationFromBytes([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromBytes() error = %v", err)
	}
	conf.Loan.StartDate = "whenever"

	warnings := conf.ValidateConfiguration()
	if len(warnings) == 0 {
		t.Fatalf("ValidateConfiguration() expected a warning for an unparseable start date")
	}
}
