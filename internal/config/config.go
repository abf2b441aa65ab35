// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"bytes"
	"fmt"
	"time"

	"github.com/PROACTIVA-US/property-manager-sub001/pkg/amortize"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/constants"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/property"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/tax"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/validation"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all inputs for a property finance analysis run.
type Configuration struct {
	Loan     LoanConfig
	Analysis AnalysisConfig
	Property property.Financials
	Personal property.PersonalExpenses
	Tax      TaxConfig
	Logging  LoggingConfig `yaml:"logging,omitempty"`
	Output   OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoanConfig holds the loan parameters in config form. Dates are YYYY-MM
// strings; rates are fractions.
type LoanConfig struct {
	Principal          float64
	AnnualRate         float64
	BaseMonthlyPayment float64
	Escrow             float64
	TotalPayment       float64
	StartDate          string
}

// AnalysisConfig selects which derived analyses to run and their knobs.
type AnalysisConfig struct {
	ExtraMonthlyPayment   float64
	OneTimeAmount         float64
	OneTimeMonth          int
	TargetPayoffDate      string
	AsOfDate              string
	AlternativeReturnRate float64
	ProjectionYears       int
}

// TaxConfig holds the sale tax estimate inputs in config form.
type TaxConfig struct {
	FilingStatus     string
	AnnualIncome     float64
	DepreciableValue float64
	LandValue        float64
	ImprovementsCost float64
	SellingCosts     float64
	StateTaxRate     float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

// LoadConfigurationFromBytes parses a YAML configuration held in memory,
// used by the HTTP server for uploaded configs.
func LoadConfigurationFromBytes(data []byte) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

func (conf *Configuration) applyDefaults() {
	if conf.Analysis.ProjectionYears <= 0 {
		conf.Analysis.ProjectionYears = 10
	}
	if conf.Analysis.AlternativeReturnRate == 0 {
		conf.Analysis.AlternativeReturnRate = 0.07
	}
	if conf.Tax.FilingStatus == "" {
		conf.Tax.FilingStatus = string(tax.FilingSingle)
	}
}

// LoanParameters converts the config loan block into scheduler input.
func (conf *Configuration) LoanParameters() (amortize.LoanParameters, error) {
	startDate, err := time.Parse(DateTimeLayout, conf.Loan.StartDate)
	if err != nil {
		return amortize.LoanParameters{}, fmt.Errorf("invalid loan start date %q: %w", conf.Loan.StartDate, err)
	}
	return amortize.LoanParameters{
		Principal:          conf.Loan.Principal,
		AnnualRate:         conf.Loan.AnnualRate,
		BaseMonthlyPayment: conf.Loan.BaseMonthlyPayment,
		Escrow:             conf.Loan.Escrow,
		TotalPayment:       conf.Loan.TotalPayment,
		StartDate:          startDate,
	}, nil
}

// OneTimePayment converts the config analysis block into a lump-sum payment.
func (conf *Configuration) OneTimePayment() amortize.OneTimePayment {
	return amortize.OneTimePayment{
		Amount: conf.Analysis.OneTimeAmount,
		Month:  conf.Analysis.OneTimeMonth,
	}
}

// TargetPayoffDate parses the optional target payoff date. The boolean is
// false when no target is configured.
func (conf *Configuration) TargetPayoffDate() (time.Time, bool, error) {
	if conf.Analysis.TargetPayoffDate == "" {
		return time.Time{}, false, nil
	}
	target, err := time.Parse(DateTimeLayout, conf.Analysis.TargetPayoffDate)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid target payoff date %q: %w", conf.Analysis.TargetPayoffDate, err)
	}
	return target, true, nil
}

// AsOfDate parses the optional principal projection date. The boolean is
// false when none is configured.
func (conf *Configuration) AsOfDate() (time.Time, bool, error) {
	if conf.Analysis.AsOfDate == "" {
		return time.Time{}, false, nil
	}
	asOf, err := time.Parse(DateTimeLayout, conf.Analysis.AsOfDate)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid as-of date %q: %w", conf.Analysis.AsOfDate, err)
	}
	return asOf, true, nil
}

// TaxInputs converts the config tax block into estimator input.
func (conf *Configuration) TaxInputs() tax.Inputs {
	return tax.Inputs{
		FilingStatus:     tax.FilingStatus(conf.Tax.FilingStatus),
		AnnualIncome:     conf.Tax.AnnualIncome,
		DepreciableValue: conf.Tax.DepreciableValue,
		LandValue:        conf.Tax.LandValue,
		ImprovementsCost: conf.Tax.ImprovementsCost,
		SellingCosts:     conf.Tax.SellingCosts,
		StateTaxRate:     conf.Tax.StateTaxRate,
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard input errors surface later from the calculators.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	loan, err := conf.LoanParameters()
	if err != nil {
		warnings = append(warnings, err.Error())
	} else {
		warnings = append(warnings, validation.ValidateLoan(loan)...)

		if target, ok, targetErr := conf.TargetPayoffDate(); targetErr != nil {
			warnings = append(warnings, targetErr.Error())
		} else if ok && target.Before(loan.StartDate) {
			warnings = append(warnings, fmt.Sprintf(
				"target payoff date %s precedes loan start %s - no extra payment can satisfy it",
				conf.Analysis.TargetPayoffDate, conf.Loan.StartDate))
		}
	}

	if _, _, asOfErr := conf.AsOfDate(); asOfErr != nil {
		warnings = append(warnings, asOfErr.Error())
	}

	warnings = append(warnings, validation.ValidateProperty(conf.Property)...)
	warnings = append(warnings, validation.ValidateTaxInputs(conf.TaxInputs())...)

	return warnings
}
