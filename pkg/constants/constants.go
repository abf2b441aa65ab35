// Package constants provides shared constants for the property finance engine.
package constants

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// MaxScheduleMonths caps amortization schedules at 60 years. This is a
	// termination guard for non-amortizing inputs, not a business rule.
	MaxScheduleMonths = 720

	// MaxSolverIterations caps the bisection search for a target payoff date.
	MaxSolverIterations = 100

	// ResidentialDepreciationYears is the straight-line depreciation period
	// for US residential rental property.
	ResidentialDepreciationYears = 27.5

	// DepreciationRecaptureRateCap is the maximum federal rate applied to
	// recaptured depreciation on sale.
	DepreciationRecaptureRateCap = 0.25

	// MortgageDeclineYears is the straight-line approximation horizon for
	// mortgage balance decline in keep-vs-sell projections.
	MortgageDeclineYears = 30
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// Tolerance constants
const (
	// BalanceEpsilon is the threshold below which a remaining loan balance is
	// floored to exactly zero to avoid float dust.
	BalanceEpsilon = 0.005

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// NeutralAdvantageBand is the keep-vs-sell advantage magnitude below
	// which the recommendation stays neutral.
	NeutralAdvantageBand = 1000.0
)
