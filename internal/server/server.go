// Package server exposes the property finance analysis over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PROACTIVA-US/property-manager-sub001/internal/analysis"
	"github.com/PROACTIVA-US/property-manager-sub001/internal/config"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/constants"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/datetime"
	"go.uber.org/zap"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the analysis API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Analysis API endpoint (YAML config upload)
	mux.HandleFunc("/api/analyze", h.handleAnalyze)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type analyzeResponse struct {
	Schedule         []scheduleRow         `json:"schedule"`
	Comparison       comparisonPayload     `json:"comparison"`
	CurrentPrincipal *float64              `json:"currentPrincipal,omitempty"`
	RequiredExtra    *float64              `json:"requiredExtraMonthly,omitempty"`
	CashFlow         cashFlowPayload       `json:"cashFlow"`
	RentalComparison rentalPayload         `json:"rentalComparison"`
	Tax              taxPayload            `json:"tax"`
	KeepVsSell       keepVsSellPayload     `json:"keepVsSell"`
	Warnings         []string              `json:"warnings,omitempty"`
	Duration         string                `json:"duration"`
}

type scheduleRow struct {
	Month     int     `json:"month"`
	Date      string  `json:"date"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Extra     float64 `json:"extra"`
	Total     float64 `json:"total"`
	Balance   float64 `json:"balance"`
}

type comparisonPayload struct {
	OriginalTotalInterest    float64 `json:"originalTotalInterest"`
	AcceleratedTotalInterest float64 `json:"acceleratedTotalInterest"`
	OriginalPayoffDate       string  `json:"originalPayoffDate,omitempty"`
	AcceleratedPayoffDate    string  `json:"acceleratedPayoffDate,omitempty"`
	MonthsSaved              int     `json:"monthsSaved"`
	InterestSaved            float64 `json:"interestSaved"`
	Comparable               bool    `json:"comparable"`
}

type cashFlowPayload struct {
	GrossRentalIncome  float64 `json:"grossRentalIncome"`
	OperatingExpenses  float64 `json:"operatingExpenses"`
	NetOperatingIncome float64 `json:"netOperatingIncome"`
	DebtService        float64 `json:"debtService"`
	CashFlowBeforeTax  float64 `json:"cashFlowBeforeTax"`
	CapRate            float64 `json:"capRate"`
	Equity             float64 `json:"equity"`
	CashOnCashReturn   float64 `json:"cashOnCashReturn"`
}

type rentalPayload struct {
	PersonalExpensesSaved float64 `json:"personalExpensesSaved"`
	NetRentalBenefit      float64 `json:"netRentalBenefit"`
	MonthlyAdvantage      float64 `json:"monthlyAdvantage"`
	AnnualAdvantage       float64 `json:"annualAdvantage"`
}

type taxPayload struct {
	DepreciationTaken   float64 `json:"depreciationTaken"`
	AdjustedBasis       float64 `json:"adjustedBasis"`
	NetSalePrice        float64 `json:"netSalePrice"`
	CapitalGain         float64 `json:"capitalGain"`
	MarginalRate        float64 `json:"marginalRate"`
	CapitalGainsRate    float64 `json:"capitalGainsRate"`
	TotalTax            float64 `json:"totalTax"`
	StateTax            float64 `json:"stateTax"`
	NetProceedsAfterTax float64 `json:"netProceedsAfterTax"`
}

type keepVsSellYearPayload struct {
	Year               int     `json:"year"`
	EquityValue        float64 `json:"equityValue"`
	CumulativeCashFlow float64 `json:"cumulativeCashFlow"`
	TotalReturn        float64 `json:"totalReturn"`
	AlternativeValue   float64 `json:"alternativeValue"`
	KeepAdvantage      float64 `json:"keepAdvantage"`
}

type keepVsSellPayload struct {
	Years                []keepVsSellYearPayload `json:"years"`
	NetSaleProceeds      float64                 `json:"netSaleProceeds"`
	BreakEvenYear        *int                    `json:"breakEvenYear,omitempty"`
	Recommendation       string                  `json:"recommendation"`
	RecommendationReason string                  `json:"recommendationReason"`
}

func (h *handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing configuration file")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && h.logger != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.handleAnalyze"),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err))
		return
	}

	conf, err := config.LoadConfigurationFromBytes(buf.Bytes())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	warnings := conf.ValidateConfiguration()

	report, err := analysis.Run(h.logger, *conf)
	if err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, fmt.Sprintf("analysis failed: %v", err))
		return
	}

	h.writeJSON(w, http.StatusOK, buildAnalyzeResponse(report, warnings, time.Since(start)))
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func buildAnalyzeResponse(report *analysis.Report, warnings []string, duration time.Duration) analyzeResponse {
	response := analyzeResponse{
		Warnings: warnings,
		Duration: duration.String(),
	}

	for _, entry := range report.Accelerated.Entries {
		response.Schedule = append(response.Schedule, scheduleRow{
			Month:     entry.MonthIndex,
			Date:      entry.PaymentDate.Format(datetime.DateTimeLayout),
			Principal: entry.PrincipalPaid,
			Interest:  entry.InterestPaid,
			Extra:     entry.ExtraPayment,
			Total:     entry.TotalPayment,
			Balance:   entry.RemainingBalance,
		})
	}

	response.Comparison = comparisonPayload{
		OriginalTotalInterest:    report.Comparison.OriginalTotalInterest,
		AcceleratedTotalInterest: report.Comparison.AcceleratedTotalInterest,
		MonthsSaved:              report.Comparison.MonthsSaved,
		InterestSaved:            report.Comparison.InterestSaved,
		Comparable:               report.Comparison.Comparable,
	}
	if payoff := report.Comparison.OriginalPayoffDate; payoff != nil {
		response.Comparison.OriginalPayoffDate = payoff.Format(datetime.DateTimeLayout)
	}
	if payoff := report.Comparison.AcceleratedPayoffDate; payoff != nil {
		response.Comparison.AcceleratedPayoffDate = payoff.Format(datetime.DateTimeLayout)
	}

	response.CurrentPrincipal = report.CurrentPrincipal
	response.RequiredExtra = report.RequiredExtraMonthly

	response.CashFlow = cashFlowPayload{
		GrossRentalIncome:  report.CashFlow.GrossRentalIncome,
		OperatingExpenses:  report.CashFlow.OperatingExpenses,
		NetOperatingIncome: report.CashFlow.NetOperatingIncome,
		DebtService:        report.CashFlow.DebtService,
		CashFlowBeforeTax:  report.CashFlow.CashFlowBeforeTax,
		CapRate:            report.CashFlow.CapRate,
		Equity:             report.CashFlow.Equity,
		CashOnCashReturn:   report.CashFlow.CashOnCashReturn,
	}

	response.RentalComparison = rentalPayload{
		PersonalExpensesSaved: report.RentalComparison.PersonalExpensesSaved,
		NetRentalBenefit:      report.RentalComparison.NetRentalBenefit,
		MonthlyAdvantage:      report.RentalComparison.MonthlyAdvantage,
		AnnualAdvantage:       report.RentalComparison.AnnualAdvantage,
	}

	response.Tax = taxPayload{
		DepreciationTaken:   report.Tax.DepreciationTaken,
		AdjustedBasis:       report.Tax.AdjustedBasis,
		NetSalePrice:        report.Tax.NetSalePrice,
		CapitalGain:         report.Tax.CapitalGain,
		MarginalRate:        report.Tax.MarginalRate,
		CapitalGainsRate:    report.Tax.CapitalGainsRate,
		TotalTax:            report.Tax.TotalTax,
		StateTax:            report.Tax.StateTax,
		NetProceedsAfterTax: report.Tax.NetProceedsAfterTax,
	}

	response.KeepVsSell = keepVsSellPayload{
		NetSaleProceeds:      report.KeepVsSell.NetSaleProceeds,
		BreakEvenYear:        report.KeepVsSell.BreakEvenYear,
		Recommendation:       report.KeepVsSell.Recommendation,
		RecommendationReason: report.KeepVsSell.RecommendationReason,
	}
	for _, year := range report.KeepVsSell.Years {
		response.KeepVsSell.Years = append(response.KeepVsSell.Years, keepVsSellYearPayload{
			Year:               year.Year,
			EquityValue:        year.EquityValue,
			CumulativeCashFlow: year.CumulativeCashFlow,
			TotalReturn:        year.TotalReturn,
			AlternativeValue:   year.AlternativeInvestmentValue,
			KeepAdvantage:      year.KeepAdvantage,
		})
	}

	return response
}

func (h *handler) respondError(w http.ResponseWriter, status int, message string) {
	h.logger.Warn(message,
		zap.String("op", "server.respondError"),
		zap.Int("status", status),
	)
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
