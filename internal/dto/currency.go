package dto

import (
	"github.com/mknzz/budget_tracker_app/internal/core/domain"
	"github.com/mknzz/budget_tracker_app/internal/utils"
	"github.com/shopspring/decimal"
)

// ConvertRequest defines the data needed for a currency conversion.
type ConvertRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	From   string          `json:"from" binding:"required,len=3,uppercase"`
	To     string          `json:"to" binding:"required,len=3,uppercase"`
}

// ConvertResponse defines the result of a currency conversion. Result keeps
// full precision; ResultDisplay is the two-decimal form for presentation.
type ConvertResponse struct {
	Amount        decimal.Decimal `json:"amount"`
	From          string          `json:"from"`
	To            string          `json:"to"`
	Result        decimal.Decimal `json:"result"`
	ResultDisplay string          `json:"resultDisplay"`
}

// ToConvertResponse builds the conversion result DTO.
func ToConvertResponse(amount decimal.Decimal, from, to string, result decimal.Decimal) ConvertResponse {
	return ConvertResponse{
		Amount:        amount,
		From:          from,
		To:            to,
		Result:        result,
		ResultDisplay: utils.FormatAmount(result),
	}
}

// RateTableResponse defines the current rate table plus where it came from.
// Advisory is set when the table did not come from a live source.
type RateTableResponse struct {
	Rates      map[string]decimal.Decimal `json:"rates"`
	Provenance string                     `json:"provenance"`
	Advisory   string                     `json:"advisory,omitempty"`
}

// ToRateTableResponse converts a domain.RateTable and its provenance to a
// RateTableResponse DTO.
func ToRateTableResponse(table domain.RateTable, provenance domain.RateProvenance) RateTableResponse {
	resp := RateTableResponse{
		Rates:      table,
		Provenance: string(provenance),
	}
	if provenance == domain.RatesFromFallback {
		resp.Advisory = "using cached rates"
	}
	return resp
}
