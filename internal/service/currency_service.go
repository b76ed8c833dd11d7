package service

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mawenner/tally/internal/common"
	"github.com/mawenner/tally/internal/currency"
)

// CurrencyService serves the static currency table and formatting helpers.
type CurrencyService struct{}

// NewCurrencyService creates a CurrencyService.
func NewCurrencyService() *CurrencyService {
	return &CurrencyService{}
}

type currencyEntry struct {
	Code string `json:"code"`
	currency.Info
}

// List handles GET /api/v1/currencies.
func (s *CurrencyService) List(w http.ResponseWriter, r *http.Request) {
	codes := currency.Codes()
	sort.Strings(codes)

	entries := make([]currencyEntry, 0, len(codes))
	for _, code := range codes {
		entries = append(entries, currencyEntry{Code: code, Info: currency.Lookup(code)})
	}
	common.JSON(w, http.StatusOK, map[string]any{"currencies": entries})
}

// Get handles GET /api/v1/currencies/{code}. Unknown codes return the
// default currency, mirroring the lookup function's fallback.
func (s *CurrencyService) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	common.JSON(w, http.StatusOK, currencyEntry{Code: code, Info: currency.Lookup(code)})
}

// FormatAmount handles GET /api/v1/currencies/{code}/format?amount=62.5.
func (s *CurrencyService) FormatAmount(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	raw := r.URL.Query().Get("amount")
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "amount must be a number")
		return
	}

	common.JSON(w, http.StatusOK, map[string]any{
		"amount":      amount,
		"formatted":   currency.Format(amount, code),
		"minor_units": currency.ToMinorUnits(amount, code),
	})
}
