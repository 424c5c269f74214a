package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/utils"
)

// UpdateUserSettingsRequest allows partial updates: nil fields keep the
// current value.
type UpdateUserSettingsRequest struct {
	Currency             *string `json:"currency"`
	Locale               *string `json:"locale"`
	DarkMode             *bool   `json:"dark_mode"`
	BackupEnabled        *bool   `json:"backup_enabled"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
}

var validCurrencies = map[string]bool{
	"BRL": true, "USD": true, "EUR": true,
}

var validLocales = map[string]bool{
	"pt-BR": true, "en-US": true,
}

// CategoryCatalog is the fixed, product-defined set of category labels
// offered to the frontend. Transactions still store the label as free text.
type CategoryCatalog struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

// GetUserSettingsHandler retrieves user settings, creating defaults on first
// access.
func GetUserSettingsHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["user_id"])
		if err != nil || id <= 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID"})
			log.Printf("Invalid user ID in GET request: %v", id)
			return
		}

		settings, err := database.GetUserSettings(pool, id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, settings)
	}
}

// UpdateUserSettingsHandler applies a partial settings update
func UpdateUserSettingsHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["user_id"])
		if err != nil || id <= 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID"})
			return
		}

		var payload UpdateUserSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON format"})
			log.Printf("Error decoding JSON: %v", err)
			return
		}

		if payload.Currency != nil && !validCurrencies[*payload.Currency] {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Unsupported currency"})
			return
		}
		if payload.Locale != nil && !validLocales[*payload.Locale] {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Unsupported locale"})
			return
		}

		// Merge the partial payload onto the stored settings
		settings, err := database.GetUserSettings(pool, id)
		if err != nil {
			writeError(w, err)
			return
		}
		if payload.Currency != nil {
			settings.Currency = *payload.Currency
		}
		if payload.Locale != nil {
			settings.Locale = *payload.Locale
		}
		if payload.DarkMode != nil {
			settings.DarkMode = *payload.DarkMode
		}
		if payload.BackupEnabled != nil {
			settings.BackupEnabled = *payload.BackupEnabled
		}
		if payload.NotificationsEnabled != nil {
			settings.NotificationsEnabled = *payload.NotificationsEnabled
		}

		if err := database.UpdateUserSettings(pool, settings); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, settings)
	}
}

// ResetUserDataHandler wipes transactions, goals and missions for the user
// and restores default settings
func ResetUserDataHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["user_id"])
		if err != nil || id <= 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID"})
			return
		}

		if err := database.ResetUserData(pool, id); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Message: "User data reset successfully"})
	}
}

// GetCategoriesHandler returns the fixed category catalog
func GetCategoriesHandler() http.HandlerFunc {
	catalog := CategoryCatalog{
		Income:  []string{"Salário", "Freelance", "Investimentos", "Outros"},
		Expense: []string{"Alimentação", "Transporte", "Moradia", "Saúde", "Educação", "Lazer", "Compras", "Contas", "Outros"},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog)
	}
}

// ConvertCurrencyHandler performs currency conversion using cached rates
func ConvertCurrencyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		amountStr := r.URL.Query().Get("amount")

		if from == "" || to == "" || amountStr == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Missing parameters 'from', 'to', or 'amount'"})
			log.Printf("Missing query parameters from=%s, to=%s, amount=%s", from, to, amountStr)
			return
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil || amount.LessThanOrEqual(decimal.Zero) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid 'amount' value"})
			return
		}

		converted, err := utils.ConvertCurrency(amount, from, to)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError,
				ErrorResponse{Error: fmt.Sprintf("Error converting %s to %s: %v", from, to, err)})
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"from_currency": from,
			"to_currency":   to,
			"amount":        amount,
			"converted":     converted,
		})
	}
}
