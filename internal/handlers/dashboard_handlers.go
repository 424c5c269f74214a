package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
)

// DashboardHandler возвращает сводку месяца. По умолчанию берется текущий
// месяц, параметры month и year позволяют запросить другой период.
func DashboardHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.Atoi(mux.Vars(r)["user_id"])
		if err != nil || userID <= 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный ID пользователя"})
			return
		}

		now := time.Now()
		month := int(now.Month())
		year := now.Year()

		if v := r.URL.Query().Get("month"); v != "" {
			month, err = strconv.Atoi(v)
			if err != nil || month < 1 || month > 12 {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный месяц"})
				return
			}
		}
		if v := r.URL.Query().Get("year"); v != "" {
			year, err = strconv.Atoi(v)
			if err != nil || year <= 0 {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный год"})
				return
			}
		}

		summary, err := database.GetDashboardSummary(pool, userID, month, year)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// ReportsHandler возвращает отчет по категориям расходов и помесячный тренд
func ReportsHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.Atoi(mux.Vars(r)["user_id"])
		if err != nil || userID <= 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный ID пользователя"})
			return
		}

		reports, err := database.GetReports(pool, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, reports)
	}
}
