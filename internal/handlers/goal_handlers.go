package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// CreateGoalRequest — типизированное тело запроса создания цели
type CreateGoalRequest struct {
	UserID       int             `json:"user_id"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
}

// UpdateGoalRequest меняет только сумму цели, период остается прежним
type UpdateGoalRequest struct {
	TargetAmount decimal.Decimal `json:"target_amount"`
}

// CreateGoalHandler создает месячную цель накоплений
func CreateGoalHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный формат ввода"})
			log.Printf("Ошибка декодирования JSON: %v", err)
			return
		}

		if req.UserID <= 0 || req.Year <= 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Все поля должны быть заполнены и корректны"})
			log.Printf("Некорректные данные цели: %+v", req)
			return
		}

		goal := &models.Goal{
			UserID:       req.UserID,
			TargetAmount: req.TargetAmount.Round(2),
			Month:        req.Month,
			Year:         req.Year,
		}

		if err := database.CreateGoal(pool, goal); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, goal)
	}
}

// GetGoalsHandler извлекает все цели пользователя
func GetGoalsHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.Atoi(mux.Vars(r)["user_id"])
		if err != nil || userID <= 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный ID пользователя"})
			return
		}

		goals, err := database.GetGoalsByUserID(pool, userID)
		if err != nil {
			writeError(w, err)
			return
		}
		if goals == nil {
			goals = []models.Goal{}
		}
		writeJSON(w, http.StatusOK, goals)
	}
}

// UpdateGoalHandler обновляет сумму цели
func UpdateGoalHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный ID цели"})
			return
		}

		var req UpdateGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректные данные"})
			return
		}

		if err := database.UpdateGoal(pool, id, req.TargetAmount.Round(2)); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Message: "Цель успешно обновлена"})
	}
}

// DeleteGoalHandler удаляет цель по ID
func DeleteGoalHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный ID цели"})
			return
		}

		if err := database.DeleteGoal(pool, id); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Message: "Цель успешно удалена"})
	}
}

// GoalProgressHandler считает прогресс цели и сохраняет его в записи
func GoalProgressHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный ID цели"})
			return
		}

		progress, err := database.CalculateGoalProgress(pool, id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, progress)
	}
}

// CurrentGoalHandler возвращает цель текущего месяца с прогрессом, не
// сохраняя его. Отсутствие цели на месяц — не ошибка.
func CurrentGoalHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.Atoi(mux.Vars(r)["user_id"])
		if err != nil || userID <= 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный ID пользователя"})
			return
		}

		current, err := database.GetCurrentGoalProgress(pool, userID, time.Now())
		if err != nil {
			writeError(w, err)
			return
		}
		if current == nil {
			writeJSON(w, http.StatusOK, SuccessResponse{Message: "Цель на текущий месяц не задана"})
			return
		}

		writeJSON(w, http.StatusOK, current)
	}
}
