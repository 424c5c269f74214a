package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// CreateMissionRequest — типизированное тело запроса ручного создания миссии
type CreateMissionRequest struct {
	UserID      int    `json:"user_id"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Reward      string `json:"reward"`
}

// WeeklyMissionsResponse — результат генерации недельного набора
type WeeklyMissionsResponse struct {
	Created          []models.Mission `json:"created"`
	AlreadyGenerated bool             `json:"already_generated"`
}

// CompleteMissionResponse возвращает завершенную миссию вместе с наградой
type CompleteMissionResponse struct {
	Message string          `json:"message"`
	Mission *models.Mission `json:"mission"`
	Reward  string          `json:"reward"`
}

// GetMissionsHandler извлекает все миссии пользователя
func GetMissionsHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.Atoi(mux.Vars(r)["user_id"])
		if err != nil || userID <= 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный ID пользователя"})
			return
		}

		missions, err := database.GetMissionsByUserID(pool, userID)
		if err != nil {
			writeError(w, err)
			return
		}
		if missions == nil {
			missions = []models.Mission{}
		}
		writeJSON(w, http.StatusOK, missions)
	}
}

// GetActiveMissionsHandler извлекает активные миссии: pending, окно которых
// уже началось и еще не закончилось
func GetActiveMissionsHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.Atoi(mux.Vars(r)["user_id"])
		if err != nil || userID <= 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный ID пользователя"})
			return
		}

		missions, err := database.GetActiveMissions(pool, userID, time.Now())
		if err != nil {
			writeError(w, err)
			return
		}
		if missions == nil {
			missions = []models.Mission{}
		}
		writeJSON(w, http.StatusOK, missions)
	}
}

// CreateMissionHandler создает одиночную миссию вручную
func CreateMissionHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateMissionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный формат ввода"})
			log.Printf("Ошибка декодирования JSON: %v", err)
			return
		}

		if req.UserID <= 0 || req.Description == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Все поля должны быть заполнены и корректны"})
			return
		}
		if req.Kind != models.MissionKindWeekly && req.Kind != models.MissionKindOther {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Тип миссии должен быть 'weekly' или 'other'"})
			return
		}

		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректная дата начала, ожидается формат YYYY-MM-DD"})
			return
		}
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректная дата окончания, ожидается формат YYYY-MM-DD"})
			return
		}
		if end.Before(start) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Дата окончания раньше даты начала"})
			return
		}

		mission := &models.Mission{
			UserID:      req.UserID,
			Description: req.Description,
			Kind:        req.Kind,
			StartDate:   start,
			EndDate:     end,
			Reward:      req.Reward,
		}

		if err := database.CreateMission(pool, mission); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, mission)
	}
}

// CompleteMissionHandler переводит миссию в completed и возвращает награду
func CompleteMissionHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный ID миссии"})
			return
		}

		mission, err := database.CompleteMission(pool, id, time.Now())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, CompleteMissionResponse{
			Message: "Миссия успешно завершена",
			Mission: mission,
			Reward:  mission.Reward,
		})
	}
}

// GenerateWeeklyMissionsHandler создает недельный набор миссий. Повторный
// вызов на той же неделе — не ошибка, а признак already_generated.
func GenerateWeeklyMissionsHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.Atoi(mux.Vars(r)["user_id"])
		if err != nil || userID <= 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный ID пользователя"})
			return
		}

		created, alreadyGenerated, err := database.GenerateWeeklyMissions(pool, userID, time.Now())
		if err != nil {
			writeError(w, err)
			return
		}
		if created == nil {
			created = []models.Mission{}
		}

		status := http.StatusCreated
		if alreadyGenerated {
			status = http.StatusOK
		}
		writeJSON(w, status, WeeklyMissionsResponse{
			Created:          created,
			AlreadyGenerated: alreadyGenerated,
		})
	}
}
