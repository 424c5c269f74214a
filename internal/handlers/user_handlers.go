package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// RegisterRequest — типизированное тело запроса регистрации
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest — типизированное тело запроса входа
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse возвращает токен на 24 часа вместе с профилем
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

// UpdateProfileRequest — типизированное тело запроса обновления профиля.
// Пустой пароль означает «не менять».
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterHandler регистрирует пользователя и создает настройки по умолчанию
func RegisterHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный формат ввода"})
			log.Printf("Ошибка декодирования JSON: %v", err)
			return
		}

		if req.Name == "" || req.Email == "" || req.Password == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Имя, email и пароль обязательны"})
			return
		}

		user := &models.User{Name: req.Name, Email: req.Email, Password: req.Password}
		if err := database.RegisterUser(pool, user); err != nil {
			writeError(w, err)
			return
		}

		log.Printf("Пользователь успешно зарегистрирован: ID = %d", user.ID)
		writeJSON(w, http.StatusCreated, user)
	}
}

// LoginHandler проверяет учетные данные и выдает JWT-токен
func LoginHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный формат ввода"})
			return
		}

		user, err := database.AuthenticateUser(pool, req.Email, req.Password)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Неверный email или пароль"})
			return
		}

		token, err := issueToken(user.ID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Message: "Авторизация успешна",
			Token:   token,
			User:    user,
		})
	}
}

// GetProfileHandler возвращает профиль пользователя
func GetProfileHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil || id <= 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный ID пользователя"})
			return
		}

		user, err := database.GetUserByID(pool, id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// UpdateProfileHandler обновляет имя, email и при необходимости пароль
func UpdateProfileHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil || id <= 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный ID пользователя"})
			return
		}

		existing, err := database.GetUserByID(pool, id)
		if err != nil {
			writeError(w, err)
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный формат ввода"})
			return
		}
		if req.Name == "" {
			req.Name = existing.Name
		}
		if req.Email == "" {
			req.Email = existing.Email
		}

		user := &models.User{ID: id, Name: req.Name, Email: req.Email, Password: req.Password}
		if err := database.UpdateUserProfile(pool, user); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Message: "Профиль успешно обновлен"})
	}
}

// DeleteUserHandler удаляет пользователя со всеми его данными
func DeleteUserHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil || id <= 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный ID пользователя"})
			return
		}

		if err := database.DeleteUser(pool, id); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Message: "Пользователь успешно удален"})
	}
}

func issueToken(userID int) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "secret_key"
	}

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
