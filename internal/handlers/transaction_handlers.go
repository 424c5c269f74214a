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

// TransactionRequest — типизированное тело запроса создания/обновления
// транзакции. Дата передается строкой в формате YYYY-MM-DD.
type TransactionRequest struct {
	UserID   int             `json:"user_id"`
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
	Note     string          `json:"note"`
}

func (r *TransactionRequest) toTransaction() (*models.Transaction, string) {
	if !models.ValidTransactionType(r.Type) {
		return nil, "Тип транзакции должен быть 'income' или 'expense'"
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, "Сумма транзакции должна быть положительной"
	}
	if r.Category == "" {
		return nil, "Не указана категория"
	}
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, "Некорректная дата, ожидается формат YYYY-MM-DD"
	}

	return &models.Transaction{
		UserID:   r.UserID,
		Type:     r.Type,
		Amount:   r.Amount.Round(2),
		Category: r.Category,
		Date:     date,
		Note:     r.Note,
	}, ""
}

func CreateTransactionHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный формат ввода"})
			log.Printf("Ошибка декодирования JSON: %v", err)
			return
		}
		if req.UserID <= 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Не указан ID пользователя"})
			return
		}

		transaction, msg := req.toTransaction()
		if msg != "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
			return
		}

		if err := database.CreateTransaction(pool, transaction); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, transaction)
	}
}

// Получение всех транзакций пользователя
func GetTransactionsHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.Atoi(mux.Vars(r)["user_id"])
		if err != nil || userID <= 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный ID пользователя"})
			return
		}

		transactions, err := database.GetTransactionsByUserID(pool, userID)
		if err != nil {
			writeError(w, err)
			return
		}
		if transactions == nil {
			transactions = []models.Transaction{}
		}
		writeJSON(w, http.StatusOK, transactions)
	}
}

// Обновление транзакции
func UpdateTransactionHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный ID транзакции"})
			return
		}

		existing, err := database.GetTransactionByID(pool, id)
		if err != nil {
			writeError(w, err)
			return
		}

		var req TransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный формат ввода"})
			return
		}
		req.UserID = existing.UserID // владелец транзакции не меняется

		transaction, msg := req.toTransaction()
		if msg != "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
			return
		}
		transaction.ID = id

		if err := database.UpdateTransaction(pool, transaction); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Message: "Транзакция успешно обновлена"})
	}
}

// Удаление транзакции
func DeleteTransactionHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Некорректный ID транзакции"})
			return
		}

		if err := database.DeleteTransaction(pool, id); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Message: "Транзакция успешно удалена"})
	}
}
