package utils

import (
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

var seedCategories = map[string][]string{
	models.TransactionIncome:  {"Salário", "Freelance", "Investimentos", "Outros"},
	models.TransactionExpense: {"Alimentação", "Transporte", "Moradia", "Saúde", "Educação", "Lazer", "Compras", "Contas", "Outros"},
}

// GenerateTestUsers создает тестовых пользователей и возвращает их ID
func GenerateTestUsers(pool *pgxpool.Pool, numUsers int) []int {
	ids := make([]int, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user := &models.User{
			Name:     gofakeit.Name(),
			Email:    gofakeit.Email(),
			Password: gofakeit.Password(true, true, true, false, false, 8), // Генерация случайного пароля
		}
		if err := database.RegisterUser(pool, user); err != nil {
			log.Fatalf("ошибка при добавлении пользователя: %v", err)
		}
		ids = append(ids, user.ID)
	}
	return ids
}

// GenerateTestTransactions создает случайные транзакции за последние полгода
func GenerateTestTransactions(pool *pgxpool.Pool, userIDs []int, numTransactions int) {
	for i := 0; i < numTransactions; i++ {
		txType := models.TransactionIncome
		if rand.Intn(100) < 70 { // расходов больше, чем доходов
			txType = models.TransactionExpense
		}
		categories := seedCategories[txType]

		transaction := &models.Transaction{
			UserID:   userIDs[rand.Intn(len(userIDs))],
			Type:     txType,
			Amount:   decimal.NewFromFloat(gofakeit.Price(1, 1000)).Round(2),
			Category: categories[rand.Intn(len(categories))],
			Date:     time.Now().AddDate(0, 0, -rand.Intn(180)), // Случайная дата в прошлых 180 днях
			Note:     gofakeit.Sentence(5),
		}

		if err := database.CreateTransaction(pool, transaction); err != nil {
			log.Fatalf("ошибка при добавлении транзакции: %v", err)
		}
	}
}

// GenerateTestGoals создает цель текущего месяца для каждого пользователя
func GenerateTestGoals(pool *pgxpool.Pool, userIDs []int) {
	now := time.Now()
	for _, userID := range userIDs {
		goal := &models.Goal{
			UserID:       userID,
			TargetAmount: decimal.NewFromFloat(gofakeit.Price(100, 5000)).Round(2),
			Month:        int(now.Month()),
			Year:         now.Year(),
		}
		if err := database.CreateGoal(pool, goal); err != nil {
			log.Fatalf("ошибка при добавлении цели: %v", err)
		}
	}
}

// GenerateTestMissions создает недельный набор миссий для каждого пользователя
func GenerateTestMissions(pool *pgxpool.Pool, userIDs []int) {
	for _, userID := range userIDs {
		if _, _, err := database.GenerateWeeklyMissions(pool, userID, time.Now()); err != nil {
			log.Fatalf("ошибка при генерации миссий: %v", err)
		}
	}
}
