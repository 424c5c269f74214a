package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/utils"
)

// Утилита наполнения базы тестовыми данными. Запускается отдельно от сервера.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatalf("Ошибка загрузки .env файла: %v", err)
	}

	pool, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("Ошибка подключения к БД: %v", err)
	}
	defer pool.Close()

	userIDs := utils.GenerateTestUsers(pool, 5)
	if len(userIDs) == 0 {
		log.Fatal("Не удалось создать ни одного пользователя")
	}

	utils.GenerateTestTransactions(pool, userIDs, 200)
	utils.GenerateTestGoals(pool, userIDs)
	utils.GenerateTestMissions(pool, userIDs)

	log.Printf("Генерация завершена: пользователей %d", len(userIDs))
}
