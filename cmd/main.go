package main

import (
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/routes"
)

// ScheduleMissionExpiry ежедневно помечает просроченные миссии как expired.
// Генерация недельных наборов и пересчет прогресса целей по таймеру не
// запускаются, они выполняются только по запросу.
func ScheduleMissionExpiry(pool *pgxpool.Pool) {
	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		expired, err := database.ExpireOverdueMissions(pool, time.Now())
		if err != nil {
			log.Printf("Ошибка пометки просроченных миссий: %v", err)
			return
		}
		if expired > 0 {
			log.Printf("Просроченных миссий помечено: %d", expired)
		}
	})
	if err != nil {
		log.Fatalf("Ошибка настройки CRON-задачи для миссий: %v", err)
	}
	c.Start()
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "http://localhost:3000" || origin == "http://localhost:3001" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatalf("Ошибка загрузки .env файла: %v", err)
	}

	pool, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("Ошибка подключения к БД: %v", err)
	}
	defer pool.Close()

	ScheduleMissionExpiry(pool)

	r := routes.SetupRouter(pool)

	log.Println("Сервер запущен на :8080")
	if err := http.ListenAndServe(":8080", CORSMiddleware(r)); err != nil {
		log.Fatalf("Ошибка при запуске сервера: %v", err)
	}
}
