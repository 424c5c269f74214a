package routes

import (
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/handlers"
)

func SetupRouter(pool *pgxpool.Pool) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Учетные записи
	api.HandleFunc("/auth/cadastro", handlers.RegisterHandler(pool)).Methods("POST")
	api.HandleFunc("/auth/login", handlers.LoginHandler(pool)).Methods("POST")
	api.HandleFunc("/auth/perfil/{id}", handlers.GetProfileHandler(pool)).Methods("GET")
	api.HandleFunc("/auth/perfil/{id}", handlers.UpdateProfileHandler(pool)).Methods("PUT")
	api.HandleFunc("/auth/perfil/{id}", handlers.DeleteUserHandler(pool)).Methods("DELETE")

	// Транзакции
	api.HandleFunc("/transactions", handlers.CreateTransactionHandler(pool)).Methods("POST")
	api.HandleFunc("/transactions/{user_id}", handlers.GetTransactionsHandler(pool)).Methods("GET")
	api.HandleFunc("/transactions/{id}", handlers.UpdateTransactionHandler(pool)).Methods("PUT")
	api.HandleFunc("/transactions/{id}", handlers.DeleteTransactionHandler(pool)).Methods("DELETE")

	// Цели
	api.HandleFunc("/goals", handlers.CreateGoalHandler(pool)).Methods("POST")
	api.HandleFunc("/goals/current/{user_id}", handlers.CurrentGoalHandler(pool)).Methods("GET")
	api.HandleFunc("/goals/user/{user_id}", handlers.GetGoalsHandler(pool)).Methods("GET")
	api.HandleFunc("/goals/{id}", handlers.UpdateGoalHandler(pool)).Methods("PUT")
	api.HandleFunc("/goals/{id}", handlers.DeleteGoalHandler(pool)).Methods("DELETE")
	api.HandleFunc("/goals/{id}/progress", handlers.GoalProgressHandler(pool)).Methods("GET")

	// Миссии
	api.HandleFunc("/missions", handlers.CreateMissionHandler(pool)).Methods("POST")
	api.HandleFunc("/missions/active/{user_id}", handlers.GetActiveMissionsHandler(pool)).Methods("GET")
	api.HandleFunc("/missions/weekly/{user_id}", handlers.GenerateWeeklyMissionsHandler(pool)).Methods("POST")
	api.HandleFunc("/missions/user/{user_id}", handlers.GetMissionsHandler(pool)).Methods("GET")
	api.HandleFunc("/missions/{id}/complete", handlers.CompleteMissionHandler(pool)).Methods("PUT")

	// Сводка и отчеты
	api.HandleFunc("/dashboard/{user_id}", handlers.DashboardHandler(pool)).Methods("GET")
	api.HandleFunc("/reports/{user_id}", handlers.ReportsHandler(pool)).Methods("GET")

	// Настройки
	api.HandleFunc("/settings/{user_id}", handlers.GetUserSettingsHandler(pool)).Methods("GET")
	api.HandleFunc("/settings/{user_id}", handlers.UpdateUserSettingsHandler(pool)).Methods("PUT")
	api.HandleFunc("/settings/{user_id}/reset", handlers.ResetUserDataHandler(pool)).Methods("POST")
	api.HandleFunc("/categories", handlers.GetCategoriesHandler()).Methods("GET")
	api.HandleFunc("/convert", handlers.ConvertCurrencyHandler()).Methods("GET")

	return r
}
