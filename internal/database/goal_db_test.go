package database_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func addTransaction(t *testing.T, pool *pgxpool.Pool, userID int, txType string, amount int64, date time.Time) {
	t.Helper()
	tx := &models.Transaction{
		UserID:   userID,
		Type:     txType,
		Amount:   decimal.NewFromInt(amount),
		Category: "Outros",
		Date:     date,
	}
	if err := database.CreateTransaction(pool, tx); err != nil {
		t.Fatalf("ошибка создания транзакции: %v", err)
	}
}

func TestCreateGoal(t *testing.T) {
	pool := connectTestDB(t)
	userID := createTestUser(t, pool)

	goal := &models.Goal{
		UserID:       userID,
		TargetAmount: decimal.NewFromInt(1000),
		Month:        6,
		Year:         2025,
	}
	if err := database.CreateGoal(pool, goal); err != nil {
		t.Fatalf("ошибка создания цели: %v", err)
	}
	if goal.ID == 0 {
		t.Fatal("ID цели не проставлен после создания")
	}

	created, err := database.GetGoalByID(pool, goal.ID)
	if err != nil {
		t.Fatalf("ошибка получения цели по ID: %v", err)
	}
	if created.Month != 6 || created.Year != 2025 || !created.TargetAmount.Equal(goal.TargetAmount) {
		t.Errorf("данные цели не совпадают: %+v", created)
	}
}

func TestCreateGoalDuplicateMonth(t *testing.T) {
	pool := connectTestDB(t)
	userID := createTestUser(t, pool)

	goal := &models.Goal{UserID: userID, TargetAmount: decimal.NewFromInt(500), Month: 7, Year: 2025}
	if err := database.CreateGoal(pool, goal); err != nil {
		t.Fatalf("ошибка создания цели: %v", err)
	}

	duplicate := &models.Goal{UserID: userID, TargetAmount: decimal.NewFromInt(900), Month: 7, Year: 2025}
	if err := database.CreateGoal(pool, duplicate); !errors.Is(err, database.ErrConflict) {
		t.Errorf("повторная цель на месяц: ожидали ErrConflict, получили %v", err)
	}
}

func TestCreateGoalValidation(t *testing.T) {
	pool := connectTestDB(t)
	userID := createTestUser(t, pool)

	bad := &models.Goal{UserID: userID, TargetAmount: decimal.Zero, Month: 6, Year: 2025}
	if err := database.CreateGoal(pool, bad); !errors.Is(err, database.ErrValidation) {
		t.Errorf("нулевая цель: ожидали ErrValidation, получили %v", err)
	}

	badMonth := &models.Goal{UserID: userID, TargetAmount: decimal.NewFromInt(100), Month: 13, Year: 2025}
	if err := database.CreateGoal(pool, badMonth); !errors.Is(err, database.ErrValidation) {
		t.Errorf("месяц 13: ожидали ErrValidation, получили %v", err)
	}
}

func TestCalculateGoalProgress(t *testing.T) {
	pool := connectTestDB(t)
	userID := createTestUser(t, pool)

	goal := &models.Goal{UserID: userID, TargetAmount: decimal.NewFromInt(1000), Month: 6, Year: 2025}
	if err := database.CreateGoal(pool, goal); err != nil {
		t.Fatalf("ошибка создания цели: %v", err)
	}

	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	addTransaction(t, pool, userID, models.TransactionIncome, 500, date)
	addTransaction(t, pool, userID, models.TransactionExpense, 200, date)
	// транзакция другого месяца не должна попасть в расчет
	addTransaction(t, pool, userID, models.TransactionIncome, 9999, time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC))

	progress, err := database.CalculateGoalProgress(pool, goal.ID)
	if err != nil {
		t.Fatalf("ошибка расчета прогресса: %v", err)
	}
	if !progress.CurrentSavings.Equal(decimal.NewFromInt(300)) {
		t.Errorf("накопления: получили %s, хотели 300", progress.CurrentSavings)
	}
	if !progress.ProgressPercent.Equal(decimal.NewFromInt(30)) {
		t.Errorf("процент: получили %s, хотели 30", progress.ProgressPercent)
	}
	if progress.Status != models.GoalStatusInProgress {
		t.Errorf("статус: получили %q", progress.Status)
	}

	// процент должен быть сохранен в записи цели
	stored, err := database.GetGoalByID(pool, goal.ID)
	if err != nil {
		t.Fatalf("ошибка получения цели после расчета: %v", err)
	}
	if !stored.ProgressPercent.Equal(decimal.NewFromInt(30)) {
		t.Errorf("сохраненный процент: получили %s, хотели 30", stored.ProgressPercent)
	}
}

func TestCalculateGoalProgressNotFound(t *testing.T) {
	pool := connectTestDB(t)

	if _, err := database.CalculateGoalProgress(pool, -1); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("ожидали ErrNotFound, получили %v", err)
	}
}

func TestGetCurrentGoalProgress(t *testing.T) {
	pool := connectTestDB(t)
	userID := createTestUser(t, pool)

	now := time.Now()
	goal := &models.Goal{
		UserID:       userID,
		TargetAmount: decimal.NewFromInt(200),
		Month:        int(now.Month()),
		Year:         now.Year(),
	}
	if err := database.CreateGoal(pool, goal); err != nil {
		t.Fatalf("ошибка создания цели: %v", err)
	}
	addTransaction(t, pool, userID, models.TransactionIncome, 300, now)

	current, err := database.GetCurrentGoalProgress(pool, userID, now)
	if err != nil {
		t.Fatalf("ошибка получения текущей цели: %v", err)
	}
	if current == nil {
		t.Fatal("текущая цель не найдена, хотя была создана")
	}
	if !current.ProgressPercent.Equal(decimal.NewFromInt(100)) {
		t.Errorf("процент должен быть обрезан до 100, получили %s", current.ProgressPercent)
	}

	// расчет текущей цели не сохраняет процент
	stored, err := database.GetGoalByID(pool, goal.ID)
	if err != nil {
		t.Fatalf("ошибка получения цели: %v", err)
	}
	if !stored.ProgressPercent.Equal(decimal.Zero) {
		t.Errorf("процент не должен был сохраниться, получили %s", stored.ProgressPercent)
	}
}

func TestGetCurrentGoalProgressAbsent(t *testing.T) {
	pool := connectTestDB(t)
	userID := createTestUser(t, pool)

	current, err := database.GetCurrentGoalProgress(pool, userID, time.Now())
	if err != nil {
		t.Fatalf("отсутствие цели не должно быть ошибкой: %v", err)
	}
	if current != nil {
		t.Errorf("ожидали nil при отсутствии цели, получили %+v", current)
	}
}

func TestUpdateAndDeleteGoal(t *testing.T) {
	pool := connectTestDB(t)
	userID := createTestUser(t, pool)

	goal := &models.Goal{UserID: userID, TargetAmount: decimal.NewFromInt(400), Month: 8, Year: 2025}
	if err := database.CreateGoal(pool, goal); err != nil {
		t.Fatalf("ошибка создания цели: %v", err)
	}

	if err := database.UpdateGoal(pool, goal.ID, decimal.NewFromInt(600)); err != nil {
		t.Fatalf("ошибка обновления цели: %v", err)
	}
	updated, err := database.GetGoalByID(pool, goal.ID)
	if err != nil {
		t.Fatalf("ошибка получения цели: %v", err)
	}
	if !updated.TargetAmount.Equal(decimal.NewFromInt(600)) {
		t.Errorf("сумма цели не обновилась: %s", updated.TargetAmount)
	}

	if err := database.DeleteGoal(pool, goal.ID); err != nil {
		t.Fatalf("ошибка удаления цели: %v", err)
	}
	if _, err := database.GetGoalByID(pool, goal.ID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("после удаления ожидали ErrNotFound, получили %v", err)
	}
}
