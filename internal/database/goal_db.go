package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// CreateGoal добавляет месячную цель накоплений. На пару (пользователь,
// месяц, год) допускается только одна цель: дубликат не перезаписывает
// существующую, а возвращает ErrConflict через уникальный индекс.
func CreateGoal(pool *pgxpool.Pool, goal *models.Goal) error {
	if goal.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("сумма цели должна быть положительной: %w", ErrValidation)
	}
	if goal.Month < 1 || goal.Month > 12 {
		return fmt.Errorf("некорректный месяц %d: %w", goal.Month, ErrValidation)
	}

	query := `
		INSERT INTO goals (user_id, target_amount, month, year)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, month, year) DO NOTHING
		RETURNING id, progress_percent, created_at, updated_at`

	err := pool.QueryRow(context.Background(), query,
		goal.UserID,
		goal.TargetAmount,
		goal.Month,
		goal.Year).Scan(&goal.ID, &goal.ProgressPercent, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("цель на %d.%d уже существует: %w", goal.Month, goal.Year, ErrConflict)
		}
		return fmt.Errorf("ошибка при добавлении цели: %v", err)
	}
	return nil
}

// GetGoalByID извлекает цель по ID
func GetGoalByID(pool *pgxpool.Pool, goalID int) (*models.Goal, error) {
	query := `
		SELECT id, user_id, target_amount, month, year, progress_percent, created_at, updated_at
		FROM goals
		WHERE id = $1`

	goal := &models.Goal{}
	err := pool.QueryRow(context.Background(), query, goalID).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.TargetAmount,
		&goal.Month,
		&goal.Year,
		&goal.ProgressPercent,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("цель с ID %d: %w", goalID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении цели: %v", err)
	}
	return goal, nil
}

// GetGoalsByUserID извлекает все цели пользователя, свежие периоды первыми
func GetGoalsByUserID(pool *pgxpool.Pool, userID int) ([]models.Goal, error) {
	query := `
		SELECT id, user_id, target_amount, month, year, progress_percent, created_at, updated_at
		FROM goals
		WHERE user_id = $1
		ORDER BY year DESC, month DESC`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении целей: %v", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var goal models.Goal
		if err := rows.Scan(&goal.ID, &goal.UserID, &goal.TargetAmount, &goal.Month, &goal.Year,
			&goal.ProgressPercent, &goal.CreatedAt, &goal.UpdatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, nil
}

// UpdateGoal обновляет сумму цели. Месяц и год цели не меняются.
func UpdateGoal(pool *pgxpool.Pool, goalID int, targetAmount decimal.Decimal) error {
	if targetAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("сумма цели должна быть положительной: %w", ErrValidation)
	}

	query := `
		UPDATE goals
		SET target_amount = $1, updated_at = NOW()
		WHERE id = $2`

	result, err := pool.Exec(context.Background(), query, targetAmount, goalID)
	if err != nil {
		return fmt.Errorf("ошибка обновления цели: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("цель с ID %d: %w", goalID, ErrNotFound)
	}
	return nil
}

// DeleteGoal удаляет цель по ID
func DeleteGoal(pool *pgxpool.Pool, goalID int) error {
	query := `
		DELETE FROM goals
		WHERE id = $1`

	result, err := pool.Exec(context.Background(), query, goalID)
	if err != nil {
		return fmt.Errorf("ошибка удаления цели: %v", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("цель с ID %d: %w", goalID, ErrNotFound)
	}
	return nil
}

// CalculateGoalProgress считает прогресс цели по транзакциям ее месяца
// (доходы минус расходы) и сохраняет вычисленный процент в записи цели.
func CalculateGoalProgress(pool *pgxpool.Pool, goalID int) (*models.GoalProgress, error) {
	goal, err := GetGoalByID(pool, goalID)
	if err != nil {
		return nil, err
	}

	income, err := GetMonthlySum(pool, goal.UserID, models.TransactionIncome, goal.Month, goal.Year)
	if err != nil {
		return nil, err
	}
	expense, err := GetMonthlySum(pool, goal.UserID, models.TransactionExpense, goal.Month, goal.Year)
	if err != nil {
		return nil, err
	}

	savings := income.Sub(expense)
	percent, status := models.ComputeGoalProgress(goal.TargetAmount, savings)

	query := `
		UPDATE goals
		SET progress_percent = $1, updated_at = NOW()
		WHERE id = $2`
	if _, err := pool.Exec(context.Background(), query, percent, goal.ID); err != nil {
		return nil, fmt.Errorf("ошибка сохранения прогресса цели: %v", err)
	}

	return &models.GoalProgress{
		GoalID:          goal.ID,
		TargetAmount:    goal.TargetAmount,
		CurrentSavings:  savings,
		ProgressPercent: percent,
		Status:          status,
	}, nil
}

// GetCurrentGoalProgress находит цель на текущий месяц и считает ее прогресс
// без сохранения. Отсутствие цели на месяц — ожидаемая ситуация: возвращается
// (nil, nil), а не ошибка.
func GetCurrentGoalProgress(pool *pgxpool.Pool, userID int, today time.Time) (*models.CurrentGoal, error) {
	query := `
		SELECT id, user_id, target_amount, month, year, progress_percent, created_at, updated_at
		FROM goals
		WHERE user_id = $1 AND month = $2 AND year = $3`

	goal := &models.Goal{}
	err := pool.QueryRow(context.Background(), query, userID, int(today.Month()), today.Year()).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.TargetAmount,
		&goal.Month,
		&goal.Year,
		&goal.ProgressPercent,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении текущей цели: %v", err)
	}

	income, err := GetMonthlySum(pool, userID, models.TransactionIncome, goal.Month, goal.Year)
	if err != nil {
		return nil, err
	}
	expense, err := GetMonthlySum(pool, userID, models.TransactionExpense, goal.Month, goal.Year)
	if err != nil {
		return nil, err
	}

	savings := income.Sub(expense)
	percent, _ := models.ComputeGoalProgress(goal.TargetAmount, savings)

	return &models.CurrentGoal{
		Goal:            goal,
		CurrentSavings:  savings,
		ProgressPercent: percent,
	}, nil
}
