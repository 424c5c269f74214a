package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// GetDashboardSummary собирает сводку месяца: доходы, расходы и баланс.
// Отсутствие транзакций дает нулевые суммы.
func GetDashboardSummary(pool *pgxpool.Pool, userID, month, year int) (*models.DashboardSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS total_expense
		FROM transactions
		WHERE user_id = $1
		AND EXTRACT(MONTH FROM transaction_date) = $2
		AND EXTRACT(YEAR FROM transaction_date) = $3`

	summary := &models.DashboardSummary{Month: month, Year: year}
	err := pool.QueryRow(context.Background(), query, userID, month, year).
		Scan(&summary.TotalIncome, &summary.TotalExpense)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении сводки месяца: %v", err)
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary, nil
}

// GetReports строит оба отчета: по категориям расходов и помесячный тренд
func GetReports(pool *pgxpool.Pool, userID int) (*models.ReportBundle, error) {
	byCategory, err := GetExpensesByCategory(pool, userID)
	if err != nil {
		return nil, err
	}

	byMonth, err := GetMonthlyExpenseTrend(pool, userID)
	if err != nil {
		return nil, err
	}

	return &models.ReportBundle{
		ByCategory: byCategory,
		ByMonth:    byMonth,
	}, nil
}
