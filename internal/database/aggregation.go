package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// GetMonthlySum возвращает сумму транзакций пользователя заданного типа за
// календарный месяц. Если транзакций нет, возвращается ноль, а не ошибка.
func GetMonthlySum(pool *pgxpool.Pool, userID int, txType string, month, year int) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND type = $2
		AND EXTRACT(MONTH FROM transaction_date) = $3
		AND EXTRACT(YEAR FROM transaction_date) = $4`

	var total decimal.Decimal
	err := pool.QueryRow(context.Background(), query, userID, txType, month, year).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("ошибка при суммировании транзакций за месяц: %v", err)
	}
	return total, nil
}

// GetExpensesByCategory группирует расходы пользователя по категориям без
// ограничения по времени. Одна строка на каждую встретившуюся категорию.
func GetExpensesByCategory(pool *pgxpool.Pool, userID int) ([]models.CategoryTotal, error) {
	query := `
		SELECT category, SUM(amount) AS total
		FROM transactions
		WHERE user_id = $1 AND type = 'expense'
		GROUP BY category`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении расходов по категориям: %v", err)
	}
	defer rows.Close()

	var totals []models.CategoryTotal
	for rows.Next() {
		var ct models.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, err
		}
		totals = append(totals, ct)
	}
	return totals, nil
}

// GetMonthlyExpenseTrend возвращает суммы расходов по месяцам: не больше
// шести самых последних корзин (год, месяц), в хронологическом порядке.
func GetMonthlyExpenseTrend(pool *pgxpool.Pool, userID int) ([]models.MonthlyTotal, error) {
	query := `
		SELECT EXTRACT(MONTH FROM transaction_date)::int AS month,
		       EXTRACT(YEAR FROM transaction_date)::int AS year,
		       SUM(amount) AS total
		FROM transactions
		WHERE user_id = $1 AND type = 'expense'
		GROUP BY year, month
		ORDER BY year DESC, month DESC
		LIMIT 6`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении помесячного отчета: %v", err)
	}
	defer rows.Close()

	var totals []models.MonthlyTotal
	for rows.Next() {
		var mt models.MonthlyTotal
		if err := rows.Scan(&mt.Month, &mt.Year, &mt.Total); err != nil {
			return nil, err
		}
		totals = append(totals, mt)
	}

	// Запрос отбирает последние корзины, а наружу отдаем по возрастанию
	for i, j := 0, len(totals)-1; i < j; i, j = i+1, j-1 {
		totals[i], totals[j] = totals[j], totals[i]
	}
	return totals, nil
}
