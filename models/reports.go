package models

import "github.com/shopspring/decimal"

// CategoryTotal — строка отчета по категориям расходов
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MonthlyTotal — строка помесячного отчета расходов
type MonthlyTotal struct {
	Month int             `json:"month"`
	Year  int             `json:"year"`
	Total decimal.Decimal `json:"total"`
}

// ReportBundle — результат операции построения отчетов
type ReportBundle struct {
	ByCategory []CategoryTotal `json:"by_category"`
	ByMonth    []MonthlyTotal  `json:"by_month"`
}

// DashboardSummary — сводка по месяцу для главного экрана
type DashboardSummary struct {
	Balance      decimal.Decimal `json:"balance"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
}

// GoalProgress — результат расчета прогресса конкретной цели
type GoalProgress struct {
	GoalID          int             `json:"goal_id"`
	TargetAmount    decimal.Decimal `json:"target_amount"`
	CurrentSavings  decimal.Decimal `json:"current_savings"`
	ProgressPercent decimal.Decimal `json:"progress_percent"`
	Status          string          `json:"status"`
}

// CurrentGoal — цель текущего месяца вместе с вычисленным прогрессом.
// Прогресс здесь не сохраняется в базу.
type CurrentGoal struct {
	Goal            *Goal           `json:"goal"`
	CurrentSavings  decimal.Decimal `json:"current_savings"`
	ProgressPercent decimal.Decimal `json:"progress_percent"`
}
