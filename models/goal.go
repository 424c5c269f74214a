package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	GoalStatusAchieved   = "achieved"
	GoalStatusInProgress = "in_progress"
)

type Goal struct {
	ID              int             `json:"id"`
	UserID          int             `json:"user_id"`
	TargetAmount    decimal.Decimal `json:"target_amount"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	ProgressPercent decimal.Decimal `json:"progress_percent"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

var hundred = decimal.NewFromInt(100)

// ComputeGoalProgress считает процент выполнения цели по сбережениям месяца.
// Процент ограничен сверху значением 100, снизу не ограничен: отрицательные
// сбережения дают отрицательный прогресс (перерасход). При нулевой или
// отрицательной цели прогресс равен нулю.
func ComputeGoalProgress(target, savings decimal.Decimal) (decimal.Decimal, string) {
	if target.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, GoalStatusInProgress
	}

	percent := savings.Div(target).Mul(hundred).Round(2)

	status := GoalStatusInProgress
	if percent.GreaterThanOrEqual(hundred) {
		status = GoalStatusAchieved
	}
	if percent.GreaterThan(hundred) {
		percent = hundred
	}
	return percent, status
}
