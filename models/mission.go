package models

import "time"

const (
	MissionKindWeekly = "weekly"
	MissionKindOther  = "other"

	MissionStatusPending   = "pending"
	MissionStatusCompleted = "completed"
	MissionStatusExpired   = "expired"

	// Награда по умолчанию для миссий, созданных вручную
	DefaultMissionReward = "Medalha Digital"
)

type Mission struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id"`
	Description string     `json:"description"`
	Kind        string     `json:"kind"`
	Status      string     `json:"status"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	Reward      string     `json:"reward"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// WeekBounds возвращает границы календарной недели, в которую попадает today:
// начало — понедельник, конец — воскресенье (начало + 6 дней).
func WeekBounds(today time.Time) (start, end time.Time) {
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	offset := (int(day.Weekday()) + 6) % 7 // понедельник = 0
	start = day.AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 6)
	return start, end
}

// WeeklyMissionTemplate описывает содержимое одной стандартной недельной миссии.
type WeeklyMissionTemplate struct {
	Description string
	Reward      string
}

// WeeklyMissionSet возвращает фиксированный набор из трех недельных миссий.
// Содержимое задано продуктом и не вычисляется.
func WeeklyMissionSet() []WeeklyMissionTemplate {
	return []WeeklyMissionTemplate{
		{Description: "Registrar despesas por 5 dias seguidos", Reward: "Medalha de Disciplina"},
		{Description: "Não ultrapassar o orçamento de alimentação", Reward: "Medalha de Controle"},
		{Description: "Economizar pelo menos R$ 50 esta semana", Reward: "Medalha de Economia"},
	}
}
