package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// CreateMission добавляет одиночную миссию, созданную вручную
func CreateMission(pool *pgxpool.Pool, mission *models.Mission) error {
	if mission.Reward == "" {
		mission.Reward = models.DefaultMissionReward
	}

	query := `
		INSERT INTO missions (user_id, description, kind, status, start_date, end_date, reward)
		VALUES ($1, $2, $3, 'pending', $4, $5, $6)
		RETURNING id, status, created_at`

	err := pool.QueryRow(context.Background(), query,
		mission.UserID,
		mission.Description,
		mission.Kind,
		mission.StartDate,
		mission.EndDate,
		mission.Reward).Scan(&mission.ID, &mission.Status, &mission.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении миссии: %v", err)
	}
	return nil
}

// GetMissionsByUserID извлекает все миссии пользователя, новые первыми
func GetMissionsByUserID(pool *pgxpool.Pool, userID int) ([]models.Mission, error) {
	query := `
		SELECT id, user_id, description, kind, status, start_date, end_date, reward, created_at, completed_at
		FROM missions
		WHERE user_id = $1
		ORDER BY created_at DESC`

	return queryMissions(pool, query, userID)
}

// GetActiveMissions возвращает миссии со статусом pending, чье окно уже
// началось и еще не закончилось. Миссии с будущей датой начала активными
// не считаются.
func GetActiveMissions(pool *pgxpool.Pool, userID int, today time.Time) ([]models.Mission, error) {
	query := `
		SELECT id, user_id, description, kind, status, start_date, end_date, reward, created_at, completed_at
		FROM missions
		WHERE user_id = $1 AND status = 'pending'
		AND start_date <= $2 AND end_date >= $2
		ORDER BY end_date, id`

	return queryMissions(pool, query, userID, today)
}

func queryMissions(pool *pgxpool.Pool, query string, args ...interface{}) ([]models.Mission, error) {
	rows, err := pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении миссий: %v", err)
	}
	defer rows.Close()

	var missions []models.Mission
	for rows.Next() {
		var m models.Mission
		if err := rows.Scan(&m.ID, &m.UserID, &m.Description, &m.Kind, &m.Status,
			&m.StartDate, &m.EndDate, &m.Reward, &m.CreatedAt, &m.CompletedAt); err != nil {
			return nil, err
		}
		missions = append(missions, m)
	}
	return missions, nil
}

// CompleteMission переводит миссию из pending в completed и ставит отметку
// времени. Переход односторонний: повторное завершение, как и завершение
// истекшей миссии, возвращает ErrConflict. Выполнение условий миссии не
// проверяется, это ручное действие вызывающей стороны.
func CompleteMission(pool *pgxpool.Pool, missionID int, now time.Time) (*models.Mission, error) {
	query := `
		UPDATE missions
		SET status = 'completed', completed_at = $1
		WHERE id = $2 AND status = 'pending'
		RETURNING id, user_id, description, kind, status, start_date, end_date, reward, created_at, completed_at`

	mission := &models.Mission{}
	err := pool.QueryRow(context.Background(), query, now, missionID).Scan(
		&mission.ID, &mission.UserID, &mission.Description, &mission.Kind, &mission.Status,
		&mission.StartDate, &mission.EndDate, &mission.Reward, &mission.CreatedAt, &mission.CompletedAt,
	)
	if err == nil {
		return mission, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("ошибка при завершении миссии: %v", err)
	}

	// Строка не обновилась: либо миссии нет, либо она уже не pending
	var status string
	err = pool.QueryRow(context.Background(), `SELECT status FROM missions WHERE id = $1`, missionID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("миссия с ID %d: %w", missionID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка при проверке статуса миссии: %v", err)
	}
	return nil, fmt.Errorf("миссия с ID %d уже в статусе %s: %w", missionID, status, ErrConflict)
}

// GenerateWeeklyMissions создает стандартный набор из трех недельных миссий
// на календарную неделю, в которую попадает today. Создание идемпотентно и
// атомарно: вставка и проверка существования — один оператор, поэтому два
// одновременных вызова не продублируют набор. Если миссии недели уже есть,
// возвращается пустой список и признак alreadyGenerated.
func GenerateWeeklyMissions(pool *pgxpool.Pool, userID int, today time.Time) ([]models.Mission, bool, error) {
	weekStart, weekEnd := models.WeekBounds(today)
	set := models.WeeklyMissionSet()

	query := `
		INSERT INTO missions (user_id, description, kind, status, start_date, end_date, reward)
		SELECT $1, t.description, 'weekly', 'pending', $2::date, $3::date, t.reward
		FROM (VALUES ($4::text, $5::text), ($6::text, $7::text), ($8::text, $9::text)) AS t(description, reward)
		WHERE NOT EXISTS (
			SELECT 1 FROM missions
			WHERE user_id = $1 AND kind = 'weekly'
			AND start_date >= $2 AND end_date <= $3
		)
		RETURNING id, user_id, description, kind, status, start_date, end_date, reward, created_at, completed_at`

	rows, err := pool.Query(context.Background(), query,
		userID, weekStart, weekEnd,
		set[0].Description, set[0].Reward,
		set[1].Description, set[1].Reward,
		set[2].Description, set[2].Reward,
	)
	if err != nil {
		return nil, false, fmt.Errorf("ошибка при генерации недельных миссий: %v", err)
	}
	defer rows.Close()

	var created []models.Mission
	for rows.Next() {
		var m models.Mission
		if err := rows.Scan(&m.ID, &m.UserID, &m.Description, &m.Kind, &m.Status,
			&m.StartDate, &m.EndDate, &m.Reward, &m.CreatedAt, &m.CompletedAt); err != nil {
			return nil, false, err
		}
		created = append(created, m)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("ошибка при генерации недельных миссий: %v", err)
	}

	return created, len(created) == 0, nil
}

// ExpireOverdueMissions помечает просроченные pending-миссии как expired.
// Вызывается ежедневной cron-задачей из composition root.
func ExpireOverdueMissions(pool *pgxpool.Pool, today time.Time) (int64, error) {
	query := `
		UPDATE missions
		SET status = 'expired'
		WHERE status = 'pending' AND end_date < $1`

	result, err := pool.Exec(context.Background(), query, today)
	if err != nil {
		return 0, fmt.Errorf("ошибка при пометке просроченных миссий: %v", err)
	}
	return result.RowsAffected(), nil
}
