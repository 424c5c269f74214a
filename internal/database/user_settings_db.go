package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

const settingsColumns = `id, user_id, currency, locale, dark_mode, backup_enabled, notifications_enabled, created_at, updated_at`

// GetUserSettings возвращает настройки пользователя. Если записи еще нет,
// она лениво создается со значениями по умолчанию.
func GetUserSettings(pool *pgxpool.Pool, userID int) (*models.UserSettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM usersettings WHERE user_id = $1`

	settings, err := scanSettings(pool.QueryRow(context.Background(), query, userID))
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("ошибка получения настроек для user_id=%d: %v", userID, err)
	}

	log.Printf("Настроек для user_id=%d нет, создаем значения по умолчанию", userID)
	defaults := models.DefaultUserSettings(userID)
	insert := `
		INSERT INTO usersettings (user_id, currency, locale, dark_mode, backup_enabled, notifications_enabled)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING ` + settingsColumns

	settings, err = scanSettings(pool.QueryRow(context.Background(), insert,
		defaults.UserID, defaults.Currency, defaults.Locale,
		defaults.DarkMode, defaults.BackupEnabled, defaults.NotificationsEnabled))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания настроек для user_id=%d: %v", userID, err)
	}
	return settings, nil
}

// UpdateUserSettings сохраняет настройки целиком; вызывающая сторона
// предварительно накладывает частичные изменения на текущие значения
func UpdateUserSettings(pool *pgxpool.Pool, settings *models.UserSettings) error {
	query := `
		UPDATE usersettings
		SET currency = $1, locale = $2, dark_mode = $3, backup_enabled = $4, notifications_enabled = $5, updated_at = NOW()
		WHERE user_id = $6`

	result, err := pool.Exec(context.Background(), query,
		settings.Currency, settings.Locale, settings.DarkMode,
		settings.BackupEnabled, settings.NotificationsEnabled, settings.UserID,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления настроек для user_id=%d: %v", settings.UserID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("настройки пользователя %d: %w", settings.UserID, ErrNotFound)
	}
	return nil
}

// ResetUserData удаляет транзакции, цели и миссии пользователя и возвращает
// его настройки к значениям по умолчанию. Все в одной транзакции: либо
// сбрасывается все, либо ничего.
func ResetUserData(pool *pgxpool.Pool, userID int) error {
	ctx := context.Background()
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции: %v", err)
	}
	defer tx.Rollback(ctx)

	for _, query := range []string{
		`DELETE FROM transactions WHERE user_id = $1`,
		`DELETE FROM goals WHERE user_id = $1`,
		`DELETE FROM missions WHERE user_id = $1`,
	} {
		if _, err := tx.Exec(ctx, query, userID); err != nil {
			return fmt.Errorf("ошибка сброса данных пользователя %d: %v", userID, err)
		}
	}

	defaults := models.DefaultUserSettings(userID)
	reset := `
		UPDATE usersettings
		SET currency = $1, locale = $2, dark_mode = $3, backup_enabled = $4, notifications_enabled = $5, updated_at = NOW()
		WHERE user_id = $6`
	if _, err := tx.Exec(ctx, reset,
		defaults.Currency, defaults.Locale, defaults.DarkMode,
		defaults.BackupEnabled, defaults.NotificationsEnabled, userID); err != nil {
		return fmt.Errorf("ошибка сброса настроек пользователя %d: %v", userID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("ошибка фиксации сброса данных: %v", err)
	}
	log.Printf("Данные пользователя %d сброшены", userID)
	return nil
}

func scanSettings(row pgx.Row) (*models.UserSettings, error) {
	var s models.UserSettings
	err := row.Scan(&s.ID, &s.UserID, &s.Currency, &s.Locale,
		&s.DarkMode, &s.BackupEnabled, &s.NotificationsEnabled, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
