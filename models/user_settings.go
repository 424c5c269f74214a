package models

import "time"

type UserSettings struct {
	ID                   int       `json:"id"`
	UserID               int       `json:"user_id"`
	Currency             string    `json:"currency"` // 'BRL', 'USD', 'EUR'
	Locale               string    `json:"locale"`   // 'pt-BR', 'en-US'
	DarkMode             bool      `json:"dark_mode"`
	BackupEnabled        bool      `json:"backup_enabled"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// DefaultUserSettings возвращает настройки по умолчанию для нового пользователя
func DefaultUserSettings(userID int) *UserSettings {
	return &UserSettings{
		UserID:               userID,
		Currency:             "BRL",
		Locale:               "pt-BR",
		DarkMode:             false,
		BackupEnabled:        true,
		NotificationsEnabled: true,
	}
}
