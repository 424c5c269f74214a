package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser регистрирует нового пользователя и сразу создает для него
// настройки по умолчанию. Повторный email дает ErrConflict.
func RegisterUser(pool *pgxpool.Pool, user *models.User) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка хеширования пароля: %v", err)
	}

	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`
	err = pool.QueryRow(context.Background(), query, user.Name, user.Email, hashedPassword).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("email %s уже зарегистрирован: %w", user.Email, ErrConflict)
		}
		return fmt.Errorf("ошибка при добавлении пользователя: %v", err)
	}
	user.Password = ""

	// Настройки по умолчанию заводим сразу, а не при первом обращении
	if _, err := GetUserSettings(pool, user.ID); err != nil {
		return fmt.Errorf("ошибка создания настроек пользователя: %v", err)
	}
	return nil
}

// AuthenticateUser проверяет email и пароль пользователя
func AuthenticateUser(pool *pgxpool.Pool, email, password string) (*models.User, error) {
	var user models.User
	var hash string
	query := `SELECT id, name, email, password, created_at, updated_at FROM users WHERE email = $1`
	err := pool.QueryRow(context.Background(), query, email).
		Scan(&user.ID, &user.Name, &user.Email, &hash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("пользователь %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при поиске пользователя: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, fmt.Errorf("неверный пароль: %w", ErrValidation)
	}

	return &user, nil
}

// GetUserByID возвращает профиль пользователя без пароля
func GetUserByID(pool *pgxpool.Pool, id int) (*models.User, error) {
	query := `SELECT id, name, email, created_at, updated_at FROM users WHERE id = $1`

	var user models.User
	err := pool.QueryRow(context.Background(), query, id).
		Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("пользователь с ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка получения пользователя по id: %v", err)
	}

	return &user, nil
}

// UpdateUserProfile обновляет имя и email; непустой пароль хешируется заново
func UpdateUserProfile(pool *pgxpool.Pool, user *models.User) error {
	if user.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("ошибка хеширования пароля: %v", err)
		}
		query := `UPDATE users SET name = $1, email = $2, password = $3, updated_at = NOW() WHERE id = $4`
		result, err := pool.Exec(context.Background(), query, user.Name, user.Email, hashedPassword, user.ID)
		if err != nil {
			return fmt.Errorf("ошибка обновления пользователя: %v", err)
		}
		if result.RowsAffected() == 0 {
			return fmt.Errorf("пользователь с ID %d: %w", user.ID, ErrNotFound)
		}
		user.Password = ""
		return nil
	}

	query := `UPDATE users SET name = $1, email = $2, updated_at = NOW() WHERE id = $3`
	result, err := pool.Exec(context.Background(), query, user.Name, user.Email, user.ID)
	if err != nil {
		return fmt.Errorf("ошибка обновления пользователя: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("пользователь с ID %d: %w", user.ID, ErrNotFound)
	}
	return nil
}

// DeleteUser удаляет пользователя; транзакции, цели, миссии и настройки
// удаляются каскадом на уровне схемы
func DeleteUser(pool *pgxpool.Pool, id int) error {
	query := `DELETE FROM users WHERE id = $1`
	result, err := pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления пользователя: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("пользователь с ID %d: %w", id, ErrNotFound)
	}
	return nil
}
