package database_test

import (
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func TestRegisterUser(t *testing.T) {
	pool := connectTestDB(t)

	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: "senha_secreta_123",
	}
	if err := database.RegisterUser(pool, user); err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("ID пользователя не проставлен")
	}
	if user.Password != "" {
		t.Error("пароль не должен оставаться в структуре после регистрации")
	}

	created, err := database.GetUserByID(pool, user.ID)
	if err != nil {
		t.Fatalf("ошибка получения пользователя: %v", err)
	}
	if created.Email != user.Email {
		t.Errorf("email не совпадает: %q", created.Email)
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	pool := connectTestDB(t)

	email := gofakeit.Email()
	first := &models.User{Name: gofakeit.Name(), Email: email, Password: "senha123456"}
	if err := database.RegisterUser(pool, first); err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}

	second := &models.User{Name: gofakeit.Name(), Email: email, Password: "outra_senha1"}
	if err := database.RegisterUser(pool, second); !errors.Is(err, database.ErrConflict) {
		t.Errorf("повторный email: ожидали ErrConflict, получили %v", err)
	}
}

func TestAuthenticateUser(t *testing.T) {
	pool := connectTestDB(t)

	email := gofakeit.Email()
	password := "senha_valida_99"
	user := &models.User{Name: gofakeit.Name(), Email: email, Password: password}
	if err := database.RegisterUser(pool, user); err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}

	authed, err := database.AuthenticateUser(pool, email, password)
	if err != nil {
		t.Fatalf("ошибка аутентификации: %v", err)
	}
	if authed.ID != user.ID {
		t.Errorf("вернулся не тот пользователь: %d", authed.ID)
	}

	if _, err := database.AuthenticateUser(pool, email, "пароль_неверный"); !errors.Is(err, database.ErrValidation) {
		t.Errorf("неверный пароль: ожидали ErrValidation, получили %v", err)
	}
	if _, err := database.AuthenticateUser(pool, gofakeit.Email(), password); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("неизвестный email: ожидали ErrNotFound, получили %v", err)
	}
}

func TestUpdateUserProfile(t *testing.T) {
	pool := connectTestDB(t)
	userID := createTestUser(t, pool)

	user, err := database.GetUserByID(pool, userID)
	if err != nil {
		t.Fatalf("ошибка получения пользователя: %v", err)
	}

	user.Name = "Novo Nome"
	user.Password = "" // пароль не меняем
	if err := database.UpdateUserProfile(pool, user); err != nil {
		t.Fatalf("ошибка обновления профиля: %v", err)
	}

	updated, err := database.GetUserByID(pool, userID)
	if err != nil {
		t.Fatalf("ошибка получения пользователя: %v", err)
	}
	if updated.Name != "Novo Nome" {
		t.Errorf("имя не обновилось: %q", updated.Name)
	}
}

func TestDeleteUser(t *testing.T) {
	pool := connectTestDB(t)
	userID := createTestUser(t, pool)

	if err := database.DeleteUser(pool, userID); err != nil {
		t.Fatalf("ошибка удаления пользователя: %v", err)
	}
	if _, err := database.GetUserByID(pool, userID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("после удаления ожидали ErrNotFound, получили %v", err)
	}
}
