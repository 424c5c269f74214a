package database_test

import (
	"errors"
	"testing"
	"time"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func TestGenerateWeeklyMissions(t *testing.T) {
	pool := connectTestDB(t)
	userID := createTestUser(t, pool)
	today := time.Now()

	created, already, err := database.GenerateWeeklyMissions(pool, userID, today)
	if err != nil {
		t.Fatalf("ошибка генерации недельных миссий: %v", err)
	}
	if already {
		t.Fatal("первая генерация не должна быть помечена как повторная")
	}
	if len(created) != 3 {
		t.Fatalf("ожидали 3 миссии, получили %d", len(created))
	}

	start, end := models.WeekBounds(today)
	for _, m := range created {
		if m.Kind != models.MissionKindWeekly || m.Status != models.MissionStatusPending {
			t.Errorf("неверные атрибуты миссии: %+v", m)
		}
		if !m.StartDate.Equal(start) || !m.EndDate.Equal(end) {
			t.Errorf("границы недели не совпадают: %v..%v, хотели %v..%v", m.StartDate, m.EndDate, start, end)
		}
	}

	// повторная генерация на ту же неделю ничего не создает
	again, already, err := database.GenerateWeeklyMissions(pool, userID, today)
	if err != nil {
		t.Fatalf("ошибка повторной генерации: %v", err)
	}
	if !already {
		t.Error("повторная генерация должна быть помечена флагом")
	}
	if len(again) != 0 {
		t.Errorf("повторная генерация создала %d миссий", len(again))
	}

	all, err := database.GetMissionsByUserID(pool, userID)
	if err != nil {
		t.Fatalf("ошибка получения миссий: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("в базе должно остаться ровно 3 миссии, получили %d", len(all))
	}
}

func TestCompleteMission(t *testing.T) {
	pool := connectTestDB(t)
	userID := createTestUser(t, pool)

	created, _, err := database.GenerateWeeklyMissions(pool, userID, time.Now())
	if err != nil {
		t.Fatalf("ошибка генерации миссий: %v", err)
	}
	mission := created[0]

	done, err := database.CompleteMission(pool, mission.ID, time.Now())
	if err != nil {
		t.Fatalf("ошибка завершения миссии: %v", err)
	}
	if done.Status != models.MissionStatusCompleted {
		t.Errorf("статус после завершения: %q", done.Status)
	}
	if done.CompletedAt == nil {
		t.Error("completed_at не проставлен")
	}
	if done.Reward == "" {
		t.Error("награда завершенной миссии пуста")
	}

	// завершение завершенной миссии — конфликт, не повторное выполнение
	if _, err := database.CompleteMission(pool, mission.ID, time.Now()); !errors.Is(err, database.ErrConflict) {
		t.Errorf("повторное завершение: ожидали ErrConflict, получили %v", err)
	}
}

func TestCompleteMissionNotFound(t *testing.T) {
	pool := connectTestDB(t)

	if _, err := database.CompleteMission(pool, -1, time.Now()); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("ожидали ErrNotFound, получили %v", err)
	}
}

func TestGetActiveMissions(t *testing.T) {
	pool := connectTestDB(t)
	userID := createTestUser(t, pool)
	now := time.Now()

	// миссия будущей недели не должна считаться активной сегодня
	future := &models.Mission{
		UserID:      userID,
		Description: "Missão da próxima semana",
		Kind:        models.MissionKindWeekly,
		Status:      models.MissionStatusPending,
		StartDate:   now.AddDate(0, 0, 14),
		EndDate:     now.AddDate(0, 0, 20),
	}
	if err := database.CreateMission(pool, future); err != nil {
		t.Fatalf("ошибка создания миссии: %v", err)
	}

	created, _, err := database.GenerateWeeklyMissions(pool, userID, now)
	if err != nil {
		t.Fatalf("ошибка генерации миссий: %v", err)
	}

	active, err := database.GetActiveMissions(pool, userID, now)
	if err != nil {
		t.Fatalf("ошибка получения активных миссий: %v", err)
	}
	if len(active) != len(created) {
		t.Fatalf("активных миссий %d, хотели %d", len(active), len(created))
	}
	for _, m := range active {
		if m.ID == future.ID {
			t.Error("будущая миссия попала в активные")
		}
		if m.Status != models.MissionStatusPending {
			t.Errorf("активная миссия с неверным статусом: %q", m.Status)
		}
	}

	// завершенная миссия выпадает из активных
	if _, err := database.CompleteMission(pool, created[0].ID, now); err != nil {
		t.Fatalf("ошибка завершения миссии: %v", err)
	}
	active, err = database.GetActiveMissions(pool, userID, now)
	if err != nil {
		t.Fatalf("ошибка получения активных миссий: %v", err)
	}
	if len(active) != len(created)-1 {
		t.Errorf("после завершения активных миссий %d, хотели %d", len(active), len(created)-1)
	}
}

func TestExpireOverdueMissions(t *testing.T) {
	pool := connectTestDB(t)
	userID := createTestUser(t, pool)
	now := time.Now()

	overdue := &models.Mission{
		UserID:      userID,
		Description: "Missão antiga",
		Kind:        models.MissionKindWeekly,
		Status:      models.MissionStatusPending,
		StartDate:   now.AddDate(0, 0, -14),
		EndDate:     now.AddDate(0, 0, -8),
	}
	if err := database.CreateMission(pool, overdue); err != nil {
		t.Fatalf("ошибка создания миссии: %v", err)
	}

	expired, err := database.ExpireOverdueMissions(pool, now)
	if err != nil {
		t.Fatalf("ошибка пометки просроченных миссий: %v", err)
	}
	if expired < 1 {
		t.Errorf("должна быть помечена хотя бы одна миссия, получили %d", expired)
	}

	all, err := database.GetMissionsByUserID(pool, userID)
	if err != nil {
		t.Fatalf("ошибка получения миссий: %v", err)
	}
	found := false
	for _, m := range all {
		if m.ID == overdue.ID {
			found = true
			if m.Status != models.MissionStatusExpired {
				t.Errorf("статус просроченной миссии: %q", m.Status)
			}
		}
	}
	if !found {
		t.Error("просроченная миссия не найдена в списке")
	}
}
