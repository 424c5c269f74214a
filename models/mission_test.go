package models_test

import (
	"testing"
	"time"

	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func TestWeekBoundsMidWeek(t *testing.T) {
	// среда 2025-06-11 -> неделя с понедельника 9-го по воскресенье 15-е
	today := time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC)
	start, end := models.WeekBounds(today)

	wantStart := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("начало недели: получили %v, хотели %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("конец недели: получили %v, хотели %v", end, wantEnd)
	}
}

func TestWeekBoundsMonday(t *testing.T) {
	today := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	start, end := models.WeekBounds(today)

	if !start.Equal(today) {
		t.Errorf("понедельник должен открывать свою же неделю, получили %v", start)
	}
	if !end.Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("конец недели: получили %v", end)
	}
}

func TestWeekBoundsSunday(t *testing.T) {
	// воскресенье относится к предыдущему понедельнику, не к следующему
	today := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	start, end := models.WeekBounds(today)

	if !start.Equal(time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("начало недели: получили %v", start)
	}
	if !end.Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("конец недели: получили %v", end)
	}
}

func TestWeekBoundsCrossesMonth(t *testing.T) {
	// 2025-07-01 — вторник, неделя начинается в июне
	today := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	start, end := models.WeekBounds(today)

	if !start.Equal(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("начало недели: получили %v", start)
	}
	if !end.Equal(time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("конец недели: получили %v", end)
	}
}

func TestWeekBoundsCrossesYear(t *testing.T) {
	// 2026-01-02 — пятница, неделя началась 2025-12-29
	today := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)
	start, end := models.WeekBounds(today)

	if !start.Equal(time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("начало недели: получили %v", start)
	}
	if !end.Equal(time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("конец недели: получили %v", end)
	}
}

func TestWeeklyMissionSet(t *testing.T) {
	set := models.WeeklyMissionSet()
	if len(set) != 3 {
		t.Fatalf("недельный набор должен содержать 3 миссии, получили %d", len(set))
	}

	seen := make(map[string]bool)
	for _, m := range set {
		if m.Description == "" || m.Reward == "" {
			t.Errorf("шаблон миссии не заполнен: %+v", m)
		}
		if seen[m.Description] {
			t.Errorf("дубликат миссии в наборе: %q", m.Description)
		}
		seen[m.Description] = true
	}
}
