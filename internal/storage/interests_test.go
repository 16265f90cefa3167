// ABOUTME: Tests for special interests and interest sessions.
// ABOUTME: Covers listing order, the active filter, and per-interest session queries.
package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/myndness/mynd/internal/models"
)

func interestOn(name string, created time.Time) *models.SpecialInterest {
	return &models.SpecialInterest{
		CreatedAt:       created,
		Name:            name,
		Category:        "general",
		CurrentlyActive: true,
	}
}

func sessionAt(interestID int64, ts time.Time, minutes int) *models.InterestSession {
	return &models.InterestSession{
		Date:        models.DateOf(ts),
		Timestamp:   ts,
		InterestID:  interestID,
		SessionType: models.InterestSessionResearch,
		Duration:    minutes,
	}
}

func TestListSpecialInterestsNewestFirst(t *testing.T) {
	db := setupTestDB(t)

	older := interestOn("Trains", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	newer := interestOn("Synthesizers", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	if err := db.CreateSpecialInterest(older); err != nil {
		t.Fatalf("CreateSpecialInterest failed: %v", err)
	}
	if err := db.CreateSpecialInterest(newer); err != nil {
		t.Fatalf("CreateSpecialInterest failed: %v", err)
	}

	interests, err := db.ListSpecialInterests(false)
	if err != nil {
		t.Fatalf("ListSpecialInterests failed: %v", err)
	}
	if len(interests) != 2 {
		t.Fatalf("got %d interests, want 2", len(interests))
	}
	if interests[0].Name != "Synthesizers" || interests[1].Name != "Trains" {
		t.Errorf("order = [%s, %s], want newest first", interests[0].Name, interests[1].Name)
	}
}

func TestListSpecialInterestsActiveOnly(t *testing.T) {
	db := setupTestDB(t)

	active := interestOn("Trains", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	paused := interestOn("Chess", time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC))
	if err := db.CreateSpecialInterest(active); err != nil {
		t.Fatalf("CreateSpecialInterest failed: %v", err)
	}
	if err := db.CreateSpecialInterest(paused); err != nil {
		t.Fatalf("CreateSpecialInterest failed: %v", err)
	}

	paused.CurrentlyActive = false
	if err := db.UpdateSpecialInterest(paused); err != nil {
		t.Fatalf("UpdateSpecialInterest failed: %v", err)
	}

	interests, err := db.ListSpecialInterests(true)
	if err != nil {
		t.Fatalf("ListSpecialInterests failed: %v", err)
	}
	if len(interests) != 1 || interests[0].Name != "Trains" {
		t.Errorf("active interests = %+v, want only Trains", interests)
	}

	all, err := db.ListSpecialInterests(false)
	if err != nil {
		t.Fatalf("ListSpecialInterests failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d interests, want paused one still listed", len(all))
	}
}

func TestUpdateSpecialInterestNotFound(t *testing.T) {
	db := setupTestDB(t)

	ghost := interestOn("Nothing", time.Now())
	ghost.ID = 42
	if err := db.UpdateSpecialInterest(ghost); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateSpecialInterest error = %v, want ErrNotFound", err)
	}
}

func TestInterestSessionsFilterByInterestAndRange(t *testing.T) {
	db := setupTestDB(t)

	trains := interestOn("Trains", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	chess := interestOn("Chess", time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC))
	if err := db.CreateSpecialInterest(trains); err != nil {
		t.Fatalf("CreateSpecialInterest failed: %v", err)
	}
	if err := db.CreateSpecialInterest(chess); err != nil {
		t.Fatalf("CreateSpecialInterest failed: %v", err)
	}

	early := sessionAt(trains.ID, time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), 30)
	late := sessionAt(trains.ID, time.Date(2024, 6, 3, 20, 0, 0, 0, time.UTC), 45)
	other := sessionAt(chess.ID, time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC), 60)
	for _, s := range []*models.InterestSession{early, late, other} {
		if err := db.CreateInterestSession(s); err != nil {
			t.Fatalf("CreateInterestSession failed: %v", err)
		}
	}

	sessions, err := db.ListInterestSessions(trains.ID, RangeStart, RangeEnd)
	if err != nil {
		t.Fatalf("ListInterestSessions failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	if sessions[0].Duration != 45 || sessions[1].Duration != 30 {
		t.Errorf("order = [%d, %d] minutes, want most recent first", sessions[0].Duration, sessions[1].Duration)
	}

	windowed, err := db.ListInterestSessions(trains.ID, "2024-06-01", "2024-06-02")
	if err != nil {
		t.Fatalf("ListInterestSessions failed: %v", err)
	}
	if len(windowed) != 1 || windowed[0].Duration != 30 {
		t.Errorf("windowed sessions = %+v, want only the early one", windowed)
	}

	all, err := db.ListAllInterestSessions("2024-06-02", "2024-06-03")
	if err != nil {
		t.Fatalf("ListAllInterestSessions failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d sessions across interests, want 2", len(all))
	}
	if all[0].InterestID != trains.ID || all[1].InterestID != chess.ID {
		t.Errorf("order = [%d, %d], want most recent first across interests", all[0].InterestID, all[1].InterestID)
	}
}
