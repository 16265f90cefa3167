// ABOUTME: Tests for the Badger key-value backend.
// ABOUTME: Verifies it matches the SQLite backend's ordering and error semantics.
package kvstore

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myndness/mynd/internal/models"
	"github.com/myndness/mynd/internal/storage"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "kv"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestIDsStartAtOne(t *testing.T) {
	s := setupTestStore(t)

	first := models.NewMoodLog(5, 5)
	second := models.NewMoodLog(6, 4)
	require.NoError(t, s.CreateMoodLog(first))
	require.NoError(t, s.CreateMoodLog(second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestListMoodLogsFiltersAndSorts(t *testing.T) {
	s := setupTestStore(t)

	evening := models.NewMoodLog(5, 5).WithTimestamp(time.Date(2024, 1, 2, 20, 0, 0, 0, time.UTC))
	morning := models.NewMoodLog(7, 2).WithTimestamp(time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC))
	outside := models.NewMoodLog(6, 3).WithTimestamp(time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC))
	for _, m := range []*models.MoodLog{evening, morning, outside} {
		require.NoError(t, s.CreateMoodLog(m))
	}

	logs, err := s.ListMoodLogs("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.True(t, logs[0].Timestamp.Before(logs[1].Timestamp), "logs should sort by timestamp ascending")
}

func TestDeleteMoodLogNotFound(t *testing.T) {
	s := setupTestStore(t)

	err := s.DeleteMoodLog(7)
	assert.True(t, errors.Is(err, storage.ErrNotFound), "got %v", err)
}

func TestEndEpisodeParity(t *testing.T) {
	s := setupTestStore(t)

	e := models.NewAnxietyEpisode()
	e.StartTime = time.Date(2024, 4, 1, 14, 0, 0, 0, time.UTC)
	e.Date = models.DateOf(e.StartTime)
	require.NoError(t, s.CreateEpisode(e))

	end := e.StartTime.Add(30 * time.Minute)
	peak := 9
	err := s.EndEpisode(e.ID, end, storage.EpisodeOutcome{
		InterventionsUsed: []models.InterventionType{models.InterventionGrounding54321},
		InterventionEffectiveness: map[models.InterventionType]int{
			models.InterventionGrounding54321: 6,
		},
		PeakAnxietyLevel: &peak,
	})
	require.NoError(t, err)

	got, err := s.GetEpisode(e.ID)
	require.NoError(t, err)
	assert.False(t, got.Ongoing())
	assert.Equal(t, 30, got.DurationMinutes())
	assert.Equal(t, 6, got.InterventionEffectiveness[models.InterventionGrounding54321])

	// End before start must be rejected, same as SQLite.
	other := models.NewAnxietyEpisode()
	other.StartTime = e.StartTime
	other.Date = e.Date
	require.NoError(t, s.CreateEpisode(other))
	assert.Error(t, s.EndEpisode(other.ID, e.StartTime.Add(-time.Minute), storage.EpisodeOutcome{}))
}

func TestExposureAttemptCompletesAtTarget(t *testing.T) {
	s := setupTestStore(t)

	item := models.NewHierarchyItem("Ride the bus", 55)
	require.NoError(t, s.CreateHierarchyItem(item))

	got, err := s.AddExposureAttempt(item.ID, models.ExposureAttempt{
		Date: "2024-06-01", DistressBefore: 55, DistressDuring: 60, DistressAfter: 18, Duration: 25,
	})
	require.NoError(t, err)
	assert.True(t, got.IsComplete)
	assert.Equal(t, 18, got.CurrentDistress)
	assert.Equal(t, 55, got.InitialDistress)
	assert.Len(t, got.ExposureAttempts, 1)
}

func TestPlannedActivitiesOnOrdersByTimeBlock(t *testing.T) {
	s := setupTestStore(t)

	evening := models.NewPlannedActivity("Read", models.CategoryPleasure, models.BlockEvening, "2024-05-01")
	morning := models.NewPlannedActivity("Walk", models.CategoryPhysical, models.BlockMorning, "2024-05-01")
	for _, a := range []*models.PlannedActivity{evening, morning} {
		require.NoError(t, s.CreatePlannedActivity(a))
	}

	got, err := s.PlannedActivitiesOn("2024-05-01")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.BlockMorning, got[0].TimeBlock)
	assert.Equal(t, models.BlockEvening, got[1].TimeBlock)
}

func TestListHierarchyOrdersByDistressDescending(t *testing.T) {
	s := setupTestStore(t)

	low := models.NewHierarchyItem("Say hi", 25)
	high := models.NewHierarchyItem("Presentation", 85)
	for _, item := range []*models.AnxietyHierarchyItem{low, high} {
		require.NoError(t, s.CreateHierarchyItem(item))
	}

	got, err := s.ListHierarchy()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 85, got[0].CurrentDistress)
}

func TestInitializeSeedsOnce(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.Initialize())
	count, err := s.CountActivityLibrary()
	require.NoError(t, err)
	assert.NotZero(t, count)

	settings, err := s.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, int64(1), settings.ID)

	require.NoError(t, s.Initialize())
	again, err := s.CountActivityLibrary()
	require.NoError(t, err)
	assert.Equal(t, count, again)
}

func TestSettingsSingletonRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.GetSettings()
	assert.True(t, errors.Is(err, storage.ErrNotFound), "got %v", err)

	settings := models.DefaultSettings()
	require.NoError(t, s.SaveSettings(settings))

	settings.Theme = "dark"
	require.NoError(t, s.SaveSettings(settings))

	got, err := s.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "dark", got.Theme)
	assert.Equal(t, int64(1), got.ID)
}

func TestTaskStatusFilter(t *testing.T) {
	s := setupTestStore(t)

	draft := models.NewTaskBreakdown("Sort mail", []models.TaskStep{{Description: "Open pile", SpoonCost: 1}})
	ready := models.NewTaskBreakdown("Pack for trip", []models.TaskStep{{Description: "List essentials", SpoonCost: 1}})
	ready.Status = models.TaskReady
	require.NoError(t, s.CreateTaskBreakdown(draft))
	require.NoError(t, s.CreateTaskBreakdown(ready))

	status := models.TaskReady
	got, err := s.ListTaskBreakdowns(&status)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Pack for trip", got[0].Title)
}

func TestMigrateFromSQLite(t *testing.T) {
	src, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })

	mood := models.NewMoodLog(7, 2)
	require.NoError(t, src.CreateMoodLog(mood))
	require.NoError(t, src.SaveSettings(models.DefaultSettings()))

	dst := setupTestStore(t)
	summary, err := storage.MigrateData(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.MoodLogs)
	assert.Equal(t, 1, summary.Singletons)

	logs, err := dst.ListMoodLogs(storage.RangeStart, storage.RangeEnd)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 7, logs[0].Mood)

	settings, err := dst.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "light", settings.Theme)
}

func TestUseRoutineTemplateParity(t *testing.T) {
	s := setupTestStore(t)

	tpl := models.NewRoutineTemplate("Morning routine", []models.RoutineStep{
		{Description: "Shower", SpoonCost: 2},
		{Description: "Breakfast", SpoonCost: 1},
	})
	require.NoError(t, s.CreateRoutineTemplate(tpl))

	task, err := s.UseRoutineTemplate(tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, models.TaskReady, task.Status)
	assert.Equal(t, 3, task.TotalSpoonCost())

	reloaded, err := s.GetRoutineTemplate(tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.TimesUsed)

	_, err = s.UseRoutineTemplate(99)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListRoutineTemplatesMostUsedFirst(t *testing.T) {
	s := setupTestStore(t)

	rarely := models.NewRoutineTemplate("Deep clean", []models.RoutineStep{{Description: "Vacuum", SpoonCost: 4}})
	often := models.NewRoutineTemplate("Wind down", []models.RoutineStep{{Description: "Tea", SpoonCost: 1}})
	require.NoError(t, s.CreateRoutineTemplate(rarely))
	require.NoError(t, s.CreateRoutineTemplate(often))
	_, err := s.UseRoutineTemplate(often.ID)
	require.NoError(t, err)

	routines, err := s.ListRoutineTemplates()
	require.NoError(t, err)
	require.Len(t, routines, 2)
	assert.Equal(t, "Wind down", routines[0].Name)
}

func TestSpecialInterestActiveFilter(t *testing.T) {
	s := setupTestStore(t)

	active := models.NewSpecialInterest("Trains", "transport")
	paused := models.NewSpecialInterest("Chess", "games")
	require.NoError(t, s.CreateSpecialInterest(active))
	require.NoError(t, s.CreateSpecialInterest(paused))

	paused.CurrentlyActive = false
	require.NoError(t, s.UpdateSpecialInterest(paused))

	got, err := s.ListSpecialInterests(true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Trains", got[0].Name)

	all, err := s.ListSpecialInterests(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestInterestSessionsFilterByInterest(t *testing.T) {
	s := setupTestStore(t)

	trains := models.NewSpecialInterest("Trains", "transport")
	chess := models.NewSpecialInterest("Chess", "games")
	require.NoError(t, s.CreateSpecialInterest(trains))
	require.NoError(t, s.CreateSpecialInterest(chess))

	early := &models.InterestSession{
		Date:        "2024-06-01",
		Timestamp:   time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		InterestID:  trains.ID,
		SessionType: models.InterestSessionResearch,
		Duration:    30,
	}
	late := &models.InterestSession{
		Date:        "2024-06-03",
		Timestamp:   time.Date(2024, 6, 3, 20, 0, 0, 0, time.UTC),
		InterestID:  trains.ID,
		SessionType: models.InterestSessionCreating,
		Duration:    45,
	}
	other := &models.InterestSession{
		Date:        "2024-06-02",
		Timestamp:   time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC),
		InterestID:  chess.ID,
		SessionType: models.InterestSessionConsuming,
		Duration:    60,
	}
	require.NoError(t, s.CreateInterestSession(early))
	require.NoError(t, s.CreateInterestSession(late))
	require.NoError(t, s.CreateInterestSession(other))

	got, err := s.ListInterestSessions(trains.ID, storage.RangeStart, storage.RangeEnd)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 45, got[0].Duration)
	assert.Equal(t, 30, got[1].Duration)

	all, err := s.ListAllInterestSessions("2024-06-02", "2024-06-03")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, trains.ID, all[0].InterestID)
}
