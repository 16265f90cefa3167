// ABOUTME: Repository interface implemented by the SQLite and Badger backends.
// ABOUTME: Commands and the migrator depend on this, never on a concrete backend.
package storage

import (
	"errors"
	"time"

	"github.com/myndness/mynd/internal/models"
)

// ErrNotFound is returned when a record does not exist. Callers test for it
// with errors.Is; both backends wrap it with context.
var ErrNotFound = errors.New("record not found")

// Repository is the full storage contract. *DB (SQLite) and the kvstore
// backend both satisfy it; commands receive one via the config factory.
type Repository interface {
	Initialize() error
	Close() error

	// Mood logs
	CreateMoodLog(m *models.MoodLog) error
	ListMoodLogs(start, end string) ([]models.MoodLog, error)
	MoodLogsOn(date string) ([]models.MoodLog, error)
	DeleteMoodLog(id int64) error

	// Blood pressure
	CreateBPReading(r *models.BPReading) error
	ListBPReadings(start, end string) ([]models.BPReading, error)
	AnxietyRelatedBPReadings(start, end string) ([]models.BPReading, error)

	// Anxiety episodes
	CreateEpisode(e *models.AnxietyEpisode) error
	GetEpisode(id int64) (*models.AnxietyEpisode, error)
	EndEpisode(id int64, end time.Time, outcome EpisodeOutcome) error
	AddEpisodeBPReading(id int64, reading models.EpisodeBPReading) error
	ListEpisodes(start, end string) ([]models.AnxietyEpisode, error)
	RecentEpisodes(since string) ([]models.AnxietyEpisode, error)

	// Planned activities and the activity library
	CreatePlannedActivity(a *models.PlannedActivity) error
	GetPlannedActivity(id int64) (*models.PlannedActivity, error)
	PlannedActivitiesOn(date string) ([]models.PlannedActivity, error)
	ListPlannedActivities(start, end string) ([]models.PlannedActivity, error)
	ActivitiesByCategory(category models.ActivityCategory, start, end string) ([]models.PlannedActivity, error)
	CompleteActivity(id int64, done models.ActivityCompletion) error
	AddActivityLibraryItem(item *models.ActivityLibraryItem) error
	ListActivityLibrary(category string) ([]models.ActivityLibraryItem, error)
	CountActivityLibrary() (int, error)

	// Thought records
	CreateThoughtRecord(r *models.ThoughtRecord) error
	GetThoughtRecord(id int64) (*models.ThoughtRecord, error)
	UpdateThoughtRecord(r *models.ThoughtRecord) error
	ListThoughtRecords(start, end string) ([]models.ThoughtRecord, error)
	IncompleteThoughtRecords() ([]models.ThoughtRecord, error)

	// Behavioral experiments
	CreateExperiment(e *models.BehavioralExperiment) error
	GetExperiment(id int64) (*models.BehavioralExperiment, error)
	CompleteExperiment(id int64, outcome ExperimentOutcome) error
	ListExperiments(start, end string) ([]models.BehavioralExperiment, error)
	IncompleteExperiments() ([]models.BehavioralExperiment, error)

	// Exposure hierarchy
	CreateHierarchyItem(item *models.AnxietyHierarchyItem) error
	GetHierarchyItem(id int64) (*models.AnxietyHierarchyItem, error)
	ListHierarchy() ([]models.AnxietyHierarchyItem, error)
	AddExposureAttempt(id int64, attempt models.ExposureAttempt) (*models.AnxietyHierarchyItem, error)

	// Mindfulness
	CreateMindfulnessSession(s *models.MindfulnessSession) error
	ListMindfulnessSessions(start, end string) ([]models.MindfulnessSession, error)
	CompletedMindfulnessSessions(start, end string) ([]models.MindfulnessSession, error)

	// Energy and task breakdowns
	CreateEnergyLog(l *models.EnergyLog) error
	ListEnergyLogs(start, end string) ([]models.EnergyLog, error)
	LatestEnergyLog() (*models.EnergyLog, error)
	CreateTaskBreakdown(t *models.TaskBreakdown) error
	GetTaskBreakdown(id int64) (*models.TaskBreakdown, error)
	UpdateTaskBreakdown(t *models.TaskBreakdown) error
	ListTaskBreakdowns(status *models.TaskStatus) ([]models.TaskBreakdown, error)

	// Routine templates
	CreateRoutineTemplate(t *models.RoutineTemplate) error
	GetRoutineTemplate(id int64) (*models.RoutineTemplate, error)
	ListRoutineTemplates() ([]models.RoutineTemplate, error)
	UseRoutineTemplate(id int64) (*models.TaskBreakdown, error)

	// Special interests and sessions
	CreateSpecialInterest(i *models.SpecialInterest) error
	GetSpecialInterest(id int64) (*models.SpecialInterest, error)
	UpdateSpecialInterest(i *models.SpecialInterest) error
	ListSpecialInterests(activeOnly bool) ([]models.SpecialInterest, error)
	CreateInterestSession(s *models.InterestSession) error
	ListInterestSessions(interestID int64, start, end string) ([]models.InterestSession, error)
	ListAllInterestSessions(start, end string) ([]models.InterestSession, error)

	// Profile and settings singletons
	GetSettings() (*models.Settings, error)
	SaveSettings(s *models.Settings) error
	GetProfile() (*models.UserProfile, error)
	SaveProfile(p *models.UserProfile) error
}

var _ Repository = (*DB)(nil)
