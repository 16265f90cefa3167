// ABOUTME: Data migration between wellness storage backends.
// ABOUTME: Copies every collection plus the profile and settings singletons.

package storage

import (
	"errors"
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated records per collection.
type MigrateSummary struct {
	MoodLogs              int
	AnxietyEpisodes       int
	BPReadings            int
	PlannedActivities     int
	ActivityLibrary       int
	ThoughtRecords        int
	BehavioralExperiments int
	AnxietyHierarchy      int
	MindfulnessSessions   int
	EnergyLogs            int
	TaskBreakdowns        int
	RoutineTemplates      int
	SpecialInterests      int
	InterestSessions      int
	Singletons            int
}

// Total returns the number of migrated records across all collections.
func (s *MigrateSummary) Total() int {
	return s.MoodLogs + s.AnxietyEpisodes + s.BPReadings + s.PlannedActivities +
		s.ActivityLibrary + s.ThoughtRecords + s.BehavioralExperiments +
		s.AnxietyHierarchy + s.MindfulnessSessions + s.EnergyLogs +
		s.TaskBreakdowns + s.RoutineTemplates + s.SpecialInterests +
		s.InterestSessions + s.Singletons
}

// MigrateData copies all data from src to dst storage. Record ids are
// reassigned by the destination. The destination should be empty and
// unseeded before calling this, otherwise the activity library doubles up.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	snapshot, err := GetAllData(src, DateRange{Start: RangeStart, End: RangeEnd})
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	if err := ImportData(dst, snapshot); err != nil {
		return nil, fmt.Errorf("write destination: %w", err)
	}

	summary := &MigrateSummary{
		MoodLogs:              len(snapshot.MoodLogs),
		AnxietyEpisodes:       len(snapshot.AnxietyEpisodes),
		BPReadings:            len(snapshot.BPReadings),
		PlannedActivities:     len(snapshot.PlannedActivities),
		ActivityLibrary:       len(snapshot.ActivityLibrary),
		ThoughtRecords:        len(snapshot.ThoughtRecords),
		BehavioralExperiments: len(snapshot.BehavioralExperiments),
		AnxietyHierarchy:      len(snapshot.AnxietyHierarchy),
		MindfulnessSessions:   len(snapshot.MindfulnessSessions),
		EnergyLogs:            len(snapshot.EnergyLogs),
		TaskBreakdowns:        len(snapshot.TaskBreakdowns),
		RoutineTemplates:      len(snapshot.RoutineTemplates),
		SpecialInterests:      len(snapshot.SpecialInterests),
		InterestSessions:      len(snapshot.InterestSessions),
	}

	// Singletons migrate outside the snapshot; absence is not an error.
	if settings, err := src.GetSettings(); err == nil {
		if err := dst.SaveSettings(settings); err != nil {
			return nil, fmt.Errorf("migrate settings: %w", err)
		}
		summary.Singletons++
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("read source settings: %w", err)
	}

	if profile, err := src.GetProfile(); err == nil {
		if err := dst.SaveProfile(profile); err != nil {
			return nil, fmt.Errorf("migrate profile: %w", err)
		}
		summary.Singletons++
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("read source profile: %w", err)
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or
// subdirectories. Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
