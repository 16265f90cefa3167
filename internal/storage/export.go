// ABOUTME: Export and import functionality for wellness data.
// ABOUTME: Supports JSON, YAML, and per-collection CSV export formats.
package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/myndness/mynd/internal/models"
	"github.com/myndness/mynd/internal/stats"
	"gopkg.in/yaml.v3"
)

// Widest representable date range, used when no range is given.
const (
	RangeStart = "0000-01-01"
	RangeEnd   = "9999-12-31"
)

// DateRange bounds an export, inclusive on both ends.
type DateRange struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// ExportData represents the full export format for wellness data.
type ExportData struct {
	SnapshotID string    `json:"snapshotId" yaml:"snapshot_id"`
	Version    string    `json:"version" yaml:"version"`
	ExportedAt time.Time `json:"exportedAt" yaml:"exported_at"`
	Tool       string    `json:"tool" yaml:"tool"`
	DateRange  DateRange `json:"dateRange" yaml:"date_range"`

	MoodLogs              []models.MoodLog              `json:"moodLogs" yaml:"mood_logs"`
	AnxietyEpisodes       []models.AnxietyEpisode       `json:"anxietyEpisodes" yaml:"anxiety_episodes"`
	BPReadings            []models.BPReading            `json:"bpReadings" yaml:"bp_readings"`
	PlannedActivities     []models.PlannedActivity      `json:"plannedActivities" yaml:"planned_activities"`
	ActivityLibrary       []models.ActivityLibraryItem  `json:"activityLibrary" yaml:"activity_library"`
	ThoughtRecords        []models.ThoughtRecord        `json:"thoughtRecords" yaml:"thought_records"`
	BehavioralExperiments []models.BehavioralExperiment `json:"behavioralExperiments" yaml:"behavioral_experiments"`
	AnxietyHierarchy      []models.AnxietyHierarchyItem `json:"anxietyHierarchy" yaml:"anxiety_hierarchy"`
	MindfulnessSessions   []models.MindfulnessSession   `json:"mindfulnessSessions" yaml:"mindfulness_sessions"`
	EnergyLogs            []models.EnergyLog            `json:"energyLogs" yaml:"energy_logs"`
	TaskBreakdowns        []models.TaskBreakdown        `json:"taskBreakdowns" yaml:"task_breakdowns"`
	RoutineTemplates      []models.RoutineTemplate      `json:"routineTemplates" yaml:"routine_templates"`
	SpecialInterests      []models.SpecialInterest      `json:"specialInterests" yaml:"special_interests"`
	InterestSessions      []models.InterestSession      `json:"interestSessions" yaml:"interest_sessions"`

	Summary stats.WeeklyInsights `json:"summary" yaml:"summary"`
}

// GetAllData retrieves everything in the range for export. The summary is
// computed over the same window.
func GetAllData(r Repository, rng DateRange) (*ExportData, error) {
	out := &ExportData{
		SnapshotID: uuid.New().String(),
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "mynd",
		DateRange:  rng,
	}

	var err error
	if out.MoodLogs, err = r.ListMoodLogs(rng.Start, rng.End); err != nil {
		return nil, fmt.Errorf("list mood logs: %w", err)
	}
	if out.AnxietyEpisodes, err = r.ListEpisodes(rng.Start, rng.End); err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	if out.BPReadings, err = r.ListBPReadings(rng.Start, rng.End); err != nil {
		return nil, fmt.Errorf("list bp readings: %w", err)
	}
	if out.PlannedActivities, err = r.ListPlannedActivities(rng.Start, rng.End); err != nil {
		return nil, fmt.Errorf("list planned activities: %w", err)
	}
	if out.ActivityLibrary, err = r.ListActivityLibrary(""); err != nil {
		return nil, fmt.Errorf("list activity library: %w", err)
	}
	if out.ThoughtRecords, err = r.ListThoughtRecords(rng.Start, rng.End); err != nil {
		return nil, fmt.Errorf("list thought records: %w", err)
	}
	if out.BehavioralExperiments, err = r.ListExperiments(rng.Start, rng.End); err != nil {
		return nil, fmt.Errorf("list experiments: %w", err)
	}
	if out.AnxietyHierarchy, err = r.ListHierarchy(); err != nil {
		return nil, fmt.Errorf("list hierarchy: %w", err)
	}
	if out.MindfulnessSessions, err = r.ListMindfulnessSessions(rng.Start, rng.End); err != nil {
		return nil, fmt.Errorf("list mindfulness sessions: %w", err)
	}
	if out.EnergyLogs, err = r.ListEnergyLogs(rng.Start, rng.End); err != nil {
		return nil, fmt.Errorf("list energy logs: %w", err)
	}
	if out.TaskBreakdowns, err = r.ListTaskBreakdowns(nil); err != nil {
		return nil, fmt.Errorf("list task breakdowns: %w", err)
	}
	if out.RoutineTemplates, err = r.ListRoutineTemplates(); err != nil {
		return nil, fmt.Errorf("list routine templates: %w", err)
	}
	if out.SpecialInterests, err = r.ListSpecialInterests(false); err != nil {
		return nil, fmt.Errorf("list special interests: %w", err)
	}
	if out.InterestSessions, err = r.ListAllInterestSessions(rng.Start, rng.End); err != nil {
		return nil, fmt.Errorf("list interest sessions: %w", err)
	}

	out.Summary = stats.GetWeeklyInsights(
		out.MoodLogs, out.PlannedActivities, out.MindfulnessSessions, out.BPReadings)

	return out, nil
}

// ImportData writes an export snapshot into the repository. Record ids are
// reassigned by the destination; cross-record links keep their original
// values and are not rewritten.
func ImportData(r Repository, data *ExportData) error {
	for i := range data.MoodLogs {
		if err := r.CreateMoodLog(&data.MoodLogs[i]); err != nil {
			return fmt.Errorf("import mood log: %w", err)
		}
	}
	for i := range data.AnxietyEpisodes {
		if err := r.CreateEpisode(&data.AnxietyEpisodes[i]); err != nil {
			return fmt.Errorf("import episode: %w", err)
		}
	}
	for i := range data.BPReadings {
		if err := r.CreateBPReading(&data.BPReadings[i]); err != nil {
			return fmt.Errorf("import bp reading: %w", err)
		}
	}
	for i := range data.PlannedActivities {
		if err := r.CreatePlannedActivity(&data.PlannedActivities[i]); err != nil {
			return fmt.Errorf("import planned activity: %w", err)
		}
	}
	for i := range data.ActivityLibrary {
		if err := r.AddActivityLibraryItem(&data.ActivityLibrary[i]); err != nil {
			return fmt.Errorf("import activity library item: %w", err)
		}
	}
	for i := range data.ThoughtRecords {
		if err := r.CreateThoughtRecord(&data.ThoughtRecords[i]); err != nil {
			return fmt.Errorf("import thought record: %w", err)
		}
	}
	for i := range data.BehavioralExperiments {
		if err := r.CreateExperiment(&data.BehavioralExperiments[i]); err != nil {
			return fmt.Errorf("import experiment: %w", err)
		}
	}
	for i := range data.AnxietyHierarchy {
		if err := r.CreateHierarchyItem(&data.AnxietyHierarchy[i]); err != nil {
			return fmt.Errorf("import hierarchy item: %w", err)
		}
	}
	for i := range data.MindfulnessSessions {
		if err := r.CreateMindfulnessSession(&data.MindfulnessSessions[i]); err != nil {
			return fmt.Errorf("import mindfulness session: %w", err)
		}
	}
	for i := range data.EnergyLogs {
		if err := r.CreateEnergyLog(&data.EnergyLogs[i]); err != nil {
			return fmt.Errorf("import energy log: %w", err)
		}
	}
	for i := range data.TaskBreakdowns {
		if err := r.CreateTaskBreakdown(&data.TaskBreakdowns[i]); err != nil {
			return fmt.Errorf("import task breakdown: %w", err)
		}
	}
	for i := range data.RoutineTemplates {
		if err := r.CreateRoutineTemplate(&data.RoutineTemplates[i]); err != nil {
			return fmt.Errorf("import routine template: %w", err)
		}
	}
	for i := range data.SpecialInterests {
		if err := r.CreateSpecialInterest(&data.SpecialInterests[i]); err != nil {
			return fmt.Errorf("import special interest: %w", err)
		}
	}
	for i := range data.InterestSessions {
		if err := r.CreateInterestSession(&data.InterestSessions[i]); err != nil {
			return fmt.Errorf("import interest session: %w", err)
		}
	}
	return nil
}

// ExportJSON exports all data in the range as indented JSON.
func ExportJSON(r Repository, rng DateRange) ([]byte, error) {
	data, err := GetAllData(r, rng)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data in the range as YAML.
func ExportYAML(r Repository, rng DateRange) ([]byte, error) {
	data, err := GetAllData(r, rng)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ImportJSON imports a snapshot from JSON bytes.
func ImportJSON(r Repository, data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return ImportData(r, &exportData)
}

// csvColumns fixes the header order for each CSV collection. Columns match
// the record JSON field names so CSV and JSON exports stay comparable.
var csvColumns = map[string][]string{
	"moodLogs": {
		"id", "date", "timestamp", "mood", "anxiety", "notes",
		"isAnxietyEpisode", "linkedBpId", "linkedEpisodeId",
	},
	"anxietyEpisodes": {
		"id", "date", "startTime", "endTime", "symptoms", "symptomsOther",
		"triggers", "location", "interventionsUsed", "interventionEffectiveness",
		"bpReadings", "peakAnxietyLevel", "postEpisodeMood", "postEpisodeAnxiety", "notes",
	},
	"bpReadings": {
		"id", "date", "timestamp", "systolic", "diastolic", "heartRate",
		"arm", "position", "isAnxietyRelated", "isPostExercise",
		"isPostMedication", "linkedEpisodeId", "notes",
	},
	"plannedActivities": {
		"id", "date", "createdAt", "activity", "category", "timeBlock",
		"estimatedDuration", "completed", "completedAt", "actualDuration",
		"enjoyment", "mastery", "moodBefore", "moodAfter", "notes",
	},
	"thoughtRecords": {
		"id", "date", "timestamp", "situation", "automaticThought", "emotion",
		"emotionIntensity", "distortions", "evidenceFor", "evidenceAgainst",
		"balancedThought", "outcomeEmotion", "outcomeIntensity", "isComplete",
		"theme", "notes",
	},
	"behavioralExperiments": {
		"id", "date", "createdAt", "belief", "beliefStrength", "experiment",
		"prediction", "predictionConfidence", "plannedDate", "completed",
		"completedAt", "actualOutcome", "learnings", "beliefStrengthAfter", "notes",
	},
	"anxietyHierarchy": {
		"id", "createdAt", "situation", "category", "initialDistress",
		"currentDistress", "exposureAttempts", "targetDistress", "isComplete", "notes",
	},
	"mindfulnessSessions": {
		"id", "date", "timestamp", "practiceType", "durationPlanned",
		"durationActual", "moodBefore", "anxietyBefore", "moodAfter",
		"anxietyAfter", "focusQuality", "restlessness", "completed", "notes",
	},
	"energyLogs": {
		"id", "date", "timestamp", "energyLevel", "spoonsAvailable", "spoonsUsed", "notes",
	},
	"taskBreakdowns": {
		"id", "createdAt", "title", "steps", "status", "isTemplate",
		"templateCategory", "timesUsed", "startedAt", "completedAt", "notes",
	},
	"routineTemplates": {
		"id", "createdAt", "name", "description", "steps", "isDefault", "timesUsed",
	},
	"specialInterests": {
		"id", "createdAt", "name", "category", "description", "currentlyActive",
	},
	"interestSessions": {
		"id", "date", "timestamp", "interestId", "sessionType", "duration",
		"moodBefore", "moodAfter", "energyBefore", "energyAfter", "notes",
	},
}

// ExportCSV exports the range as one CSV document per collection, keyed by
// collection name. Empty collections are omitted.
func ExportCSV(r Repository, rng DateRange) (map[string][]byte, error) {
	data, err := GetAllData(r, rng)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]byte)
	add := func(name string, records any) error {
		doc, err := collectionCSV(records, csvColumns[name])
		if err != nil {
			return fmt.Errorf("export %s csv: %w", name, err)
		}
		if doc != nil {
			out[name] = doc
		}
		return nil
	}

	sections := []struct {
		name    string
		records any
	}{
		{"moodLogs", data.MoodLogs},
		{"anxietyEpisodes", data.AnxietyEpisodes},
		{"bpReadings", data.BPReadings},
		{"plannedActivities", data.PlannedActivities},
		{"thoughtRecords", data.ThoughtRecords},
		{"behavioralExperiments", data.BehavioralExperiments},
		{"anxietyHierarchy", data.AnxietyHierarchy},
		{"mindfulnessSessions", data.MindfulnessSessions},
		{"energyLogs", data.EnergyLogs},
		{"taskBreakdowns", data.TaskBreakdowns},
		{"routineTemplates", data.RoutineTemplates},
		{"specialInterests", data.SpecialInterests},
		{"interestSessions", data.InterestSessions},
	}
	for _, s := range sections {
		if err := add(s.name, s.records); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// CSVFilename builds the timestamped filename for one collection's CSV.
func CSVFilename(collection string, at time.Time) string {
	return fmt.Sprintf("mynd_%s_%s.csv", collection, at.Format("2006-01-02_1504"))
}

// collectionCSV renders a record slice as CSV. Records pass through a JSON
// round-trip so field names match the export tags; nested objects and
// slices become their JSON string form. Returns nil for an empty slice.
func collectionCSV(records any, headers []string) ([]byte, error) {
	raw, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}
	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	record := make([]string, len(headers))
	for _, row := range rows {
		for i, h := range headers {
			record[i] = csvValue(row[h])
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// csvValue formats one decoded JSON value as a CSV cell. Absent and null
// fields render as empty cells.
func csvValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}
