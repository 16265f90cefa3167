// ABOUTME: Blood pressure reading persistence and range queries.
// ABOUTME: The anxiety_related column backs equality lookups for flagged readings.
package storage

import (
	"encoding/json"
	"time"

	"github.com/myndness/mynd/internal/models"
)

// CreateBPReading stores a new BP reading and assigns its id.
func (d *DB) CreateBPReading(r *models.BPReading) error {
	return d.insertRecord("bp_readings",
		[]string{"date", "timestamp", "anxiety_related"},
		[]any{r.Date, r.Timestamp.Format(time.RFC3339), boolInt(r.IsAnxietyRelated)},
		func(id int64) ([]byte, error) {
			r.ID = id
			return json.Marshal(r)
		})
}

// ListBPReadings returns readings within an inclusive date range, ordered by
// timestamp ascending.
func (d *DB) ListBPReadings(start, end string) ([]models.BPReading, error) {
	return queryRecords[models.BPReading](d,
		"SELECT data FROM bp_readings WHERE date >= ? AND date <= ? ORDER BY timestamp", start, end)
}

// AnxietyRelatedBPReadings returns readings flagged as anxiety-related
// within an inclusive date range.
func (d *DB) AnxietyRelatedBPReadings(start, end string) ([]models.BPReading, error) {
	return queryRecords[models.BPReading](d,
		"SELECT data FROM bp_readings WHERE date >= ? AND date <= ? AND anxiety_related = 1 ORDER BY timestamp",
		start, end)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
