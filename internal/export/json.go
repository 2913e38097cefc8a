package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/bulletproof/internal/history"
)

type jsonExport struct {
	ExportedAt string        `json:"exported_at"`
	Streak     int           `json:"streak"`
	Count      int           `json:"count"`
	Checkins   []jsonCheckin `json:"checkins"`
}

type jsonCheckin struct {
	Date      string `json:"date"`
	Phase     string `json:"phase"`
	Mood      string `json:"mood"`
	Completed bool   `json:"completed"`
}

func ToJSON(records []history.Record, streak int, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Streak:     streak,
		Count:      len(records),
		Checkins:   make([]jsonCheckin, 0, len(records)),
	}

	for _, r := range records {
		export.Checkins = append(export.Checkins, jsonCheckin{
			Date:      r.Date,
			Phase:     r.Phase,
			Mood:      r.Mood.String(),
			Completed: r.Completed,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

// Filename is the default export file name for a format ("csv" or "json").
func Filename(format string, now time.Time) string {
	return fmt.Sprintf("bulletproof-export-%s.%s", now.Format("2006-01-02"), format)
}
