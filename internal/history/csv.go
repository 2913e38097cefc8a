package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var csvHeader = []string{"Date", "Phase", "Mood", "Completed"}

const completedYes = "Yes"

// CSVLog stores check-ins in a flat CSV file with the columns
// Date,Phase,Mood,Completed.
type CSVLog struct {
	path string

	mu         sync.Mutex
	unreadable int // rows dropped by the last Load
}

func NewCSVLog(path string) *CSVLog {
	return &CSVLog{path: path}
}

func (l *CSVLog) Path() string { return l.path }

// Unreadable reports how many rows the last Load could not parse. They are
// not written back on the next Save.
func (l *CSVLog) Unreadable() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.unreadable
}

func (l *CSVLog) Load() ([]Record, error) {
	f, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	defer f.Close()

	records, unreadable, err := DecodeCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read history %s: %w", l.path, err)
	}
	l.mu.Lock()
	l.unreadable = unreadable
	l.mu.Unlock()
	return records, nil
}

func (l *CSVLog) Save(r Record) error {
	records, err := l.Load()
	if err != nil {
		return err
	}
	return l.write(upsert(records, r))
}

func (l *CSVLog) Clear() (bool, error) {
	err := os.Remove(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("remove history: %w", err)
	}
	return true, nil
}

// write replaces the log file through a temp file in the same directory.
func (l *CSVLog) write(records []Record) error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*.csv")
	if err != nil {
		return fmt.Errorf("create temp history: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeCSV(tmp, records); err != nil {
		tmp.Close()
		return fmt.Errorf("write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp history: %w", err)
	}
	if err := os.Rename(tmp.Name(), l.path); err != nil {
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}

// EncodeCSV writes records with a header row.
func EncodeCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		completed := ""
		if r.Completed {
			completed = completedYes
		}
		if err := cw.Write([]string{r.Date, r.Phase, r.Mood.String(), completed}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeCSV reads rows written by EncodeCSV. Short rows are padded with empty
// columns and a missing header row is tolerated. Stray quotes are read
// literally, and a row the reader still rejects is dropped and counted in
// unreadable. Rows with bad dates are kept as-is; Streak skips them.
func DecodeCSV(r io.Reader) (records []Record, unreadable int, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records = []Record{}
	for first := true; ; first = false {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			unreadable++
			continue
		}
		if err != nil {
			return nil, unreadable, err
		}
		if first && isHeader(row) {
			continue
		}
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}
		for len(row) < len(csvHeader) {
			row = append(row, "")
		}
		mood, _ := ParseMood(row[2])
		records = append(records, Record{
			Date:      strings.TrimSpace(row[0]),
			Phase:     row[1],
			Mood:      mood,
			Completed: strings.EqualFold(strings.TrimSpace(row[3]), completedYes),
		})
	}
	return records, unreadable, nil
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), csvHeader[0])
}
