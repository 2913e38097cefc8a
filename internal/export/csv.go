package export

import (
	"fmt"
	"os"

	"github.com/sadopc/bulletproof/internal/history"
)

// ToCSV writes records in the check-in log format, so an export can be used
// directly as a csv backend file.
func ToCSV(records []history.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	if err := history.EncodeCSV(f, records); err != nil {
		return fmt.Errorf("write csv file: %w", err)
	}
	return f.Close()
}
