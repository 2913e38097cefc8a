package store

import "fmt"

// StackChecks returns the supplement items ticked on date.
func (s *Store) StackChecks(date string) (map[string]bool, error) {
	rows, err := s.db.Query(`SELECT item FROM stack_checks WHERE date = ?`, date)
	if err != nil {
		return nil, fmt.Errorf("list stack checks: %w", err)
	}
	defer rows.Close()

	checks := make(map[string]bool)
	for rows.Next() {
		var item string
		if err := rows.Scan(&item); err != nil {
			return nil, err
		}
		checks[item] = true
	}
	return checks, rows.Err()
}

func (s *Store) SetStackCheck(date, item string, checked bool) error {
	var err error
	if checked {
		_, err = s.db.Exec(
			`INSERT INTO stack_checks (date, item) VALUES (?, ?) ON CONFLICT(date, item) DO NOTHING`,
			date, item,
		)
	} else {
		_, err = s.db.Exec(`DELETE FROM stack_checks WHERE date = ? AND item = ?`, date, item)
	}
	if err != nil {
		return fmt.Errorf("set stack check %s/%s: %w", date, item, err)
	}
	return nil
}

// PruneStackChecks drops ticks dated before the given day.
func (s *Store) PruneStackChecks(before string) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM stack_checks WHERE date < ?`, before)
	if err != nil {
		return 0, fmt.Errorf("prune stack checks: %w", err)
	}
	return res.RowsAffected()
}
