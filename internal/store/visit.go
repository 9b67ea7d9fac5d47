package store

import (
	"fmt"
	"time"
)

// SetVisited records whether the shopper has finished a section of a list.
func (s *GroceryStore) SetVisited(listID int64, sectionID string, visited bool) error {
	v := 0
	if visited {
		v = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO section_visits (list_id, section_id, visited, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (list_id, section_id) DO UPDATE SET visited = excluded.visited, updated_at = excluded.updated_at`,
		listID, sectionID, v, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set visited: %w", err)
	}
	return nil
}

// Visits returns the visited sections of a list keyed by section id.
func (s *GroceryStore) Visits(listID int64) (map[string]bool, error) {
	rows, err := s.db.Query(
		`SELECT section_id FROM section_visits WHERE list_id = ? AND visited = 1`,
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	defer rows.Close()

	visits := make(map[string]bool)
	for rows.Next() {
		var sectionID string
		if err := rows.Scan(&sectionID); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		visits[sectionID] = true
	}
	return visits, rows.Err()
}

// ResetVisits clears every visited flag of a list, starting a new trip.
func (s *GroceryStore) ResetVisits(listID int64) error {
	_, err := s.db.Exec(`DELETE FROM section_visits WHERE list_id = ?`, listID)
	if err != nil {
		return fmt.Errorf("reset visits: %w", err)
	}
	return nil
}
