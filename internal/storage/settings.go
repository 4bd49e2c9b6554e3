package storage

import (
	"database/sql"
	"fmt"
	"strconv"
)

// Settings are the player's persisted preferences.
type Settings struct {
	Speed      int
	Bird       string
	Background string
	Muted      bool
}

const (
	keySpeed      = "pipe_speed"
	keyBird       = "bird"
	keyBackground = "background"
	keyMuted      = "muted"
)

// LoadSettings returns the stored settings, falling back to defaults for any
// key that has never been saved or cannot be parsed.
func (s *Store) LoadSettings(defaults Settings) (Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return defaults, fmt.Errorf("storage: cannot query settings: %w", err)
	}
	defer rows.Close()

	out := defaults
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return defaults, fmt.Errorf("storage: cannot scan setting: %w", err)
		}
		switch key {
		case keySpeed:
			if n, err := strconv.Atoi(value); err == nil {
				out.Speed = n
			}
		case keyBird:
			out.Bird = value
		case keyBackground:
			out.Background = value
		case keyMuted:
			if b, err := strconv.ParseBool(value); err == nil {
				out.Muted = b
			}
		}
	}

	if err := rows.Err(); err != nil {
		return defaults, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// SaveSettings stores every setting in a single transaction.
func (s *Store) SaveSettings(settings Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin settings update: %w", err)
	}

	values := map[string]string{
		keySpeed:      strconv.Itoa(settings.Speed),
		keyBird:       settings.Bird,
		keyBackground: settings.Background,
		keyMuted:      strconv.FormatBool(settings.Muted),
	}
	for key, value := range values {
		if err := upsertSetting(tx, key, value); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit settings: %w", err)
	}
	return nil
}

func upsertSetting(tx *sql.Tx, key, value string) error {
	_, err := tx.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save setting %s: %w", key, err)
	}
	return nil
}
