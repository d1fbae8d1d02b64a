package store

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"

	"boardcal/internal/model"
)

// NewID returns a fresh opaque meeting id.
func NewID() string {
	var b [6]byte
	_, _ = rand.Read(b[:])
	return "m" + hex.EncodeToString(b[:])
}

// AddMeeting validates and inserts one meeting, assigning an id when the
// record has none.
func AddMeeting(dbh *sql.DB, m *model.Meeting) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = NewID()
	}
	var date, board sql.NullString
	if m.Date != "" {
		date = sql.NullString{String: m.Date, Valid: true}
	}
	if m.BoardNumber != "" {
		board = sql.NullString{String: m.BoardNumber, Valid: true}
	}
	var dayIndex sql.NullInt64
	if m.Date == "" && m.DayIndex != model.LegacyDayUnset {
		dayIndex = sql.NullInt64{Int64: int64(m.DayIndex), Valid: true}
	}
	_, err := dbh.Exec(`
		INSERT INTO meetings (id, date, day_index, start_minutes, end_minutes, title, type, board_number, members)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, date, dayIndex, m.StartMinutes, m.EndMinutes, m.Title, string(m.Type), board, model.JoinMembers(m.Members))
	if err != nil {
		return fmt.Errorf("insert meeting: %w", err)
	}
	return nil
}

// GetMeeting fetches one meeting by id.
func GetMeeting(dbh *sql.DB, id string) (model.Meeting, error) {
	rows, err := dbh.Query(`
		SELECT id, date, day_index, start_minutes, end_minutes, title, type, COALESCE(board_number,''), COALESCE(members,'')
		FROM meetings
		WHERE id = ?
	`, id)
	if err != nil {
		return model.Meeting{}, err
	}
	defer rows.Close()
	meetings, err := scanMeetings(rows)
	if err != nil {
		return model.Meeting{}, err
	}
	if len(meetings) == 0 {
		return model.Meeting{}, fmt.Errorf("no meeting with id %q", id)
	}
	return meetings[0], nil
}

// UpdateMeeting validates and rewrites an existing meeting in place.
func UpdateMeeting(dbh *sql.DB, m model.Meeting) error {
	if err := m.Validate(); err != nil {
		return err
	}
	var date, board sql.NullString
	if m.Date != "" {
		date = sql.NullString{String: m.Date, Valid: true}
	}
	if m.BoardNumber != "" {
		board = sql.NullString{String: m.BoardNumber, Valid: true}
	}
	var dayIndex sql.NullInt64
	if m.Date == "" && m.DayIndex != model.LegacyDayUnset {
		dayIndex = sql.NullInt64{Int64: int64(m.DayIndex), Valid: true}
	}
	res, err := dbh.Exec(`
		UPDATE meetings
		SET date = ?, day_index = ?, start_minutes = ?, end_minutes = ?, title = ?, type = ?, board_number = ?, members = ?
		WHERE id = ?
	`, date, dayIndex, m.StartMinutes, m.EndMinutes, m.Title, string(m.Type), board, model.JoinMembers(m.Members), m.ID)
	if err != nil {
		return fmt.Errorf("update meeting: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no meeting with id %q", m.ID)
	}
	return nil
}

// SearchMeetings matches a case-insensitive substring against title,
// board number and members, newest dates first.
func SearchMeetings(dbh *sql.DB, query string, limit int) ([]model.Meeting, error) {
	if limit <= 0 || limit > 1000 {
		limit = 200
	}
	like := "%" + query + "%"
	rows, err := dbh.Query(`
		SELECT id, date, day_index, start_minutes, end_minutes, title, type, COALESCE(board_number,''), COALESCE(members,'')
		FROM meetings
		WHERE title LIKE ? COLLATE NOCASE
		   OR board_number LIKE ? COLLATE NOCASE
		   OR members LIKE ? COLLATE NOCASE
		ORDER BY date DESC, start_minutes, id
		LIMIT ?
	`, like, like, like, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMeetings(rows)
}

// RemoveMeeting deletes a meeting by id.
func RemoveMeeting(dbh *sql.DB, id string) error {
	res, err := dbh.Exec(`DELETE FROM meetings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no meeting with id %q", id)
	}
	return nil
}

// MeetingsBetween returns every meeting dated within [fromISO, toISO]
// plus all legacy undated rows, which float with whichever week is on
// display. Results are ordered by date then start time.
func MeetingsBetween(dbh *sql.DB, fromISO, toISO string) ([]model.Meeting, error) {
	rows, err := dbh.Query(`
		SELECT id, date, day_index, start_minutes, end_minutes, title, type, COALESCE(board_number,''), COALESCE(members,'')
		FROM meetings
		WHERE (date BETWEEN ? AND ?) OR date IS NULL
		ORDER BY date, start_minutes, id
	`, fromISO, toISO)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMeetings(rows)
}

// MeetingsOnDate returns the dated meetings for one ISO day.
func MeetingsOnDate(dbh *sql.DB, iso string) ([]model.Meeting, error) {
	rows, err := dbh.Query(`
		SELECT id, date, day_index, start_minutes, end_minutes, title, type, COALESCE(board_number,''), COALESCE(members,'')
		FROM meetings
		WHERE date = ?
		ORDER BY start_minutes, id
	`, iso)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMeetings(rows)
}

func scanMeetings(rows *sql.Rows) ([]model.Meeting, error) {
	var out []model.Meeting
	for rows.Next() {
		var m model.Meeting
		var date sql.NullString
		var dayIndex sql.NullInt64
		var typ, members string
		if err := rows.Scan(&m.ID, &date, &dayIndex, &m.StartMinutes, &m.EndMinutes, &m.Title, &typ, &m.BoardNumber, &members); err != nil {
			return nil, err
		}
		m.Date = date.String
		m.DayIndex = model.LegacyDayUnset
		if !date.Valid && dayIndex.Valid {
			m.DayIndex = int(dayIndex.Int64)
		}
		m.Type = model.MeetingType(typ)
		m.Members = model.SplitMembers(members)
		out = append(out, m)
	}
	return out, rows.Err()
}
