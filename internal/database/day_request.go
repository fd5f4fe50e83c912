package database

import (
	"fmt"

	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/diegoclair/shift-roster/internal/domain/entity"
)

type dayRequestRepo struct {
	db dbConn
}

func newDayRequestRepo(db dbConn) contract.DayRequestRepo {
	return &dayRequestRepo{db: db}
}

// Upsert stores the request, replacing the kind of an existing request
// for the same employee and day.
func (r *dayRequestRepo) Upsert(request *entity.DayRequest) error {
	query := `
		INSERT INTO day_requests (employee_id, day, kind)
		VALUES (?, ?, ?)
		ON CONFLICT (employee_id, day) DO UPDATE SET kind = excluded.kind
	`

	_, err := r.db.Exec(query, request.EmployeeID, request.Day, string(request.Kind))
	if err != nil {
		return fmt.Errorf("failed to upsert day request: %w", err)
	}

	err = r.db.QueryRow(
		`SELECT id, created_at FROM day_requests WHERE employee_id = ? AND day = ?`,
		request.EmployeeID, request.Day,
	).Scan(&request.ID, &request.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to get day request id: %w", err)
	}

	return nil
}

func (r *dayRequestRepo) Delete(employeeID int64, day string) error {
	query := `DELETE FROM day_requests WHERE employee_id = ? AND day = ?`

	_, err := r.db.Exec(query, employeeID, day)
	if err != nil {
		return fmt.Errorf("failed to delete day request: %w", err)
	}

	return nil
}

func (r *dayRequestRepo) ListByChannel(channelID int64, from, to string) ([]*entity.DayRequest, error) {
	query := `
		SELECT dr.id, dr.employee_id, e.slack_user_id, dr.day, dr.kind, dr.created_at
		FROM day_requests dr
		JOIN employees e ON e.id = dr.employee_id
		WHERE e.channel_id = ? AND e.is_active = 1 AND dr.day >= ? AND dr.day <= ?
		ORDER BY dr.day ASC, e.joined_at ASC, e.id ASC
	`

	rows, err := r.db.Query(query, channelID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get day requests: %w", err)
	}
	defer rows.Close()

	var requests []*entity.DayRequest
	for rows.Next() {
		request := &entity.DayRequest{}
		var kind string
		err := rows.Scan(
			&request.ID,
			&request.EmployeeID,
			&request.SlackUserID,
			&request.Day,
			&kind,
			&request.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan day request: %w", err)
		}
		request.Kind = entity.RequestKind(kind)
		requests = append(requests, request)
	}

	return requests, rows.Err()
}
