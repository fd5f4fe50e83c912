package database

import (
	"database/sql"
	"fmt"

	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/diegoclair/shift-roster/internal/domain/entity"
)

type employeeRepo struct {
	db dbConn
}

func newEmployeeRepo(db dbConn) contract.EmployeeRepo {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (channel_id, slack_user_id, slack_user_name, display_name, weekend_off, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		employee.ChannelID,
		employee.SlackUserID,
		employee.SlackUserName,
		employee.DisplayName,
		employee.WeekendOff,
		employee.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	employee.ID = id
	return nil
}

func (r *employeeRepo) GetByChannelAndSlackID(channelID int64, slackUserID string) (*entity.Employee, error) {
	employee := &entity.Employee{}
	query := `
		SELECT id, channel_id, slack_user_id, slack_user_name, display_name, weekend_off, is_active, joined_at
		FROM employees
		WHERE channel_id = ? AND slack_user_id = ?
	`

	err := r.db.QueryRow(query, channelID, slackUserID).Scan(
		&employee.ID,
		&employee.ChannelID,
		&employee.SlackUserID,
		&employee.SlackUserName,
		&employee.DisplayName,
		&employee.WeekendOff,
		&employee.IsActive,
		&employee.JoinedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee, nil
}

// GetActiveByChannel returns the roster in joining order, which is also
// the order the engine walks employees in.
func (r *employeeRepo) GetActiveByChannel(channelID int64) ([]*entity.Employee, error) {
	query := `
		SELECT id, channel_id, slack_user_id, slack_user_name, display_name, weekend_off, is_active, joined_at
		FROM employees
		WHERE channel_id = ? AND is_active = 1
		ORDER BY joined_at ASC, id ASC
	`

	rows, err := r.db.Query(query, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	defer rows.Close()

	var employees []*entity.Employee
	for rows.Next() {
		employee := &entity.Employee{}
		err := rows.Scan(
			&employee.ID,
			&employee.ChannelID,
			&employee.SlackUserID,
			&employee.SlackUserName,
			&employee.DisplayName,
			&employee.WeekendOff,
			&employee.IsActive,
			&employee.JoinedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, employee)
	}

	return employees, rows.Err()
}

func (r *employeeRepo) Delete(employeeID int64) error {
	query := `DELETE FROM employees WHERE id = ?`

	_, err := r.db.Exec(query, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

func (r *employeeRepo) SetWeekendOff(employeeID int64, weekendOff bool) error {
	query := `UPDATE employees SET weekend_off = ? WHERE id = ?`

	_, err := r.db.Exec(query, weekendOff, employeeID)
	if err != nil {
		return fmt.Errorf("failed to set weekend off: %w", err)
	}

	return nil
}
