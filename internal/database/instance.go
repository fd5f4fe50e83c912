package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/shift-roster/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db             *DB
	channelRepo    contract.ChannelRepo
	employeeRepo   contract.EmployeeRepo
	dayRequestRepo contract.DayRequestRepo
	publisherRepo  contract.PublisherRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := repoInstancesWithConn(db.conn)
	i.db = db
	return i
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		channelRepo:    newChannelRepo(db),
		employeeRepo:   newEmployeeRepo(db),
		dayRequestRepo: newDayRequestRepo(db),
		publisherRepo:  newPublisherRepo(db),
	}
}

func (i *instance) Channel() contract.ChannelRepo {
	return i.channelRepo
}

func (i *instance) Employee() contract.EmployeeRepo {
	return i.employeeRepo
}

func (i *instance) DayRequest() contract.DayRequestRepo {
	return i.dayRequestRepo
}

func (i *instance) Publisher() contract.PublisherRepo {
	return i.publisherRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	txInstance.db = i.db
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
