package contract

import (
	"context"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
)

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo_mock.go -package=mocks

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Channel() ChannelRepo
	Employee() EmployeeRepo
	DayRequest() DayRequestRepo
	Publisher() PublisherRepo
}

// ChannelRepo defines the contract for channel repository
type ChannelRepo interface {
	Create(channel *entity.Channel) error
	GetBySlackID(slackChannelID string) (*entity.Channel, error)
	GetByID(id int64) (*entity.Channel, error)
}

// EmployeeRepo defines the contract for employee repository
type EmployeeRepo interface {
	Create(employee *entity.Employee) error
	GetByChannelAndSlackID(channelID int64, slackUserID string) (*entity.Employee, error)
	GetActiveByChannel(channelID int64) ([]*entity.Employee, error)
	Delete(employeeID int64) error
	SetWeekendOff(employeeID int64, weekendOff bool) error
}

// DayRequestRepo defines the contract for preferred and off day requests
type DayRequestRepo interface {
	Upsert(request *entity.DayRequest) error
	Delete(employeeID int64, day string) error
	// ListByChannel returns requests of active employees with from <= day <= to.
	ListByChannel(channelID int64, from, to string) ([]*entity.DayRequest, error)
}

// PublisherRepo defines the contract for publisher configuration repository
type PublisherRepo interface {
	Create(publisher *entity.Publisher) error
	GetByChannelID(channelID int64) (*entity.Publisher, error)
	Update(publisher *entity.Publisher) error
	GetEnabled() ([]*entity.Publisher, error)
	SetEnabled(channelID int64, enabled bool) error
}
