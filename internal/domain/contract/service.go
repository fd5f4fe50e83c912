package contract

import (
	"context"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/internal/schedule"
)

//go:generate mockgen -source=service.go -destination=../../../mocks/service_mock.go -package=mocks

type RosterService interface {
	SetupChannel(slackChannelID, channelName, teamID string) (*entity.Channel, bool, error)
	AddEmployee(channelID int64, slackUserID string) error
	RemoveEmployee(channelID int64, slackUserID string) error
	ListEmployees(channelID int64) ([]*entity.Employee, error)
	SetWeekendOff(channelID int64, slackUserID string, weekendOff bool) error
	DeclareDays(channelID int64, slackUserID string, kind entity.RequestKind, days []string) error
	ClearDays(channelID int64, slackUserID string, days []string) error
	ListRequests(channelID int64, period schedule.Period) ([]*entity.DayRequest, error)
	ChannelLocation(channelID int64) (*time.Location, error)
	GenerateForChannel(ctx context.Context, channelID int64, period schedule.Period) (*schedule.Result, error)
	Generate(ctx context.Context, in schedule.Input) (*schedule.Result, error)
	GenerateSeeded(ctx context.Context, in schedule.Input, seed uint64) (*schedule.Result, error)
	UpdatePublisherConfig(channelID int64, configType, configValue string) error
	GetPublisherConfig(channelID int64) (*entity.Publisher, error)
	PausePublisher(channelID int64) error
	ResumePublisher(channelID int64) error
}

// ScheduleMetrics records generation outcomes.
type ScheduleMetrics interface {
	ObserveGeneration(seconds float64, days, employees int)
	RecordShortfall(kind string)
}
