package service

import (
	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/diegoclair/shift-roster/internal/schedule"
	"go.uber.org/zap"
)

type Instance struct {
	Roster    *rosterService
	Publisher *publisher
}

// NewInstance wires the roster service and its publisher. defaultOffset
// is the UTC offset given to newly set up channels.
func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, log *zap.Logger,
	metrics contract.ScheduleMetrics, defaultOffset string) *Instance {
	rosterService := newRoster(dm, slackClient, log, metrics, schedule.RandomSource(), defaultOffset)
	pub := newPublisher(dm, rosterService, slackClient, log)
	rosterService.SetPublisher(pub)

	return &Instance{
		Roster:    rosterService,
		Publisher: pub,
	}
}
