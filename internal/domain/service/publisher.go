package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain"
	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/diegoclair/shift-roster/internal/domain/entity"
	slackcmd "github.com/diegoclair/shift-roster/internal/domain/slack"
	"github.com/diegoclair/shift-roster/internal/schedule"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

const (
	idleWait     = 1 * time.Hour
	cooldownWait = 1 * time.Minute
)

// publisher posts next month's roster to every enabled channel on its
// configured day and time.
type publisher struct {
	dm            contract.DataManager
	roster        contract.RosterService
	slackClient   contract.SlackClient
	log           *zap.Logger
	now           func() time.Time
	configChanged chan struct{}
	stopChan      chan struct{}
	running       bool
}

func newPublisher(dm contract.DataManager, roster contract.RosterService, slackClient contract.SlackClient, log *zap.Logger) *publisher {
	return &publisher{
		dm:            dm,
		roster:        roster,
		slackClient:   slackClient,
		log:           log,
		now:           time.Now,
		configChanged: make(chan struct{}, 1),
		stopChan:      make(chan struct{}),
		running:       false,
	}
}

func (p *publisher) Start() {
	if p.running {
		return
	}
	p.running = true
	p.log.Info("publisher starting")
	go p.mainLoop()
}

func (p *publisher) Stop() {
	if !p.running {
		return
	}
	p.log.Info("publisher stopping")
	close(p.stopChan)
	p.running = false
}

func (p *publisher) NotifyConfigChange() {
	select {
	case p.configChanged <- struct{}{}:
	default:
		// a recalculation is already pending
	}
}

func (p *publisher) mainLoop() {
	for {
		nextTime, channelIDs := p.findNextPublish()

		wait := idleWait
		if len(channelIDs) == 0 {
			p.log.Debug("no enabled publishers, waiting", zap.Duration("wait", wait))
		} else {
			wait = nextTime.Sub(p.now())
			p.log.Info("next roster publish",
				zap.Time("at", nextTime),
				zap.Int("channels", len(channelIDs)),
			)
		}

		if wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-p.configChanged:
				timer.Stop()
				p.log.Debug("publisher config changed, recalculating")
				continue
			case <-p.stopChan:
				timer.Stop()
				return
			}
		}

		if len(channelIDs) == 0 {
			continue
		}

		p.publishAll(channelIDs)

		// Keep the same minute from firing twice.
		cooldown := time.NewTimer(cooldownWait)
		select {
		case <-cooldown.C:
		case <-p.stopChan:
			cooldown.Stop()
			return
		}
	}
}

func (p *publisher) findNextPublish() (time.Time, []int64) {
	publishers, err := p.dm.Publisher().GetEnabled()
	if err != nil {
		p.log.Error("failed to get enabled publishers", zap.Error(err))
		return time.Time{}, nil
	}

	if len(publishers) == 0 {
		return time.Time{}, nil
	}

	now := p.now()

	type channelNext struct {
		channelID int64
		nextTime  time.Time
	}

	var allNext []channelNext
	for _, pub := range publishers {
		nextTime := p.calculateNextPublish(pub, now)
		if !nextTime.IsZero() {
			allNext = append(allNext, channelNext{channelID: pub.ChannelID, nextTime: nextTime})
		}
	}

	if len(allNext) == 0 {
		return time.Time{}, nil
	}

	sort.SliceStable(allNext, func(i, j int) bool {
		return allNext[i].nextTime.Before(allNext[j].nextTime)
	})

	earliest := allNext[0].nextTime

	var channelIDs []int64
	for _, cn := range allNext {
		if !cn.nextTime.Equal(earliest) {
			break
		}
		channelIDs = append(channelIDs, cn.channelID)
	}

	return earliest, channelIDs
}

// calculateNextPublish returns the first PublishDay at PublishTime in the
// publisher's offset strictly after now, in UTC. Zero means misconfigured.
func (p *publisher) calculateNextPublish(pub *entity.Publisher, now time.Time) time.Time {
	loc, err := schedule.ParseOffset(pub.UTCOffset)
	if err != nil {
		p.log.Warn("invalid publisher offset", zap.Int64("publisher_id", pub.ID), zap.String("offset", pub.UTCOffset))
		return time.Time{}
	}

	hour, minute, ok := parseClock(pub.PublishTime)
	if !ok {
		p.log.Warn("invalid publish time", zap.Int64("publisher_id", pub.ID), zap.String("time", pub.PublishTime))
		return time.Time{}
	}

	if pub.PublishDay < 1 || pub.PublishDay > domain.MaxPublishDay {
		p.log.Warn("invalid publish day", zap.Int64("publisher_id", pub.ID), zap.Int("day", pub.PublishDay))
		return time.Time{}
	}

	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), pub.PublishDay, hour, minute, 0, 0, loc)
	if !next.After(now) {
		next = time.Date(local.Year(), local.Month()+1, pub.PublishDay, hour, minute, 0, 0, loc)
	}

	return next.UTC()
}

func parseClock(value string) (int, int, bool) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}

	return hour, minute, true
}

func (p *publisher) publishAll(channelIDs []int64) {
	p.log.Info("publishing rosters", zap.Int("channels", len(channelIDs)))

	for _, channelID := range channelIDs {
		go func(cID int64) {
			if err := p.publishToChannel(context.Background(), cID); err != nil {
				p.log.Error("failed to publish roster", zap.Int64("channel_id", cID), zap.Error(err))
			}
		}(channelID)
	}
}

// publishToChannel generates the month after now in the channel's offset
// and posts it.
func (p *publisher) publishToChannel(ctx context.Context, channelID int64) error {
	channel, err := p.dm.Channel().GetByID(channelID)
	if err != nil {
		return fmt.Errorf("failed to get channel: %w", err)
	}

	if channel == nil {
		return domain.ErrChannelNotFound
	}

	loc, err := p.roster.ChannelLocation(channelID)
	if err != nil {
		return fmt.Errorf("failed to get channel location: %w", err)
	}

	period := schedule.NextMonth(p.now(), loc)

	var message string
	result, err := p.roster.GenerateForChannel(ctx, channelID, period)
	switch {
	case errors.Is(err, domain.ErrEmptyRoster):
		message = slackcmd.EmptyRosterText()
	case err != nil:
		return fmt.Errorf("failed to generate roster: %w", err)
	default:
		message = slackcmd.FormatSchedule(result)
	}

	_, _, err = p.slackClient.PostMessage(
		channel.SlackChannelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	p.log.Info("roster published",
		zap.String("slack_channel_id", channel.SlackChannelID),
		zap.String("month", period.Start.Format(schedule.MonthLayout)),
	)

	return nil
}
