package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain"
	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/internal/schedule"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type rosterService struct {
	dm            contract.DataManager
	slackClient   contract.SlackClient
	log           *zap.Logger
	metrics       contract.ScheduleMetrics
	defaultOffset string
	publisher     *publisher

	// src is shared by concurrent requests.
	mu  sync.Mutex
	src schedule.Source
}

func newRoster(dm contract.DataManager, slackClient contract.SlackClient, log *zap.Logger,
	metrics contract.ScheduleMetrics, src schedule.Source, defaultOffset string) *rosterService {
	if defaultOffset == "" {
		defaultOffset = domain.DefaultUTCOffset
	}
	return &rosterService{
		dm:            dm,
		slackClient:   slackClient,
		log:           log,
		metrics:       metrics,
		defaultOffset: defaultOffset,
		publisher:     nil, // set by SetPublisher, the publisher depends on this service
		src:           src,
	}
}

func (s *rosterService) SetPublisher(p *publisher) {
	s.publisher = p
}

func (s *rosterService) notifyPublisher() {
	if s.publisher != nil {
		s.publisher.NotifyConfigChange()
	}
}

func (s *rosterService) SetupChannel(slackChannelID, slackChannelName, slackTeamID string) (*entity.Channel, bool, error) {
	channel, err := s.dm.Channel().GetBySlackID(slackChannelID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check channel: %w", err)
	}

	if channel != nil {
		return channel, false, nil
	}

	channel = &entity.Channel{
		SlackChannelID:   slackChannelID,
		SlackChannelName: slackChannelName,
		SlackTeamID:      slackTeamID,
		IsActive:         true,
	}

	err = s.dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Channel().Create(channel); err != nil {
			return fmt.Errorf("failed to create channel: %w", err)
		}

		if err := tx.Publisher().Create(s.defaultPublisher(channel.ID)); err != nil {
			return fmt.Errorf("failed to create publisher config: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	s.log.Info("channel set up",
		zap.String("slack_channel_id", slackChannelID),
		zap.Int64("channel_id", channel.ID),
	)
	s.notifyPublisher()

	return channel, true, nil
}

func (s *rosterService) defaultPublisher(channelID int64) *entity.Publisher {
	return &entity.Publisher{
		ChannelID:   channelID,
		PublishDay:  domain.DefaultPublishDay,
		PublishTime: domain.DefaultPublishTime,
		UTCOffset:   s.defaultOffset,
		IsEnabled:   true,
	}
}

func (s *rosterService) AddEmployee(channelID int64, slackUserID string) error {
	userInfo, err := s.slackClient.GetUserInfo(slackUserID)
	if err != nil {
		return fmt.Errorf("failed to get user info from Slack: %w", err)
	}

	existing, err := s.dm.Employee().GetByChannelAndSlackID(channelID, slackUserID)
	if err != nil {
		return fmt.Errorf("failed to check existing employee: %w", err)
	}

	if existing != nil {
		return domain.ErrEmployeeExists
	}

	displayName := userInfo.Profile.RealName
	if displayName == "" {
		displayName = userInfo.Profile.DisplayName
	}
	if displayName == "" {
		displayName = userInfo.Name
	}

	employee := &entity.Employee{
		ChannelID:     channelID,
		SlackUserID:   slackUserID,
		SlackUserName: userInfo.Name,
		DisplayName:   displayName,
		IsActive:      true,
	}

	if err := s.dm.Employee().Create(employee); err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

func (s *rosterService) RemoveEmployee(channelID int64, slackUserID string) error {
	employee, err := s.getEmployee(channelID, slackUserID)
	if err != nil {
		return err
	}

	return s.dm.Employee().Delete(employee.ID)
}

func (s *rosterService) ListEmployees(channelID int64) ([]*entity.Employee, error) {
	return s.dm.Employee().GetActiveByChannel(channelID)
}

func (s *rosterService) SetWeekendOff(channelID int64, slackUserID string, weekendOff bool) error {
	employee, err := s.getEmployee(channelID, slackUserID)
	if err != nil {
		return err
	}

	if err := s.dm.Employee().SetWeekendOff(employee.ID, weekendOff); err != nil {
		return fmt.Errorf("failed to set weekend off: %w", err)
	}

	return nil
}

func (s *rosterService) getEmployee(channelID int64, slackUserID string) (*entity.Employee, error) {
	employee, err := s.dm.Employee().GetByChannelAndSlackID(channelID, slackUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}

	return employee, nil
}

// DeclareDays records preferred or off days. A day already declared with
// the other kind is switched.
func (s *rosterService) DeclareDays(channelID int64, slackUserID string, kind entity.RequestKind, days []string) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown request kind %q", domain.ErrInvalidConfig, kind)
	}

	keys, err := normalizeDays(days)
	if err != nil {
		return err
	}

	employee, err := s.getEmployee(channelID, slackUserID)
	if err != nil {
		return err
	}

	return s.dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		for _, day := range keys {
			request := &entity.DayRequest{
				EmployeeID:  employee.ID,
				SlackUserID: slackUserID,
				Day:         day,
				Kind:        kind,
			}
			if err := tx.DayRequest().Upsert(request); err != nil {
				return fmt.Errorf("failed to save %s day %s: %w", kind, day, err)
			}
		}
		return nil
	})
}

func (s *rosterService) ClearDays(channelID int64, slackUserID string, days []string) error {
	keys, err := normalizeDays(days)
	if err != nil {
		return err
	}

	employee, err := s.getEmployee(channelID, slackUserID)
	if err != nil {
		return err
	}

	return s.dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		for _, day := range keys {
			if err := tx.DayRequest().Delete(employee.ID, day); err != nil {
				return fmt.Errorf("failed to clear day %s: %w", day, err)
			}
		}
		return nil
	})
}

// normalizeDays validates day keys and drops duplicates, keeping order.
func normalizeDays(days []string) ([]string, error) {
	if len(days) == 0 {
		return nil, domain.ErrInvalidDay
	}

	seen := make(map[string]bool, len(days))
	keys := make([]string, 0, len(days))
	for _, day := range days {
		t, err := schedule.ParseDayKey(day, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDay, day)
		}
		key := t.Format(schedule.DayKeyLayout)
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}

	return keys, nil
}

func (s *rosterService) ListRequests(channelID int64, period schedule.Period) ([]*entity.DayRequest, error) {
	from, to, err := periodBounds(period)
	if err != nil {
		return nil, err
	}

	return s.dm.DayRequest().ListByChannel(channelID, from, to)
}

func periodBounds(period schedule.Period) (string, string, error) {
	days, err := schedule.GenerateDays(period)
	if err != nil {
		return "", "", err
	}
	return days[0].Key, days[len(days)-1].Key, nil
}

// ChannelLocation returns the fixed zone the channel's day keys use.
func (s *rosterService) ChannelLocation(channelID int64) (*time.Location, error) {
	publisher, err := s.dm.Publisher().GetByChannelID(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get publisher config: %w", err)
	}

	offset := s.defaultOffset
	if publisher != nil && publisher.UTCOffset != "" {
		offset = publisher.UTCOffset
	}

	return schedule.ParseOffset(offset)
}

// GenerateForChannel builds the schedule of the channel's active roster
// and stored requests for period. Nothing is persisted.
func (s *rosterService) GenerateForChannel(ctx context.Context, channelID int64, period schedule.Period) (*schedule.Result, error) {
	employees, err := s.dm.Employee().GetActiveByChannel(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	if len(employees) == 0 {
		return nil, domain.ErrEmptyRoster
	}

	requests, err := s.ListRequests(channelID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to get day requests: %w", err)
	}

	in := schedule.Input{
		Roster:    make([]string, 0, len(employees)),
		Period:    period,
		Preferred: map[string][]string{},
		Off:       map[string][]string{},
	}
	for _, e := range employees {
		in.Roster = append(in.Roster, e.SlackUserID)
		if e.WeekendOff {
			in.WeekendOff = append(in.WeekendOff, e.SlackUserID)
		}
	}
	for _, r := range requests {
		switch r.Kind {
		case entity.RequestPreferred:
			in.Preferred[r.SlackUserID] = append(in.Preferred[r.SlackUserID], r.Day)
		case entity.RequestOff:
			in.Off[r.SlackUserID] = append(in.Off[r.SlackUserID], r.Day)
		}
	}

	result, err := s.Generate(ctx, in)
	if err != nil {
		return nil, err
	}

	s.log.Info("schedule generated for channel",
		zap.Int64("channel_id", channelID),
		zap.String("schedule_id", result.ID),
		zap.Int("employees", len(in.Roster)),
		zap.Int("requests", len(requests)),
	)

	return result, nil
}

// Generate runs the engine with the service's shared random source.
func (s *rosterService) Generate(ctx context.Context, in schedule.Input) (*schedule.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.generate(ctx, in, schedule.NewEngine(s.src))
}

// GenerateSeeded is Generate with a private source, so equal seeds and
// inputs give equal schedules.
func (s *rosterService) GenerateSeeded(ctx context.Context, in schedule.Input, seed uint64) (*schedule.Result, error) {
	return s.generate(ctx, in, schedule.NewEngine(schedule.NewSource(seed)))
}

func (s *rosterService) generate(ctx context.Context, in schedule.Input, engine *schedule.Engine) (*schedule.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := engine.Generate(in)
	if err != nil {
		return nil, fmt.Errorf("failed to generate schedule: %w", err)
	}
	result.ID = uuid.NewString()

	s.metrics.ObserveGeneration(time.Since(start).Seconds(), in.Period.Days, len(in.Roster))
	for _, shortfall := range result.Shortfalls {
		s.metrics.RecordShortfall(string(shortfall.Kind))
	}

	if len(result.Shortfalls) > 0 {
		first := result.Shortfalls[0]
		s.log.Warn("schedule has unmet targets",
			zap.String("schedule_id", result.ID),
			zap.Int("shortfalls", len(result.Shortfalls)),
			zap.String("first_day", first.Day),
			zap.String("first_kind", string(first.Kind)),
		)
	}

	return result, nil
}

func (s *rosterService) UpdatePublisherConfig(channelID int64, configType, configValue string) error {
	publisher, err := s.dm.Publisher().GetByChannelID(channelID)
	if err != nil {
		return fmt.Errorf("failed to get publisher config: %w", err)
	}

	if publisher == nil {
		publisher = s.defaultPublisher(channelID)
		if err := s.dm.Publisher().Create(publisher); err != nil {
			return fmt.Errorf("failed to create publisher config: %w", err)
		}
	}

	value := strings.TrimSpace(configValue)
	switch configType {
	case domain.ConfigPublishDay:
		day, err := strconv.Atoi(value)
		if err != nil || day < 1 || day > domain.MaxPublishDay {
			return fmt.Errorf("%w: publish day must be 1-%d", domain.ErrInvalidConfig, domain.MaxPublishDay)
		}
		publisher.PublishDay = day
	case domain.ConfigTime:
		if _, err := time.Parse("15:04", value); err != nil {
			return fmt.Errorf("%w: use HH:MM (24-hour format), example: 09:30", domain.ErrInvalidConfig)
		}
		publisher.PublishTime = value
	case domain.ConfigOffset:
		loc, err := schedule.ParseOffset(value)
		if err != nil {
			return fmt.Errorf("%w: use +HH:MM, example: +09:00", domain.ErrInvalidConfig)
		}
		_, offset := time.Date(2000, 1, 1, 0, 0, 0, 0, loc).Zone()
		publisher.UTCOffset = schedule.FormatOffset(offset)
	default:
		return fmt.Errorf("%w: use '%s', '%s' or '%s'", domain.ErrInvalidConfig,
			domain.ConfigPublishDay, domain.ConfigTime, domain.ConfigOffset)
	}

	if err := s.dm.Publisher().Update(publisher); err != nil {
		return fmt.Errorf("failed to update publisher config: %w", err)
	}

	s.notifyPublisher()

	return nil
}

func (s *rosterService) GetPublisherConfig(channelID int64) (*entity.Publisher, error) {
	return s.dm.Publisher().GetByChannelID(channelID)
}

func (s *rosterService) PausePublisher(channelID int64) error {
	return s.setPublisherEnabled(channelID, false)
}

func (s *rosterService) ResumePublisher(channelID int64) error {
	return s.setPublisherEnabled(channelID, true)
}

func (s *rosterService) setPublisherEnabled(channelID int64, enabled bool) error {
	if err := s.dm.Publisher().SetEnabled(channelID, enabled); err != nil {
		action := "pause"
		if enabled {
			action = "resume"
		}
		return fmt.Errorf("failed to %s publisher: %w", action, err)
	}

	s.notifyPublisher()

	return nil
}
