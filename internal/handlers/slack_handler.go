package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
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

type SlackHandler struct {
	slackClient   contract.SlackClient
	roster        contract.RosterService
	signingSecret string
	log           *zap.Logger
	now           func() time.Time
}

func New(slackClient contract.SlackClient, roster contract.RosterService, signingSecret string, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		slackClient:   slackClient,
		roster:        roster,
		signingSecret: signingSecret,
		log:           log,
		now:           time.Now,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn("rejected slash command with bad signature", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("failed to write slash command response", zap.Error(err))
	}
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if cmd.Type == slackcmd.CmdHelp {
		return h.handleHelp()
	}

	channel, _, err := h.roster.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		h.log.Error("failed to set up channel", zap.String("slack_channel_id", slashCmd.ChannelID), zap.Error(err))
		return h.createErrorResponse("Failed to verify channel")
	}

	switch cmd.Type {
	case slackcmd.CmdAdd:
		return h.handleAddEmployees(cmd, channel)
	case slackcmd.CmdRemove:
		return h.handleRemoveEmployee(cmd, channel)
	case slackcmd.CmdList:
		return h.handleListEmployees(channel)
	case slackcmd.CmdOff:
		return h.handleDeclareDays(cmd, channel, slashCmd, entity.RequestOff)
	case slackcmd.CmdPrefer:
		return h.handleDeclareDays(cmd, channel, slashCmd, entity.RequestPreferred)
	case slackcmd.CmdClear:
		return h.handleClearDays(cmd, channel, slashCmd)
	case slackcmd.CmdWeekend:
		return h.handleWeekend(cmd, channel)
	case slackcmd.CmdRequests:
		return h.handleRequests(cmd, channel)
	case slackcmd.CmdGenerate:
		return h.handleGenerate(ctx, cmd, channel)
	case slackcmd.CmdConfig:
		return h.handleConfig(cmd, channel)
	case slackcmd.CmdPause:
		return h.handlePause(channel)
	case slackcmd.CmdResume:
		return h.handleResume(channel)
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleAddEmployees(cmd *slackcmd.Command, channel *entity.Channel) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention at least one user: `/roster add @user1 @user2`")
	}

	var added []string
	var failed []string
	for _, arg := range cmd.Args {
		userID, ok := slackcmd.ExtractUserID(arg)
		if !ok {
			failed = append(failed, fmt.Sprintf("%s (not a user mention)", arg))
			continue
		}

		if err := h.roster.AddEmployee(channel.ID, userID); err != nil {
			failed = append(failed, fmt.Sprintf("<@%s> (%s)", userID, h.userMessage(err)))
			continue
		}
		added = append(added, fmt.Sprintf("<@%s>", userID))
	}

	if len(added) == 0 {
		return h.createErrorResponse("Failed to add: " + strings.Join(failed, ", "))
	}

	var text string
	if len(added) == 1 {
		text = fmt.Sprintf("✅ %s has been added to the roster!", added[0])
	} else {
		text = fmt.Sprintf("✅ %d members added to the roster: %s", len(added), strings.Join(added, ", "))
	}
	if len(failed) > 0 {
		text += "\n❌ Failed to add: " + strings.Join(failed, ", ")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

func (h *SlackHandler) handleRemoveEmployee(cmd *slackcmd.Command, channel *entity.Channel) *slack.Msg {
	var userID string
	if len(cmd.Args) > 0 {
		userID, _ = slackcmd.ExtractUserID(cmd.Args[0])
	}
	if userID == "" {
		return h.createErrorResponse("Please mention the user: `/roster remove @user`")
	}

	if err := h.roster.RemoveEmployee(channel.ID, userID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to remove <@%s>: %s", userID, h.userMessage(err)))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ <@%s> has been removed from the roster.", userID),
	}
}

func (h *SlackHandler) handleListEmployees(channel *entity.Channel) *slack.Msg {
	employees, err := h.roster.ListEmployees(channel.ID)
	if err != nil {
		return h.createErrorResponse("Failed to list members")
	}

	if len(employees) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No members in the roster. Use `/roster add @user` to add team members.",
		}
	}

	var list strings.Builder
	list.WriteString("*Roster members:*\n")
	for i, e := range employees {
		fmt.Fprintf(&list, "%d. %s", i+1, e.DisplayName)
		if e.WeekendOff {
			list.WriteString(" (weekends off)")
		}
		list.WriteString("\n")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleDeclareDays(cmd *slackcmd.Command, channel *entity.Channel, slashCmd *slack.SlashCommand, kind entity.RequestKind) *slack.Msg {
	userID, days := slackcmd.SplitTarget(cmd.Args, slashCmd.UserID)
	if len(days) == 0 {
		return h.createErrorResponse(fmt.Sprintf("Please give at least one date: `/roster %s [@user] YYYY-MM-DD`", cmd.Type))
	}

	if err := h.roster.DeclareDays(channel.ID, userID, kind, days); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to save %s days: %s", kind, h.userMessage(err)))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Saved %s days for <@%s>: %s", kind, userID, strings.Join(days, ", ")),
	}
}

func (h *SlackHandler) handleClearDays(cmd *slackcmd.Command, channel *entity.Channel, slashCmd *slack.SlashCommand) *slack.Msg {
	userID, days := slackcmd.SplitTarget(cmd.Args, slashCmd.UserID)
	if len(days) == 0 {
		return h.createErrorResponse("Please give at least one date: `/roster clear [@user] YYYY-MM-DD`")
	}

	if err := h.roster.ClearDays(channel.ID, userID, days); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to clear days: %s", h.userMessage(err)))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Cleared days for <@%s>: %s", userID, strings.Join(days, ", ")),
	}
}

func (h *SlackHandler) handleWeekend(cmd *slackcmd.Command, channel *entity.Channel) *slack.Msg {
	usage := "Use: `/roster weekend @user on|off`"
	if len(cmd.Args) != 2 {
		return h.createErrorResponse(usage)
	}

	userID, ok := slackcmd.ExtractUserID(cmd.Args[0])
	if !ok {
		return h.createErrorResponse(usage)
	}

	var weekendOff bool
	switch strings.ToLower(cmd.Args[1]) {
	case "on":
		weekendOff = true
	case "off":
		weekendOff = false
	default:
		return h.createErrorResponse(usage)
	}

	if err := h.roster.SetWeekendOff(channel.ID, userID, weekendOff); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to update <@%s>: %s", userID, h.userMessage(err)))
	}

	text := fmt.Sprintf("✅ <@%s> now has every weekend off.", userID)
	if !weekendOff {
		text = fmt.Sprintf("✅ <@%s> is back on the weekend rotation.", userID)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

// monthArg returns the month named in args, or next month in the
// channel's offset.
func (h *SlackHandler) monthArg(args []string, channel *entity.Channel) (schedule.Period, error) {
	loc, err := h.roster.ChannelLocation(channel.ID)
	if err != nil {
		return schedule.Period{}, err
	}

	if len(args) > 0 {
		return schedule.ParseMonth(args[0], loc)
	}

	return schedule.NextMonth(h.now(), loc), nil
}

func (h *SlackHandler) handleRequests(cmd *slackcmd.Command, channel *entity.Channel) *slack.Msg {
	period, err := h.monthArg(cmd.Args, channel)
	if err != nil {
		return h.createErrorResponse(h.userMessage(err))
	}

	requests, err := h.roster.ListRequests(channel.ID, period)
	if err != nil {
		return h.createErrorResponse("Failed to list requests")
	}

	month := period.Start.Format(schedule.MonthLayout)
	if len(requests) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("No requests for %s.", month),
		}
	}

	var list strings.Builder
	fmt.Fprintf(&list, "*Requests for %s:*\n", month)
	for _, req := range requests {
		fmt.Fprintf(&list, "• %s <@%s> %s\n", req.Day, req.SlackUserID, req.Kind)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleGenerate(ctx context.Context, cmd *slackcmd.Command, channel *entity.Channel) *slack.Msg {
	period, err := h.monthArg(cmd.Args, channel)
	if err != nil {
		return h.createErrorResponse(h.userMessage(err))
	}

	result, err := h.roster.GenerateForChannel(ctx, channel.ID, period)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to generate roster: %s", h.userMessage(err)))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.FormatSchedule(result),
	}
}

func (h *SlackHandler) handleConfig(cmd *slackcmd.Command, channel *entity.Channel) *slack.Msg {
	usage := "Use: `/roster config publish-day N`, `/roster config time HH:MM`, `/roster config offset +HH:MM` or `/roster config show`"
	if len(cmd.Args) == 0 {
		return h.createErrorResponse(usage)
	}

	if cmd.Args[0] == domain.ConfigShow {
		return h.handleConfigShow(channel)
	}

	if len(cmd.Args) < 2 {
		return h.createErrorResponse(usage)
	}

	configType := cmd.Args[0]
	configValue := strings.Join(cmd.Args[1:], " ")

	if err := h.roster.UpdatePublisherConfig(channel.ID, configType, configValue); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to update configuration: %s", h.userMessage(err)))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Configuration updated: %s = %s", configType, configValue),
	}
}

func (h *SlackHandler) handleConfigShow(channel *entity.Channel) *slack.Msg {
	publisher, err := h.roster.GetPublisherConfig(channel.ID)
	if err != nil {
		return h.createErrorResponse("Failed to load configuration")
	}

	if publisher == nil {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No configuration yet. Use `/roster config publish-day N` to set one up.",
		}
	}

	status := "active"
	if !publisher.IsEnabled {
		status = "paused"
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("*Current settings:*\n• Publish day: %d\n• Time: %s\n• UTC offset: %s\n• Status: %s",
			publisher.PublishDay, publisher.PublishTime, publisher.UTCOffset, status),
	}
}

func (h *SlackHandler) handlePause(channel *entity.Channel) *slack.Msg {
	if err := h.roster.PausePublisher(channel.ID); err != nil {
		return h.createErrorResponse("Failed to pause the monthly post")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "⏸️ Monthly roster post paused. Use `/roster resume` to turn it back on.",
	}
}

func (h *SlackHandler) handleResume(channel *entity.Channel) *slack.Msg {
	if err := h.roster.ResumePublisher(channel.ID); err != nil {
		return h.createErrorResponse("Failed to resume the monthly post")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "▶️ Monthly roster post resumed.",
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// userMessage hides internal errors from Slack users.
func (h *SlackHandler) userMessage(err error) string {
	if isUserError(err) {
		return err.Error()
	}
	h.log.Error("slash command failed", zap.Error(err))
	return "something went wrong, please try again"
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("failed to write error response", zap.Error(err))
	}
}

// isUserError reports whether err is caused by the request rather than
// by storage or Slack.
func isUserError(err error) bool {
	for _, target := range []error{
		domain.ErrEmployeeExists,
		domain.ErrEmployeeNotFound,
		domain.ErrEmptyRoster,
		domain.ErrInvalidDay,
		domain.ErrInvalidConfig,
		schedule.ErrInvalidPeriod,
		schedule.ErrInvalidDayKey,
		schedule.ErrInvalidOffset,
		schedule.ErrDuplicateEmployee,
		schedule.ErrRosterTooLarge,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
