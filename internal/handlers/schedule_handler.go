package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/diegoclair/shift-roster/internal/schedule"
	"go.uber.org/zap"
)

const maxRequestBody = 1 << 20

var errEmptyRoster = errors.New("roster is empty and DEFAULT_ROSTER is not set")

// ScheduleDefaults fill fields a generate request leaves out.
type ScheduleDefaults struct {
	Roster     []string
	WeekendOff []string
	Location   *time.Location
}

// ScheduleHandler serves the stateless generate endpoint.
type ScheduleHandler struct {
	roster   contract.RosterService
	defaults ScheduleDefaults
	log      *zap.Logger
	now      func() time.Time
}

func NewScheduleHandler(roster contract.RosterService, defaults ScheduleDefaults, log *zap.Logger) *ScheduleHandler {
	if defaults.Location == nil {
		defaults.Location = time.UTC
	}
	return &ScheduleHandler{
		roster:   roster,
		defaults: defaults,
		log:      log,
		now:      time.Now,
	}
}

// GenerateRequest is the body of POST /api/generate_shifts. Every field
// is optional. Month and Start are exclusive; neither means next month.
type GenerateRequest struct {
	Roster        []string            `json:"roster,omitempty"`
	WeekendOff    []string            `json:"weekendOff,omitempty"`
	Month         string              `json:"month,omitempty"`
	Start         string              `json:"start,omitempty"`
	Days          int                 `json:"days,omitempty"`
	Offset        string              `json:"offset,omitempty"`
	Seed          *uint64             `json:"seed,omitempty"`
	Strict        bool                `json:"strict,omitempty"`
	PreferredDays map[string][]string `json:"preferredDays,omitempty"`
	OffDays       map[string][]string `json:"offDays,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *ScheduleHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid JSON body: %v", err)})
		return
	}

	in, err := h.buildInput(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	var result *schedule.Result
	if req.Seed != nil {
		result, err = h.roster.GenerateSeeded(r.Context(), in, *req.Seed)
	} else {
		result, err = h.roster.Generate(r.Context(), in)
	}
	if err != nil {
		if isUserError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		h.log.Error("failed to generate schedule", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to generate schedule"})
		return
	}

	status := http.StatusOK
	if req.Strict && result.Err() != nil {
		status = http.StatusUnprocessableEntity
	}

	writeJSON(w, status, result)
}

// buildInput turns a request into engine input, filling defaults.
func (h *ScheduleHandler) buildInput(req GenerateRequest) (schedule.Input, error) {
	loc := h.defaults.Location
	if req.Offset != "" {
		var err error
		if loc, err = schedule.ParseOffset(req.Offset); err != nil {
			return schedule.Input{}, err
		}
	}

	period, err := schedule.ResolvePeriod(req.Month, req.Start, req.Days, loc, h.now())
	if err != nil {
		return schedule.Input{}, err
	}

	roster := req.Roster
	if roster == nil {
		roster = h.defaults.Roster
	}
	if len(roster) == 0 {
		return schedule.Input{}, errEmptyRoster
	}
	if len(roster) > schedule.MaxRosterSize {
		return schedule.Input{}, schedule.ErrRosterTooLarge
	}

	weekendOff := req.WeekendOff
	if weekendOff == nil {
		weekendOff = h.defaults.WeekendOff
	}

	return schedule.Input{
		Roster:     roster,
		Period:     period,
		Preferred:  req.PreferredDays,
		Off:        req.OffDays,
		WeekendOff: weekendOff,
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
