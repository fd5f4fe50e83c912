package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diegoclair/shift-roster/internal/handlers"
	"github.com/diegoclair/shift-roster/internal/handlers/test"
	"github.com/diegoclair/shift-roster/internal/schedule"
	"github.com/diegoclair/shift-roster/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func postGenerate(t *testing.T, handler *handlers.ScheduleHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/api/generate_shifts", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	recorder := test.CreateTestRecorder()
	handler.HandleGenerate(recorder, req)
	return recorder
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body.Error
}

func TestScheduleHandler_HandleGenerate(t *testing.T) {
	defaults := handlers.ScheduleDefaults{
		Roster:     []string{"A", "B", "C", "D", "E"},
		WeekendOff: []string{"E"},
		Location:   tokyo,
	}

	oversized := make([]string, schedule.MaxRosterSize+1)
	for i := range oversized {
		oversized[i] = fmt.Sprintf("U%d", i)
	}
	oversizedRoster, err := json.Marshal(oversized)
	require.NoError(t, err)

	tests := []struct {
		name          string
		body          string
		buildMocks    func(roster *mocks.MockRosterService)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should generate with the seed and explicit roster",
			body: `{"roster":["U1","U2","U3","U4","U5","U6"],"month":"2024-07","seed":42,"offDays":{"U1":["2024-07-03"]}}`,
			buildMocks: func(roster *mocks.MockRosterService) {
				roster.EXPECT().
					GenerateSeeded(gomock.Any(), gomock.Any(), uint64(42)).
					DoAndReturn(func(ctx context.Context, in schedule.Input, seed uint64) (*schedule.Result, error) {
						assert.Equal(t, []string{"U1", "U2", "U3", "U4", "U5", "U6"}, in.Roster)
						assert.Equal(t, schedule.MonthPeriod(2024, time.July, tokyo), in.Period)
						assert.Equal(t, map[string][]string{"U1": {"2024-07-03"}}, in.Off)
						assert.Equal(t, []string{"E"}, in.WeekendOff)
						return schedule.NewEngine(schedule.NewSource(seed)).Generate(in)
					}).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)
				assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))

				var body struct {
					Schedule map[string]map[string]struct{ Tag string } `json:"schedule"`
				}
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
				assert.Len(t, body.Schedule, 31)
				assert.Equal(t, "off", body.Schedule["2024-07-03"]["U1"].Tag)
			},
		},
		{
			name: "Should fall back to the default roster",
			body: `{"month":"2024-07"}`,
			buildMocks: func(roster *mocks.MockRosterService) {
				roster.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, in schedule.Input) (*schedule.Result, error) {
						assert.Equal(t, defaults.Roster, in.Roster)
						return schedule.NewEngine(schedule.NewSource(1)).Generate(in)
					}).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, resp.Code)
			},
		},
		{
			name: "Should use start and days with an offset",
			body: `{"start":"2024-07-10","days":14,"offset":"-05:00"}`,
			buildMocks: func(roster *mocks.MockRosterService) {
				roster.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, in schedule.Input) (*schedule.Result, error) {
						assert.Equal(t, 14, in.Period.Days)
						assert.Equal(t, "2024-07-10", in.Period.Start.Format(schedule.DayKeyLayout))
						_, offset := in.Period.Start.Zone()
						assert.Equal(t, -5*3600, offset)
						return schedule.NewEngine(schedule.NewSource(1)).Generate(in)
					}).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, resp.Code)
			},
		},
		{
			name: "Should return 422 in strict mode with shortfalls",
			body: `{"roster":["U1","U2"],"month":"2024-07","strict":true}`,
			buildMocks: func(roster *mocks.MockRosterService) {
				roster.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, in schedule.Input) (*schedule.Result, error) {
						return schedule.NewEngine(schedule.NewSource(1)).Generate(in)
					}).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnprocessableEntity, resp.Code)

				var body struct {
					Shortfalls []schedule.Shortfall `json:"shortfalls"`
				}
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
				assert.NotEmpty(t, body.Shortfalls)
			},
		},
		{
			name: "Should return 200 with shortfalls when not strict",
			body: `{"roster":["U1","U2"],"month":"2024-07"}`,
			buildMocks: func(roster *mocks.MockRosterService) {
				roster.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, in schedule.Input) (*schedule.Result, error) {
						return schedule.NewEngine(schedule.NewSource(1)).Generate(in)
					}).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, resp.Code)
			},
		},
		{
			name: "Should return 400 for an empty roster",
			body: `{"roster":[],"month":"2024-07"}`,
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, resp.Code)
				assert.Contains(t, decodeError(t, resp), "roster is empty")
			},
		},
		{
			name: "Should return 400 for month and start together",
			body: `{"month":"2024-07","start":"2024-07-01","days":3}`,
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, resp.Code)
				assert.Contains(t, decodeError(t, resp), "either month or start")
			},
		},
		{
			name: "Should return 400 for a period too long to allocate",
			body: `{"start":"2024-07-01","days":4611686018427387904}`,
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, resp.Code)
				assert.Equal(t, schedule.ErrPeriodTooLong.Error(), decodeError(t, resp))
			},
		},
		{
			name: "Should return 400 for a period one day over the limit",
			body: `{"start":"2024-07-01","days":367}`,
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, resp.Code)
				assert.Contains(t, decodeError(t, resp), "longer than 366 days")
			},
		},
		{
			name: "Should return 400 for an oversized roster",
			body: `{"month":"2024-07","roster":` + string(oversizedRoster) + `}`,
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, resp.Code)
				assert.Equal(t, schedule.ErrRosterTooLarge.Error(), decodeError(t, resp))
			},
		},
		{
			name: "Should return 400 for a bad offset",
			body: `{"month":"2024-07","offset":"Tokyo"}`,
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, resp.Code)
				assert.Contains(t, decodeError(t, resp), "invalid UTC offset")
			},
		},
		{
			name: "Should return 400 for invalid JSON",
			body: `{"roster":`,
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, resp.Code)
				assert.Contains(t, decodeError(t, resp), "invalid JSON body")
			},
		},
		{
			name: "Should return 400 for engine input errors",
			body: `{"roster":["U1","U1"],"month":"2024-07"}`,
			buildMocks: func(roster *mocks.MockRosterService) {
				roster.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return(nil, schedule.ErrDuplicateEmployee).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, resp.Code)
				assert.Equal(t, schedule.ErrDuplicateEmployee.Error(), decodeError(t, resp))
			},
		},
		{
			name: "Should return 500 and hide internal errors",
			body: `{"month":"2024-07"}`,
			buildMocks: func(roster *mocks.MockRosterService) {
				roster.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return(nil, assert.AnError).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, resp.Code)
				assert.Equal(t, "failed to generate schedule", decodeError(t, resp))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster, handler, ctrl := test.GetScheduleHandlerTest(t, defaults)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(roster)
			}

			tt.checkResponse(t, postGenerate(t, handler, tt.body))
		})
	}
}

func TestScheduleHandler_HandleGenerate_MethodNotAllowed(t *testing.T) {
	_, handler, ctrl := test.GetScheduleHandlerTest(t, handlers.ScheduleDefaults{})
	defer ctrl.Finish()

	req, err := http.NewRequest(http.MethodGet, "/api/generate_shifts", nil)
	require.NoError(t, err)

	recorder := test.CreateTestRecorder()
	handler.HandleGenerate(recorder, req)

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	assert.Equal(t, http.MethodPost, recorder.Header().Get("Allow"))
}

func TestScheduleHandler_HandleGenerate_NextMonthByDefault(t *testing.T) {
	roster, handler, ctrl := test.GetScheduleHandlerTest(t, handlers.ScheduleDefaults{Roster: []string{"A", "B", "C", "D", "E"}})
	defer ctrl.Finish()

	want := schedule.NextMonth(time.Now(), time.UTC)
	roster.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, in schedule.Input) (*schedule.Result, error) {
			assert.Equal(t, time.UTC, in.Period.Location)
			assert.Equal(t, 1, in.Period.Start.Day())
			assert.Equal(t, want.Days, in.Period.Days)
			return schedule.NewEngine(schedule.NewSource(1)).Generate(in)
		}).Times(1)

	resp := postGenerate(t, handler, `{}`)
	assert.Equal(t, http.StatusOK, resp.Code)
}
