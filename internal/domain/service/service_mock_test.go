package service

import (
	"testing"

	"github.com/diegoclair/shift-roster/internal/metrics"
	"github.com/diegoclair/shift-roster/internal/schedule"
	"github.com/diegoclair/shift-roster/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockChannelRepo    *mocks.MockChannelRepo
	mockEmployeeRepo   *mocks.MockEmployeeRepo
	mockDayRequestRepo *mocks.MockDayRequestRepo
	mockPublisherRepo  *mocks.MockPublisherRepo
	mockSlackClient    *mocks.MockSlackClient
	mockRosterService  *mocks.MockRosterService
	mockMetrics        *mocks.MockScheduleMetrics
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	channelRepo := mocks.NewMockChannelRepo(ctrl)
	dm.EXPECT().Channel().Return(channelRepo).AnyTimes()

	employeeRepo := mocks.NewMockEmployeeRepo(ctrl)
	dm.EXPECT().Employee().Return(employeeRepo).AnyTimes()

	dayRequestRepo := mocks.NewMockDayRequestRepo(ctrl)
	dm.EXPECT().DayRequest().Return(dayRequestRepo).AnyTimes()

	publisherRepo := mocks.NewMockPublisherRepo(ctrl)
	dm.EXPECT().Publisher().Return(publisherRepo).AnyTimes()

	m = allMocks{
		mockDataManager:    dm,
		mockChannelRepo:    channelRepo,
		mockEmployeeRepo:   employeeRepo,
		mockDayRequestRepo: dayRequestRepo,
		mockPublisherRepo:  publisherRepo,
		mockSlackClient:    mocks.NewMockSlackClient(ctrl),
		mockRosterService:  mocks.NewMockRosterService(ctrl),
		mockMetrics:        mocks.NewMockScheduleMetrics(ctrl),
	}

	// validate service creation
	rosterService := newRoster(dm, m.mockSlackClient, zap.NewNop(), metrics.NewNop(), schedule.NewSource(1), "")
	require.NotNil(t, rosterService)

	return
}

// newTestRoster builds a roster service over the mocks with a fixed seed
// and no-op metrics.
func newTestRoster(m allMocks) *rosterService {
	return newRoster(m.mockDataManager, m.mockSlackClient, zap.NewNop(), metrics.NewNop(), schedule.NewSource(1), "+09:00")
}
