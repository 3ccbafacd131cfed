package service

import (
	"testing"
	"time"

	"github.com/diegoclair/hybrid-attendance-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fixedNow is Wednesday 2024-05-15 14:30 UTC.
var fixedNow = time.Date(2024, 5, 15, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockAttendanceRepo *mocks.MockAttendanceRepo
	mockSlackClient    *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	attendanceRepo := mocks.NewMockAttendanceRepo(ctrl)
	dm.EXPECT().Attendance().Return(attendanceRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager:    dm,
		mockAttendanceRepo: attendanceRepo,
		mockSlackClient:    slackClient,
	}

	// validate service creation
	attendanceService := newAttendance(dm, fixedClock, nil)
	require.NotNil(t, attendanceService)

	return
}
