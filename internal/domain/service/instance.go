package service

import (
	"time"

	"github.com/diegoclair/hybrid-attendance-bot/internal/config"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/contract"
	"go.uber.org/zap"
)

type Instance struct {
	Attendance *attendanceService
	// Reminder is nil when no reminder channel is configured
	Reminder *reminder
}

func NewInstance(cfg *config.Config, dm contract.DataManager, slackClient contract.SlackClient, log *zap.Logger) (*Instance, error) {
	instance := &Instance{
		Attendance: newAttendance(dm, time.Now, log),
	}

	if cfg.RemindersEnabled() {
		r, err := newReminder(slackClient, cfg.ReminderChannelID, cfg.ReminderTime, time.Now, log)
		if err != nil {
			return nil, err
		}
		instance.Reminder = r
	}

	return instance, nil
}

// NewAttendance returns an attendance service on its own, reading the date
// from now. Used by hosts that only edit and report, like the CLI.
func NewAttendance(dm contract.DataManager, now func() time.Time, log *zap.Logger) contract.AttendanceService {
	return newAttendance(dm, now, log)
}
