package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/hybrid-attendance-bot/internal/domain"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/contract"
	"github.com/diegoclair/hybrid-attendance-bot/internal/metrics"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// reminder posts the daily "where did you work" prompt on workdays.
type reminder struct {
	slackClient contract.SlackClient
	channelID   string
	hour        int
	minute      int
	now         func() time.Time
	log         *zap.Logger

	mu       sync.Mutex
	stopChan chan struct{}
	running  bool
}

func newReminder(slackClient contract.SlackClient, channelID, notificationTime string, now func() time.Time, log *zap.Logger) (*reminder, error) {
	at, err := time.Parse("15:04", notificationTime)
	if err != nil {
		return nil, fmt.Errorf("invalid reminder time %q, use HH:MM (24-hour format): %w", notificationTime, err)
	}
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &reminder{
		slackClient: slackClient,
		channelID:   channelID,
		hour:        at.Hour(),
		minute:      at.Minute(),
		now:         now,
		log:         log.Named("reminder"),
	}, nil
}

func (r *reminder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return
	}
	r.running = true
	r.stopChan = make(chan struct{})
	r.log.Info("Reminder starting", zap.String("channel_id", r.channelID))
	go r.mainLoop(r.stopChan)
}

func (r *reminder) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}
	r.log.Info("Reminder stopping")
	close(r.stopChan)
	r.running = false
}

func (r *reminder) mainLoop(stop <-chan struct{}) {
	for {
		nextTime := r.nextReminder(r.now())
		r.log.Info("Next reminder scheduled", zap.Time("at", nextTime))

		timer := time.NewTimer(nextTime.Sub(r.now()))
		select {
		case <-timer.C:
			if err := r.send(); err != nil {
				r.log.Error("Failed to send reminder", zap.Error(err))
			}
		case <-stop:
			timer.Stop()
			return
		}
	}
}

// nextReminder returns the first workday reminder strictly after now, in
// now's location.
func (r *reminder) nextReminder(now time.Time) time.Time {
	activeDays := make(map[int]bool, len(domain.Workdays))
	for _, day := range domain.Workdays {
		activeDays[day] = true
	}

	// Try today first
	today := time.Date(now.Year(), now.Month(), now.Day(), r.hour, r.minute, 0, 0, now.Location())
	if activeDays[isoWeekday(today)] && today.After(now) {
		return today
	}

	// A workday is always at most 3 days away
	for i := 1; i <= 7; i++ {
		nextDay := time.Date(now.Year(), now.Month(), now.Day()+i, r.hour, r.minute, 0, 0, now.Location())
		if activeDays[isoWeekday(nextDay)] {
			return nextDay
		}
	}

	return time.Time{}
}

func (r *reminder) send() error {
	_, _, err := r.slackClient.PostMessage(
		r.channelID,
		slack.MsgOptionText(domain.DefaultReminderText, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		metrics.RemindersTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	metrics.RemindersTotal.WithLabelValues("sent").Inc()
	r.log.Info("Reminder sent", zap.String("channel_id", r.channelID))
	return nil
}

func isoWeekday(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday = 0 in Go, but we want 7 for ISO 8601
		weekday = domain.Sunday
	}
	return weekday
}
