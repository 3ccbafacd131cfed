package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/hybrid-attendance-bot/internal/domain"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/compliance"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/contract"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/entity"
	"github.com/diegoclair/hybrid-attendance-bot/internal/metrics"
	"go.uber.org/zap"
)

var (
	ErrUserRequired    = errors.New("user id is required")
	ErrInvalidCategory = errors.New("invalid work category, use on-campus, remote or out-of-office")
	ErrWeekendDay      = errors.New("weekends are not tracked")
	ErrMarkNotFound    = errors.New("no attendance marked for that day")
)

type attendanceService struct {
	dm  contract.DataManager
	now func() time.Time
	log *zap.Logger
}

func newAttendance(dm contract.DataManager, now func() time.Time, log *zap.Logger) *attendanceService {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &attendanceService{
		dm:  dm,
		now: now,
		log: log.Named("attendance"),
	}
}

// MarkDay records where userID worked on dateKey, overwriting any earlier
// mark of that day. An empty dateKey means today.
func (s *attendanceService) MarkDay(ctx context.Context, userID, dateKey string, category entity.WorkCategory) (*entity.AttendanceEntry, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrUserRequired
	}

	if !category.IsKnown() {
		return nil, ErrInvalidCategory
	}

	day, err := s.resolveDay(dateKey)
	if err != nil {
		return nil, err
	}

	if wd := isoWeekday(day); wd >= domain.Saturday {
		return nil, fmt.Errorf("%w: %s is a %s", ErrWeekendDay, compliance.EncodeDateKey(day), domain.WeekdayNames[wd])
	}

	entry := &entity.AttendanceEntry{
		UserID:    userID,
		DateKey:   compliance.EncodeDateKey(day),
		Category:  category,
		UpdatedAt: s.now().UTC(),
	}

	if err := s.dm.Attendance().Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to mark day: %w", err)
	}

	metrics.MarksTotal.WithLabelValues(category.String()).Inc()
	s.log.Debug("Day marked",
		zap.String("user_id", userID),
		zap.String("date", entry.DateKey),
		zap.Stringer("category", category))

	return entry, nil
}

// ClearDay removes the mark of dateKey; the day counts as remote again.
func (s *attendanceService) ClearDay(ctx context.Context, userID, dateKey string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrUserRequired
	}

	day, err := s.resolveDay(dateKey)
	if err != nil {
		return err
	}

	key := compliance.EncodeDateKey(day)
	deleted, err := s.dm.Attendance().Delete(ctx, userID, key)
	if err != nil {
		return fmt.Errorf("failed to clear day: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: %s", ErrMarkNotFound, key)
	}

	metrics.ClearsTotal.Inc()
	s.log.Debug("Day cleared", zap.String("user_id", userID), zap.String("date", key))

	return nil
}

func (s *attendanceService) GetLog(ctx context.Context, userID string) (entity.AttendanceLog, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrUserRequired
	}

	log, err := s.dm.Attendance().GetLog(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance log: %w", err)
	}

	return log, nil
}

// GetReport scores the user's log against the trailing window ending today.
func (s *attendanceService) GetReport(ctx context.Context, userID string) (*entity.Report, error) {
	log, err := s.GetLog(ctx, userID)
	if err != nil {
		return nil, err
	}

	report, err := compliance.Report(log, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	metrics.ReportsTotal.WithLabelValues(string(report.Band)).Inc()
	metrics.BeltScore.Observe(float64(report.Belt))
	s.log.Debug("Report generated",
		zap.String("user_id", userID),
		zap.Int("belt", report.Belt),
		zap.String("band", string(report.Band)))

	return report, nil
}

func (s *attendanceService) resolveDay(dateKey string) (time.Time, error) {
	now := s.now()
	if strings.TrimSpace(dateKey) == "" {
		return now, nil
	}
	return compliance.ParseDateKey(dateKey, now.Location())
}
