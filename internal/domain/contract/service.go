package contract

import (
	"context"

	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/entity"
)

type AttendanceService interface {
	MarkDay(ctx context.Context, userID, dateKey string, category entity.WorkCategory) (*entity.AttendanceEntry, error)
	ClearDay(ctx context.Context, userID, dateKey string) error
	GetLog(ctx context.Context, userID string) (entity.AttendanceLog, error)
	GetReport(ctx context.Context, userID string) (*entity.Report, error)
}
