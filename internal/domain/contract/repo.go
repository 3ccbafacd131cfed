package contract

import (
	"context"

	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Attendance() AttendanceRepo
}

// AttendanceRepo defines the contract for the attendance log repository
type AttendanceRepo interface {
	Upsert(ctx context.Context, entry *entity.AttendanceEntry) error
	Get(ctx context.Context, userID, dateKey string) (*entity.AttendanceEntry, error)
	Delete(ctx context.Context, userID, dateKey string) (bool, error)
	GetByUser(ctx context.Context, userID string) ([]*entity.AttendanceEntry, error)
	GetLog(ctx context.Context, userID string) (entity.AttendanceLog, error)
}
