package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/contract"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/entity"
)

type attendanceRepo struct {
	db dbConn
}

func newAttendanceRepo(db dbConn) contract.AttendanceRepo {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Upsert(ctx context.Context, entry *entity.AttendanceEntry) error {
	query := `
		INSERT INTO attendance (user_id, date_key, category, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, date_key) DO UPDATE SET
			category = excluded.category,
			updated_at = excluded.updated_at
	`

	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, query,
		entry.UserID,
		entry.DateKey,
		entry.Category.String(),
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return nil
}

func (r *attendanceRepo) Get(ctx context.Context, userID, dateKey string) (*entity.AttendanceEntry, error) {
	query := `
		SELECT user_id, date_key, category, updated_at
		FROM attendance
		WHERE user_id = ? AND date_key = ?
	`

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, userID, dateKey))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	return entry, nil
}

func (r *attendanceRepo) Delete(ctx context.Context, userID, dateKey string) (bool, error) {
	query := `DELETE FROM attendance WHERE user_id = ? AND date_key = ?`

	result, err := r.db.ExecContext(ctx, query, userID, dateKey)
	if err != nil {
		return false, fmt.Errorf("failed to delete attendance: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *attendanceRepo) GetByUser(ctx context.Context, userID string) ([]*entity.AttendanceEntry, error) {
	query := `
		SELECT user_id, date_key, category, updated_at
		FROM attendance
		WHERE user_id = ?
		ORDER BY date_key ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	defer rows.Close()

	var entries []*entity.AttendanceEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return entries, nil
}

func (r *attendanceRepo) GetLog(ctx context.Context, userID string) (entity.AttendanceLog, error) {
	entries, err := r.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	log := make(entity.AttendanceLog, len(entries))
	for _, entry := range entries {
		log[entry.DateKey] = entry.Category
	}

	return log, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanEntry never rejects a stored category: unrecognized values load as
// entity.CategoryUnknown.
func scanEntry(row rowScanner) (*entity.AttendanceEntry, error) {
	entry := &entity.AttendanceEntry{}
	var category string

	err := row.Scan(
		&entry.UserID,
		&entry.DateKey,
		&category,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Category = entity.WorkCategoryFromValue(category)
	return entry, nil
}
