package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"hrmedrecords/internal/domain"
)

type StatusRepository struct {
	db *sqlx.DB
}

func NewStatusRepository(db *sqlx.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// GetByID возвращает статус по идентификатору или nil, если записи нет.
func (r *StatusRepository) GetByID(ctx context.Context, statusID int) (*domain.Status, error) {
	var status domain.Status
	query := `SELECT status_id, name, description FROM status WHERE status_id = $1`

	err := r.db.GetContext(ctx, &status, query, statusID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	return &status, nil
}

// GetByName возвращает статус по имени. Сравнение чувствительно к регистру.
func (r *StatusRepository) GetByName(ctx context.Context, name string) (*domain.Status, error) {
	var status domain.Status
	query := `SELECT status_id, name, description FROM status WHERE name = $1`

	err := r.db.GetContext(ctx, &status, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get status by name: %w", err)
	}

	return &status, nil
}

// ExistsByID проверяет наличие статуса в справочнике.
func (r *StatusRepository) ExistsByID(ctx context.Context, statusID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM status WHERE status_id = $1)`

	if err := r.db.GetContext(ctx, &exists, query, statusID); err != nil {
		return false, fmt.Errorf("failed to check status: %w", err)
	}

	return exists, nil
}
