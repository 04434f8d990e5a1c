package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"hrmedrecords/internal/domain"
)

type MedicalRecordTypeRepository struct {
	db *sqlx.DB
}

func NewMedicalRecordTypeRepository(db *sqlx.DB) *MedicalRecordTypeRepository {
	return &MedicalRecordTypeRepository{db: db}
}

// GetByID возвращает тип карты по идентификатору или nil, если записи нет.
func (r *MedicalRecordTypeRepository) GetByID(ctx context.Context, typeID int) (*domain.MedicalRecordType, error) {
	var recordType domain.MedicalRecordType
	query := `SELECT medical_record_type_id, name, description FROM medical_record_type WHERE medical_record_type_id = $1`

	err := r.db.GetContext(ctx, &recordType, query, typeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get medical record type: %w", err)
	}

	return &recordType, nil
}

// ExistsByID проверяет наличие типа карты в справочнике.
func (r *MedicalRecordTypeRepository) ExistsByID(ctx context.Context, typeID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM medical_record_type WHERE medical_record_type_id = $1)`

	if err := r.db.GetContext(ctx, &exists, query, typeID); err != nil {
		return false, fmt.Errorf("failed to check medical record type: %w", err)
	}

	return exists, nil
}
