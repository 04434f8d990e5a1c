package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"hrmedrecords/internal/domain"
)

// selectMedicalRecord выбирает карту вместе с данными справочников.
const selectMedicalRecord = `
        SELECT mr.*,
               s.status_id AS "status.status_id",
               s.name AS "status.name",
               s.description AS "status.description",
               t.medical_record_type_id AS "medical_record_type.medical_record_type_id",
               t.name AS "medical_record_type.name",
               t.description AS "medical_record_type.description"
        FROM t_medical_record mr
        JOIN status s ON s.status_id = mr.status_id
        JOIN medical_record_type t ON t.medical_record_type_id = mr.medical_record_type_id`

type MedicalRecordRepository struct {
	db *sqlx.DB
}

func NewMedicalRecordRepository(db *sqlx.DB) *MedicalRecordRepository {
	return &MedicalRecordRepository{db: db}
}

// GetByID возвращает карту по идентификатору или nil, если записи нет.
func (r *MedicalRecordRepository) GetByID(ctx context.Context, medicalRecordID int) (*domain.MedicalRecord, error) {
	var record domain.MedicalRecord
	query := selectMedicalRecord + ` WHERE mr.medical_record_id = $1`

	err := r.db.GetContext(ctx, &record, query, medicalRecordID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get medical record: %w", err)
	}

	return &record, nil
}

// ExistsByFileID проверяет, зарегистрирована ли уже карта на указанное личное дело.
func (r *MedicalRecordRepository) ExistsByFileID(ctx context.Context, fileID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM t_medical_record WHERE file_id = $1)`

	if err := r.db.GetContext(ctx, &exists, query, fileID); err != nil {
		return false, fmt.Errorf("failed to check file id: %w", err)
	}

	return exists, nil
}

// Register вставляет новую карту, заполняет сгенерированный идентификатор
// и возвращает количество затронутых строк.
func (r *MedicalRecordRepository) Register(ctx context.Context, record *domain.MedicalRecord) (int64, error) {
	query := `
        INSERT INTO t_medical_record (
            file_id, diagnosis, audiometry, position_change, mother_data, father_data,
            other_family_data, execute_micros, execute_extra, voice_evaluation,
            disability, area_change, medical_board, observations, disability_percentage,
            start_date, end_date, creation_date, created_by, status_id, medical_record_type_id
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
        RETURNING medical_record_id`

	err := r.db.QueryRowContext(
		ctx,
		query,
		record.FileID,
		record.Diagnosis,
		record.Audiometry,
		record.PositionChange,
		record.MotherData,
		record.FatherData,
		record.OtherFamilyData,
		record.ExecuteMicros,
		record.ExecuteExtra,
		record.VoiceEvaluation,
		record.Disability,
		record.AreaChange,
		record.MedicalBoard,
		record.Observations,
		record.DisabilityPercentage,
		record.StartDate,
		record.EndDate,
		record.CreationDate,
		record.CreatedBy,
		record.StatusID,
		record.MedicalRecordTypeID,
	).Scan(&record.MedicalRecordID)
	if err != nil {
		return 0, fmt.Errorf("failed to register medical record: %w", err)
	}

	return 1, nil
}

// Update полностью перезаписывает карту по идентификатору и возвращает
// количество затронутых строк.
func (r *MedicalRecordRepository) Update(ctx context.Context, record *domain.MedicalRecord) (int64, error) {
	query := `
        UPDATE t_medical_record
        SET file_id = $1,
            diagnosis = $2,
            audiometry = $3,
            position_change = $4,
            mother_data = $5,
            father_data = $6,
            other_family_data = $7,
            execute_micros = $8,
            execute_extra = $9,
            voice_evaluation = $10,
            disability = $11,
            area_change = $12,
            medical_board = $13,
            observations = $14,
            disability_percentage = $15,
            start_date = $16,
            end_date = $17,
            modification_date = $18,
            modified_by = $19,
            deletion_date = $20,
            deleted_by = $21,
            deletion_reason = $22,
            status_id = $23,
            medical_record_type_id = $24
        WHERE medical_record_id = $25`

	res, err := r.db.ExecContext(
		ctx,
		query,
		record.FileID,
		record.Diagnosis,
		record.Audiometry,
		record.PositionChange,
		record.MotherData,
		record.FatherData,
		record.OtherFamilyData,
		record.ExecuteMicros,
		record.ExecuteExtra,
		record.VoiceEvaluation,
		record.Disability,
		record.AreaChange,
		record.MedicalBoard,
		record.Observations,
		record.DisabilityPercentage,
		record.StartDate,
		record.EndDate,
		record.ModificationDate,
		record.ModifiedBy,
		record.DeletionDate,
		record.DeletedBy,
		record.DeletionReason,
		record.StatusID,
		record.MedicalRecordTypeID,
		record.MedicalRecordID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update medical record: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows, nil
}

// GetAllWithFilter возвращает карты, удовлетворяющие всем переданным
// предикатам (условия объединяются по И). Порядок стабильный, по
// идентификатору; сортировка по колонке выполняется уровнем выше.
func (r *MedicalRecordRepository) GetAllWithFilter(ctx context.Context, filter domain.MedicalRecordFilter) ([]domain.MedicalRecord, error) {
	conditions := make([]string, 0, 5)
	args := make([]any, 0, 5)

	addCondition := func(expr string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(expr, len(args)))
	}

	if filter.FieldFilter != nil {
		addCondition("mr.file_id = $%d", *filter.FieldFilter)
	}
	if filter.StatusID != nil {
		addCondition("mr.status_id = $%d", *filter.StatusID)
	}
	if filter.MedicalRecordTypeID != nil {
		addCondition("mr.medical_record_type_id = $%d", *filter.MedicalRecordTypeID)
	}
	if filter.StartDate != nil {
		addCondition("mr.start_date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		addCondition("mr.end_date <= $%d", *filter.EndDate)
	}

	query := selectMedicalRecord
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY mr.medical_record_id"

	var records []domain.MedicalRecord
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("failed to filter medical records: %w", err)
	}

	return records, nil
}
