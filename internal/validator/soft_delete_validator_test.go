package validator

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrmedrecords/internal/apperrors"
	"hrmedrecords/internal/domain"
)

func newSoftDeleteValidator(records *mockRecordReader, statuses *mockStatusReader) *SoftDeleteValidator {
	v := NewSoftDeleteValidator(records, statuses)
	v.now = func() time.Time { return time.Date(2024, time.March, 15, 12, 30, 0, 0, time.UTC) }
	return v
}

func activeRecord(id int) *domain.MedicalRecord {
	return &domain.MedicalRecord{
		MedicalRecordID: id,
		StatusID:        1,
		StartDate:       timePtr(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func TestSoftDeleteValidator_Valid(t *testing.T) {
	records := &mockRecordReader{
		getByID: func(ctx context.Context, id int) (*domain.MedicalRecord, error) {
			return activeRecord(id), nil
		},
	}
	v := newSoftDeleteValidator(records, &mockStatusReader{})

	err := v.Validate(context.Background(), domain.SoftDeleteMedicalRecord{
		MedicalRecordID: 7,
		DeletionReason:  "employee left the company",
	})

	assert.NoError(t, err)
}

func TestSoftDeleteValidator_MissingID(t *testing.T) {
	v := newSoftDeleteValidator(&mockRecordReader{}, &mockStatusReader{})

	err := v.Validate(context.Background(), domain.SoftDeleteMedicalRecord{
		DeletionReason: "reason",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "MedicalRecordId is required")
}

func TestSoftDeleteValidator_RecordNotFound(t *testing.T) {
	records := &mockRecordReader{
		getByID: func(ctx context.Context, id int) (*domain.MedicalRecord, error) {
			return nil, nil
		},
	}
	v := newSoftDeleteValidator(records, &mockStatusReader{})

	err := v.Validate(context.Background(), domain.SoftDeleteMedicalRecord{
		MedicalRecordID: 404,
		DeletionReason:  "reason",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Medical Record not found with Id")
}

func TestSoftDeleteValidator_MissingReason(t *testing.T) {
	records := &mockRecordReader{
		getByID: func(ctx context.Context, id int) (*domain.MedicalRecord, error) {
			return activeRecord(id), nil
		},
	}
	v := newSoftDeleteValidator(records, &mockStatusReader{})

	err := v.Validate(context.Background(), domain.SoftDeleteMedicalRecord{MedicalRecordID: 7})

	require.Error(t, err)
	var badRequest *apperrors.BadRequestError
	require.ErrorAs(t, err, &badRequest)
	assert.Contains(t, err.Error(), "The 'DeletionReason' field is required")
}

func TestSoftDeleteValidator_ReasonTooLong(t *testing.T) {
	records := &mockRecordReader{
		getByID: func(ctx context.Context, id int) (*domain.MedicalRecord, error) {
			return activeRecord(id), nil
		},
	}
	v := newSoftDeleteValidator(records, &mockStatusReader{})

	err := v.Validate(context.Background(), domain.SoftDeleteMedicalRecord{
		MedicalRecordID: 7,
		DeletionReason:  strings.Repeat("r", 2001),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DELETION_REASON cannot exceed 2000 characters")
}

func TestSoftDeleteValidator_AlreadyInactive(t *testing.T) {
	// Повторное мягкое удаление не проходит валидацию
	records := &mockRecordReader{
		getByID: func(ctx context.Context, id int) (*domain.MedicalRecord, error) {
			record := activeRecord(id)
			record.StatusID = 2
			return record, nil
		},
	}
	v := newSoftDeleteValidator(records, &mockStatusReader{})

	err := v.Validate(context.Background(), domain.SoftDeleteMedicalRecord{
		MedicalRecordID: 7,
		DeletionReason:  "reason",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "The Medical Record must be active to delete and have a valid StartDate")
}

func TestSoftDeleteValidator_StartDateInFuture(t *testing.T) {
	records := &mockRecordReader{
		getByID: func(ctx context.Context, id int) (*domain.MedicalRecord, error) {
			record := activeRecord(id)
			record.StartDate = timePtr(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC))
			return record, nil
		},
	}
	v := newSoftDeleteValidator(records, &mockStatusReader{})

	err := v.Validate(context.Background(), domain.SoftDeleteMedicalRecord{
		MedicalRecordID: 7,
		DeletionReason:  "reason",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "The Medical Record must be active to delete and have a valid StartDate")
}
