package validator

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"hrmedrecords/internal/apperrors"
	"hrmedrecords/internal/domain"
)

// SoftDeleteValidator проверяет запрос на мягкое удаление карты:
// запись существует, причина указана, запись активна и уже начата.
type SoftDeleteValidator struct {
	records  MedicalRecordReader
	statuses StatusReader

	now func() time.Time
}

func NewSoftDeleteValidator(records MedicalRecordReader, statuses StatusReader) *SoftDeleteValidator {
	return &SoftDeleteValidator{
		records:  records,
		statuses: statuses,
		now:      time.Now,
	}
}

// Validate собирает все нарушения правил в одно сообщение.
func (v *SoftDeleteValidator) Validate(ctx context.Context, request domain.SoftDeleteMedicalRecord) error {
	var failures []string

	var record *domain.MedicalRecord
	if request.MedicalRecordID == 0 {
		failures = append(failures, "MedicalRecordId is required")
	} else {
		var err error
		record, err = v.records.GetByID(ctx, request.MedicalRecordID)
		if err != nil {
			return err
		}
		if record == nil {
			failures = append(failures, "Medical Record not found with Id")
		}
	}

	if request.DeletionReason == "" {
		failures = append(failures, "The 'DeletionReason' field is required")
	} else if utf8.RuneCountInString(request.DeletionReason) > 2000 {
		failures = append(failures, "DELETION_REASON cannot exceed 2000 characters")
	}

	if record != nil {
		active, err := v.isActiveAndStarted(ctx, record)
		if err != nil {
			return err
		}
		if !active {
			failures = append(failures, "The Medical Record must be active to delete and have a valid StartDate")
		}
	}

	if len(failures) > 0 {
		return apperrors.NewBadRequest("Validation failed: %s", strings.Join(failures, ", "))
	}

	return nil
}

// isActiveAndStarted: запись не в статусе Inactive и ее StartDate не в будущем.
func (v *SoftDeleteValidator) isActiveAndStarted(ctx context.Context, record *domain.MedicalRecord) (bool, error) {
	inactive, err := v.statuses.GetByName(ctx, domain.StatusInactive)
	if err != nil {
		return false, err
	}

	if inactive != nil && record.StatusID == inactive.StatusID {
		return false, nil
	}

	if record.StartDate == nil {
		return false, nil
	}

	today := dateOnly(v.now().UTC())
	return !dateOnly(*record.StartDate).After(today), nil
}
