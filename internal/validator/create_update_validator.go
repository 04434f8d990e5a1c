package validator

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"hrmedrecords/internal/apperrors"
	"hrmedrecords/internal/domain"
)

// MedicalRecordReader дает выборки по картам, нужные правилам валидации.
type MedicalRecordReader interface {
	GetByID(ctx context.Context, medicalRecordID int) (*domain.MedicalRecord, error)
	ExistsByFileID(ctx context.Context, fileID int) (bool, error)
}

// StatusReader дает выборки по справочнику статусов.
type StatusReader interface {
	ExistsByID(ctx context.Context, statusID int) (bool, error)
	GetByName(ctx context.Context, name string) (*domain.Status, error)
}

// MedicalRecordTypeReader дает выборки по справочнику типов карт.
type MedicalRecordTypeReader interface {
	ExistsByID(ctx context.Context, typeID int) (bool, error)
}

// CreateUpdateValidator проверяет запрос на создание или изменение карты.
// Проверки существования читают текущее состояние хранилища и не
// транзакционны с последующей записью.
type CreateUpdateValidator struct {
	records  MedicalRecordReader
	statuses StatusReader
	types    MedicalRecordTypeReader

	now func() time.Time
}

func NewCreateUpdateValidator(records MedicalRecordReader, statuses StatusReader, types MedicalRecordTypeReader) *CreateUpdateValidator {
	return &CreateUpdateValidator{
		records:  records,
		statuses: statuses,
		types:    types,
		now:      time.Now,
	}
}

// Validate собирает все нарушения правил в одно сообщение. Нарушения правил
// возвращаются как клиентская ошибка, сбои чтения хранилища отдаются без изменений.
func (v *CreateUpdateValidator) Validate(ctx context.Context, request domain.CreateUpdateMedicalRecord) error {
	var failures []string

	today := dateOnly(v.now().UTC())

	// Правила для дат
	if request.StartDate.IsZero() {
		failures = append(failures, "START_DATE is required")
	} else {
		startDate := dateOnly(request.StartDate)
		if startDate.After(today) {
			failures = append(failures, "START_DATE cannot be in the future")
		} else if !request.IsUpdate() && !startDate.Equal(today) {
			failures = append(failures, "START_DATE must be the current date")
		}
	}

	if request.EndDate != nil && !dateOnly(*request.EndDate).After(dateOnly(request.StartDate)) {
		failures = append(failures, "END_DATE must be later than START_DATE")
	}

	// Обязательные поля и проверки по хранилищу
	if request.FileID == 0 {
		failures = append(failures, "FILE_ID is required")
	} else if !request.IsUpdate() {
		taken, err := v.records.ExistsByFileID(ctx, request.FileID)
		if err != nil {
			return err
		}
		if taken {
			failures = append(failures, "FILE_ID already register")
		}
	}

	if request.IsUpdate() {
		record, err := v.records.GetByID(ctx, *request.MedicalRecordID)
		if err != nil {
			return err
		}
		if record == nil {
			failures = append(failures, "MEDICAL_RECORD_ID not found")
		}
	}

	if request.Diagnosis == "" {
		failures = append(failures, "DIAGNOSIS is required")
	} else if utf8.RuneCountInString(request.Diagnosis) > 100 {
		failures = append(failures, "DIAGNOSIS cannot exceed 100 characters")
	}

	if request.StatusID == 0 {
		failures = append(failures, "STATUS_ID is required")
	} else {
		exists, err := v.statuses.ExistsByID(ctx, request.StatusID)
		if err != nil {
			return err
		}
		if !exists {
			failures = append(failures, "STATUS_ID must exist in the Status table")
		}

		inactive, err := v.statuses.GetByName(ctx, domain.StatusInactive)
		if err != nil {
			return err
		}
		if inactive != nil && request.StatusID == inactive.StatusID {
			failures = append(failures, "Cannot assign status 'Inactive' when creating or modifying a record")
		}
	}

	if request.MedicalRecordTypeID == 0 {
		failures = append(failures, "MEDICAL_RECORD_TYPE_ID is required")
	} else {
		exists, err := v.types.ExistsByID(ctx, request.MedicalRecordTypeID)
		if err != nil {
			return err
		}
		if !exists {
			failures = append(failures, "MEDICAL_RECORD_TYPE_ID must exist in the MedicalRecordType table")
		}
	}

	// Ограничения длины свободного текста
	failures = appendMaxLength(failures, request.MotherData, 2000, "MOTHER_DATA")
	failures = appendMaxLength(failures, request.FatherData, 2000, "FATHER_DATA")
	failures = appendMaxLength(failures, request.OtherFamilyData, 2000, "OTHER_FAMILY_DATA")
	failures = appendMaxLength(failures, request.MedicalBoard, 200, "MEDICAL_BOARD")
	failures = appendMaxLength(failures, request.Observations, 2000, "OBSERVATIONS")

	// Поля со значениями 'Y'/'N'
	failures = appendYesOrNo(failures, request.Audiometry, "AUDIOMETRY")
	failures = appendYesOrNo(failures, request.PositionChange, "POSITION_CHANGE")
	failures = appendYesOrNo(failures, request.ExecuteMicros, "EXECUTE_MICROS")
	failures = appendYesOrNo(failures, request.ExecuteExtra, "EXECUTE_EXTRA")
	failures = appendYesOrNo(failures, request.VoiceEvaluation, "VOICE_EVALUATION")
	failures = appendYesOrNo(failures, request.Disability, "DISABILITY")
	failures = appendYesOrNo(failures, request.AreaChange, "AREA_CHANGE")

	if isAffirmative(request.PositionChange) && (request.Observations == nil || *request.Observations == "") {
		failures = append(failures, "OBSERVATIONS is required when POSITION_CHANGE is 'Y'")
	}

	if isAffirmative(request.Disability) {
		if request.DisabilityPercentage == nil || *request.DisabilityPercentage < 0 || *request.DisabilityPercentage > 100 {
			failures = append(failures, "DISABILITY_PERCENTAGE must be between 0 and 100 when DISABILITY is 'Y'")
		}
	}

	if len(failures) > 0 {
		return apperrors.NewBadRequest("Validation failed: %s", strings.Join(failures, ", "))
	}

	return nil
}

func appendMaxLength(failures []string, value *string, max int, field string) []string {
	if value != nil && utf8.RuneCountInString(*value) > max {
		failures = append(failures, fmt.Sprintf("%s cannot exceed %d characters", field, max))
	}
	return failures
}

// appendYesOrNo требует ровно 'Y' или 'N' без учета регистра;
// отсутствующее значение также считается нарушением.
func appendYesOrNo(failures []string, value *string, field string) []string {
	if !isYesOrNo(value) {
		failures = append(failures, fmt.Sprintf("%s must be 'Y' or 'N'", field))
	}
	return failures
}

func isYesOrNo(value *string) bool {
	if value == nil {
		return false
	}
	upper := strings.ToUpper(*value)
	return upper == "Y" || upper == "N"
}

func isAffirmative(value *string) bool {
	return value != nil && strings.ToUpper(*value) == "Y"
}

// dateOnly отбрасывает время, оставляя календарную дату в UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
