package service

import (
	"fmt"
	"strconv"

	"hrmedrecords/internal/domain"
)

// fromCreateUpdateRequest переносит поля запроса в сущность карты.
// Метаданные жизненного цикла здесь не заполняются.
func fromCreateUpdateRequest(request domain.CreateUpdateMedicalRecord) domain.MedicalRecord {
	startDate := request.StartDate

	return domain.MedicalRecord{
		FileID:               request.FileID,
		Diagnosis:            request.Diagnosis,
		Audiometry:           request.Audiometry,
		PositionChange:       request.PositionChange,
		MotherData:           request.MotherData,
		FatherData:           request.FatherData,
		OtherFamilyData:      request.OtherFamilyData,
		ExecuteMicros:        request.ExecuteMicros,
		ExecuteExtra:         request.ExecuteExtra,
		VoiceEvaluation:      request.VoiceEvaluation,
		Disability:           request.Disability,
		AreaChange:           request.AreaChange,
		MedicalBoard:         request.MedicalBoard,
		Observations:         request.Observations,
		DisabilityPercentage: request.DisabilityPercentage,
		StartDate:            &startDate,
		EndDate:              request.EndDate,
		StatusID:             request.StatusID,
		MedicalRecordTypeID:  request.MedicalRecordTypeID,
	}
}

// toMedicalRecordDTO собирает полное клиентское представление карты,
// включая данные справочников и вычисляемые поля.
func toMedicalRecordDTO(record domain.MedicalRecord) domain.MedicalRecordDTO {
	return domain.MedicalRecordDTO{
		MedicalRecordID:      record.MedicalRecordID,
		FileID:               record.FileID,
		Diagnosis:            record.Diagnosis,
		Audiometry:           record.Audiometry,
		PositionChange:       record.PositionChange,
		MotherData:           record.MotherData,
		FatherData:           record.FatherData,
		OtherFamilyData:      record.OtherFamilyData,
		ExecuteMicros:        record.ExecuteMicros,
		ExecuteExtra:         record.ExecuteExtra,
		VoiceEvaluation:      record.VoiceEvaluation,
		Disability:           record.Disability,
		AreaChange:           record.AreaChange,
		MedicalBoard:         record.MedicalBoard,
		Observations:         record.Observations,
		DisabilityPercentage: record.DisabilityPercentage,
		StartDate:            record.StartDate,
		EndDate:              record.EndDate,
		CreationDate:         record.CreationDate,
		CreatedBy:            record.CreatedBy,
		ModificationDate:     record.ModificationDate,
		ModifiedBy:           record.ModifiedBy,
		IsDeleted:            record.DeletionDate != nil,
		DeletionDate:         record.DeletionDate,
		DeletedBy:            record.DeletedBy,
		DeletionReason:       record.DeletionReason,

		StatusID:                     record.StatusID,
		Status:                       record.Status.Name,
		StatusDescription:            record.Status.Description,
		MedicalRecordTypeID:          record.MedicalRecordTypeID,
		MedicalRecordType:            record.MedicalRecordType.Name,
		MedicalRecordTypeDescription: record.MedicalRecordType.Description,

		Summary: summary(record),
	}
}

func toSimpleMedicalRecordDTO(record domain.MedicalRecord) domain.SimpleMedicalRecordDTO {
	return domain.SimpleMedicalRecordDTO{
		MedicalRecordID:      record.MedicalRecordID,
		Diagnosis:            record.Diagnosis,
		Disability:           record.Disability,
		DisabilityPercentage: record.DisabilityPercentage,
		StartDate:            record.StartDate,
		EndDate:              record.EndDate,
	}
}

// summary строит краткую сводку вида "Тип - Статус (N% Disability)".
func summary(record domain.MedicalRecord) string {
	percentage := "0"
	if record.DisabilityPercentage != nil {
		percentage = strconv.FormatFloat(*record.DisabilityPercentage, 'f', -1, 64)
	}

	return fmt.Sprintf("%s - %s (%s%% Disability)",
		record.MedicalRecordType.Description,
		record.Status.Description,
		percentage,
	)
}
