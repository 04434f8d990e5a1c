package domain

import "time"

// CreateUpdateMedicalRecord представляет тело запроса на создание или изменение карты.
// Заполненный MedicalRecordID означает режим изменения существующей записи.
type CreateUpdateMedicalRecord struct {
	MedicalRecordID      *int       `json:"medical_record_id"`
	FileID               int        `json:"file_id"`
	Diagnosis            string     `json:"diagnosis"`
	Audiometry           *string    `json:"audiometry"`
	PositionChange       *string    `json:"position_change"`
	MotherData           *string    `json:"mother_data"`
	FatherData           *string    `json:"father_data"`
	OtherFamilyData      *string    `json:"other_family_data"`
	ExecuteMicros        *string    `json:"execute_micros"`
	ExecuteExtra         *string    `json:"execute_extra"`
	VoiceEvaluation      *string    `json:"voice_evaluation"`
	Disability           *string    `json:"disability"`
	AreaChange           *string    `json:"area_change"`
	MedicalBoard         *string    `json:"medical_board"`
	Observations         *string    `json:"observations"`
	DisabilityPercentage *float64   `json:"disability_percentage"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
	StatusID             int        `json:"status_id"`
	MedicalRecordTypeID  int        `json:"medical_record_type_id"`
}

// IsUpdate сообщает, что запрос изменяет существующую запись.
func (r CreateUpdateMedicalRecord) IsUpdate() bool {
	return r.MedicalRecordID != nil
}

// SoftDeleteMedicalRecord представляет тело запроса на мягкое удаление карты.
type SoftDeleteMedicalRecord struct {
	MedicalRecordID int    `json:"medical_record_id"`
	DeletionReason  string `json:"deletion_reason"`
}
