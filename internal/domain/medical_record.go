package domain

import "time"

// MedicalRecord представляет медицинскую карту сотрудника со ссылками на
// справочники статуса и типа карты. Запись никогда не удаляется физически:
// мягкое удаление переводит ее в статус Inactive и заполняет поля удаления.
type MedicalRecord struct {
	MedicalRecordID      int        `json:"medical_record_id" db:"medical_record_id"`
	FileID               int        `json:"file_id" db:"file_id"`
	Diagnosis            string     `json:"diagnosis" db:"diagnosis"`
	Audiometry           *string    `json:"audiometry" db:"audiometry"`
	PositionChange       *string    `json:"position_change" db:"position_change"`
	MotherData           *string    `json:"mother_data" db:"mother_data"`
	FatherData           *string    `json:"father_data" db:"father_data"`
	OtherFamilyData      *string    `json:"other_family_data" db:"other_family_data"`
	ExecuteMicros        *string    `json:"execute_micros" db:"execute_micros"`
	ExecuteExtra         *string    `json:"execute_extra" db:"execute_extra"`
	VoiceEvaluation      *string    `json:"voice_evaluation" db:"voice_evaluation"`
	Disability           *string    `json:"disability" db:"disability"`
	AreaChange           *string    `json:"area_change" db:"area_change"`
	MedicalBoard         *string    `json:"medical_board" db:"medical_board"`
	Observations         *string    `json:"observations" db:"observations"`
	DisabilityPercentage *float64   `json:"disability_percentage" db:"disability_percentage"`
	StartDate            *time.Time `json:"start_date" db:"start_date"`
	EndDate              *time.Time `json:"end_date" db:"end_date"`
	CreationDate         *time.Time `json:"creation_date" db:"creation_date"`
	CreatedBy            *string    `json:"created_by" db:"created_by"`
	ModificationDate     *time.Time `json:"modification_date" db:"modification_date"`
	ModifiedBy           *string    `json:"modified_by" db:"modified_by"`
	DeletionDate         *time.Time `json:"deletion_date" db:"deletion_date"`
	DeletedBy            *string    `json:"deleted_by" db:"deleted_by"`
	DeletionReason       *string    `json:"deletion_reason" db:"deletion_reason"`
	StatusID             int        `json:"status_id" db:"status_id"`
	MedicalRecordTypeID  int        `json:"medical_record_type_id" db:"medical_record_type_id"`

	Status            Status            `json:"status" db:"status"`
	MedicalRecordType MedicalRecordType `json:"medical_record_type" db:"medical_record_type"`
}
