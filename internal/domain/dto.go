package domain

import "time"

// MedicalRecordDTO дает полное представление карты для клиента, включая
// данные справочников и метаданные изменений/удаления.
type MedicalRecordDTO struct {
	MedicalRecordID      int        `json:"medical_record_id"`
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
	StartDate            *time.Time `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
	CreationDate         *time.Time `json:"creation_date"`
	CreatedBy            *string    `json:"created_by"`
	ModificationDate     *time.Time `json:"modification_date"`
	ModifiedBy           *string    `json:"modified_by"`
	IsDeleted            bool       `json:"is_deleted"`
	DeletionDate         *time.Time `json:"deletion_date"`
	DeletedBy            *string    `json:"deleted_by"`
	DeletionReason       *string    `json:"deletion_reason"`

	StatusID                     int    `json:"status_id"`
	Status                       string `json:"status"`
	StatusDescription            string `json:"status_description"`
	MedicalRecordTypeID          int    `json:"medical_record_type_id"`
	MedicalRecordType            string `json:"medical_record_type"`
	MedicalRecordTypeDescription string `json:"medical_record_type_description"`

	// Summary содержит краткую сводку по типу, статусу и проценту инвалидности.
	Summary string `json:"summary"`
}

// SimpleMedicalRecordDTO дает сокращенное представление карты, возвращается
// из операций создания, изменения и мягкого удаления.
type SimpleMedicalRecordDTO struct {
	MedicalRecordID      int        `json:"medical_record_id"`
	Diagnosis            string     `json:"diagnosis"`
	Disability           *string    `json:"disability"`
	DisabilityPercentage *float64   `json:"disability_percentage"`
	StartDate            *time.Time `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
}

// PaginationDTO содержит страницу результатов вместе с общим количеством записей
// до применения пагинации.
type PaginationDTO[T any] struct {
	TotalRegisters int `json:"total_registers"`
	Items          []T `json:"items"`
}
