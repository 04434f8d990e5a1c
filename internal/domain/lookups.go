package domain

// StatusInactive задает имя статуса, которым помечаются мягко удаленные записи.
// Идентификатор статуса всегда ищется по имени, а не зашивается в код.
const StatusInactive = "Inactive"

// Status представляет запись справочника статусов медицинской карты.
type Status struct {
	StatusID    int    `json:"status_id" db:"status_id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

// MedicalRecordType представляет запись справочника типов медицинской карты.
type MedicalRecordType struct {
	MedicalRecordTypeID int    `json:"medical_record_type_id" db:"medical_record_type_id"`
	Name                string `json:"name" db:"name"`
	Description         string `json:"description" db:"description"`
}
