package domain

import (
	"time"

	"hrmedrecords/internal/sorting"
)

// MedicalRecordFilter задает параметры выборки списка карт. Все предикаты
// необязательны и объединяются по И. FieldFilter фильтрует по FileID.
type MedicalRecordFilter struct {
	sorting.BaseFilter

	StatusID            *int       `json:"status_id"`
	StartDate           *time.Time `json:"start_date"`
	EndDate             *time.Time `json:"end_date"`
	MedicalRecordTypeID *int       `json:"medical_record_type_id"`
	FieldFilter         *int       `json:"field_filter"`
}

// MedicalRecordResolver возвращает доступы к сортируемым полям карты.
// Порядок регистрации повторяет порядок объявления полей MedicalRecord;
// поля справочников доступны вторым уровнем (например, Name статуса).
func MedicalRecordResolver() *sorting.Resolver[MedicalRecord] {
	statusResolver := sorting.NewResolver(
		sorting.IntField("StatusId", func(s Status) int { return s.StatusID }),
		sorting.StringField("Name", func(s Status) string { return s.Name }),
		sorting.StringField("Description", func(s Status) string { return s.Description }),
	)

	typeResolver := sorting.NewResolver(
		sorting.IntField("MedicalRecordTypeId", func(t MedicalRecordType) int { return t.MedicalRecordTypeID }),
		sorting.StringField("Name", func(t MedicalRecordType) string { return t.Name }),
		sorting.StringField("Description", func(t MedicalRecordType) string { return t.Description }),
	)

	return sorting.NewResolver(
		sorting.IntField("MedicalRecordId", func(m MedicalRecord) int { return m.MedicalRecordID }),
		sorting.IntField("FileId", func(m MedicalRecord) int { return m.FileID }),
		sorting.StringField("Diagnosis", func(m MedicalRecord) string { return m.Diagnosis }),
		sorting.StringPtrField("Audiometry", func(m MedicalRecord) *string { return m.Audiometry }),
		sorting.StringPtrField("PositionChange", func(m MedicalRecord) *string { return m.PositionChange }),
		sorting.StringPtrField("MotherData", func(m MedicalRecord) *string { return m.MotherData }),
		sorting.StringPtrField("FatherData", func(m MedicalRecord) *string { return m.FatherData }),
		sorting.StringPtrField("OtherFamilyData", func(m MedicalRecord) *string { return m.OtherFamilyData }),
		sorting.StringPtrField("ExecuteMicros", func(m MedicalRecord) *string { return m.ExecuteMicros }),
		sorting.StringPtrField("ExecuteExtra", func(m MedicalRecord) *string { return m.ExecuteExtra }),
		sorting.StringPtrField("VoiceEvaluation", func(m MedicalRecord) *string { return m.VoiceEvaluation }),
		sorting.StringPtrField("Disability", func(m MedicalRecord) *string { return m.Disability }),
		sorting.StringPtrField("AreaChange", func(m MedicalRecord) *string { return m.AreaChange }),
		sorting.StringPtrField("MedicalBoard", func(m MedicalRecord) *string { return m.MedicalBoard }),
		sorting.StringPtrField("Observations", func(m MedicalRecord) *string { return m.Observations }),
		sorting.Float64PtrField("DisabilityPercentage", func(m MedicalRecord) *float64 { return m.DisabilityPercentage }),
		sorting.TimePtrField("StartDate", func(m MedicalRecord) *time.Time { return m.StartDate }),
		sorting.TimePtrField("EndDate", func(m MedicalRecord) *time.Time { return m.EndDate }),
		sorting.TimePtrField("CreationDate", func(m MedicalRecord) *time.Time { return m.CreationDate }),
		sorting.StringPtrField("CreatedBy", func(m MedicalRecord) *string { return m.CreatedBy }),
		sorting.TimePtrField("ModificationDate", func(m MedicalRecord) *time.Time { return m.ModificationDate }),
		sorting.StringPtrField("ModifiedBy", func(m MedicalRecord) *string { return m.ModifiedBy }),
		sorting.TimePtrField("DeletionDate", func(m MedicalRecord) *time.Time { return m.DeletionDate }),
		sorting.StringPtrField("DeletedBy", func(m MedicalRecord) *string { return m.DeletedBy }),
		sorting.StringPtrField("DeletionReason", func(m MedicalRecord) *string { return m.DeletionReason }),
		sorting.IntField("StatusId", func(m MedicalRecord) int { return m.StatusID }),
		sorting.IntField("MedicalRecordTypeId", func(m MedicalRecord) int { return m.MedicalRecordTypeID }),
		sorting.Nested("Status", func(m MedicalRecord) Status { return m.Status }, statusResolver),
		sorting.Nested("MedicalRecordType", func(m MedicalRecord) MedicalRecordType { return m.MedicalRecordType }, typeResolver),
	)
}
