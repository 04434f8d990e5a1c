package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hrmedrecords/internal/apperrors"
	"hrmedrecords/internal/domain"
	"hrmedrecords/internal/response"
	"hrmedrecords/internal/sorting"
)

// MedicalRecordRepository перечисляет операции хранилища, нужные сервису.
type MedicalRecordRepository interface {
	GetByID(ctx context.Context, medicalRecordID int) (*domain.MedicalRecord, error)
	Register(ctx context.Context, record *domain.MedicalRecord) (int64, error)
	Update(ctx context.Context, record *domain.MedicalRecord) (int64, error)
	GetAllWithFilter(ctx context.Context, filter domain.MedicalRecordFilter) ([]domain.MedicalRecord, error)
}

// StatusRepository читает справочник статусов.
type StatusRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Status, error)
}

// CreateUpdateValidator проверяет запрос на создание или изменение.
type CreateUpdateValidator interface {
	Validate(ctx context.Context, request domain.CreateUpdateMedicalRecord) error
}

// SoftDeleteValidator проверяет запрос на мягкое удаление.
type SoftDeleteValidator interface {
	Validate(ctx context.Context, request domain.SoftDeleteMedicalRecord) error
}

// MedicalRecordService связывает валидацию, хранилище и проставление
// метаданных жизненного цикла карты. Валидаторы подбираются вызывающей
// стороной и передаются явно, без динамического поиска по типу.
type MedicalRecordService struct {
	records  MedicalRecordRepository
	statuses StatusRepository

	createUpdate CreateUpdateValidator
	softDelete   SoftDeleteValidator

	resolver *sorting.Resolver[domain.MedicalRecord]
	log      zerolog.Logger
	now      func() time.Time
}

func NewMedicalRecordService(
	records MedicalRecordRepository,
	statuses StatusRepository,
	createUpdate CreateUpdateValidator,
	softDelete SoftDeleteValidator,
	log zerolog.Logger,
) *MedicalRecordService {
	return &MedicalRecordService{
		records:      records,
		statuses:     statuses,
		createUpdate: createUpdate,
		softDelete:   softDelete,
		resolver:     domain.MedicalRecordResolver(),
		log:          log,
		now:          time.Now,
	}
}

// GetMedicalRecordByID возвращает полную карту по идентификатору.
func (s *MedicalRecordService) GetMedicalRecordByID(ctx context.Context, medicalRecordID int) (*response.BaseResponse[domain.MedicalRecordDTO], error) {
	record, err := s.records.GetByID(ctx, medicalRecordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperrors.NewNotFound("Medical Record not found with Id:%d", medicalRecordID)
	}

	return response.Retrieved(toMedicalRecordDTO(*record), 1), nil
}

// AddUpdateMedicalRecord создает новую карту либо изменяет существующую,
// в зависимости от наличия MedicalRecordID в запросе. Поля created/modified
// заполняются из контекста вызова, а не из тела запроса.
func (s *MedicalRecordService) AddUpdateMedicalRecord(ctx context.Context, request domain.CreateUpdateMedicalRecord, userID uuid.UUID) (*response.BaseResponse[domain.SimpleMedicalRecordDTO], error) {
	if err := s.createUpdate.Validate(ctx, request); err != nil {
		return nil, err
	}

	record := fromCreateUpdateRequest(request)
	stamp := userID.String()
	today := dateOnly(s.now().UTC())

	if !request.IsUpdate() {
		record.CreatedBy = &stamp
		record.CreationDate = &today

		rows, err := s.records.Register(ctx, &record)
		if err != nil {
			return nil, err
		}

		return response.Created(toSimpleMedicalRecordDTO(record), int(rows)), nil
	}

	record.MedicalRecordID = *request.MedicalRecordID
	record.ModifiedBy = &stamp
	record.ModificationDate = &today

	rows, err := s.records.Update(ctx, &record)
	if err != nil {
		return nil, err
	}

	return response.Updated(toSimpleMedicalRecordDTO(record), int(rows)), nil
}

// DeleteMedicalRecord мягко удаляет карту: заполняет поля удаления и
// переводит запись в статус Inactive. Строка из хранилища не удаляется.
func (s *MedicalRecordService) DeleteMedicalRecord(ctx context.Context, request domain.SoftDeleteMedicalRecord, userID uuid.UUID) (*response.BaseResponse[domain.SimpleMedicalRecordDTO], error) {
	if err := s.softDelete.Validate(ctx, request); err != nil {
		return nil, err
	}

	record, err := s.records.GetByID(ctx, request.MedicalRecordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperrors.NewNotFound("Medical Record not found with Id:%d", request.MedicalRecordID)
	}

	inactive, err := s.statuses.GetByName(ctx, domain.StatusInactive)
	if err != nil {
		return nil, err
	}
	if inactive == nil {
		return nil, fmt.Errorf("status %q is missing from the status table", domain.StatusInactive)
	}

	stamp := userID.String()
	today := dateOnly(s.now().UTC())

	record.EndDate = &today
	record.DeletionDate = &today
	record.DeletionReason = &request.DeletionReason
	record.DeletedBy = &stamp
	record.StatusID = inactive.StatusID
	record.Status = *inactive

	rows, err := s.records.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	return response.SoftDeleted(toSimpleMedicalRecordDTO(*record), int(rows)), nil
}

// GetFilterMedicalRecords возвращает страницу карт по фильтру вместе с
// общим количеством найденных записей до пагинации.
func (s *MedicalRecordService) GetFilterMedicalRecords(ctx context.Context, filter domain.MedicalRecordFilter) (*response.BaseResponse[domain.PaginationDTO[domain.MedicalRecordDTO]], error) {
	records, err := s.records.GetAllWithFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		s.logFiltersAsWarning(filter)
		return nil, apperrors.NewNotFound("Medicals Records not found")
	}

	totalRegisters := len(records)

	page := sorting.Apply(records, s.resolver, filter.BaseFilter, true)

	items := make([]domain.MedicalRecordDTO, 0, len(page))
	for _, record := range page {
		items = append(items, toMedicalRecordDTO(record))
	}

	result := domain.PaginationDTO[domain.MedicalRecordDTO]{
		TotalRegisters: totalRegisters,
		Items:          items,
	}

	return response.Retrieved(result, totalRegisters), nil
}

// logFiltersAsWarning пишет в лог параметры фильтра, по которым ничего
// не нашлось.
func (s *MedicalRecordService) logFiltersAsWarning(filter domain.MedicalRecordFilter) {
	event := s.log.Warn().Str("column_filter", filter.ColumnFilter)

	if filter.StatusID != nil {
		event = event.Int("status_id", *filter.StatusID)
	}
	if filter.MedicalRecordTypeID != nil {
		event = event.Int("medical_record_type_id", *filter.MedicalRecordTypeID)
	}
	if filter.FieldFilter != nil {
		event = event.Int("field_filter", *filter.FieldFilter)
	}
	if filter.StartDate != nil {
		event = event.Time("start_date", *filter.StartDate)
	}
	if filter.EndDate != nil {
		event = event.Time("end_date", *filter.EndDate)
	}

	event.Msg("No medical records found with the provided filters")
}

// dateOnly отбрасывает время, оставляя календарную дату в UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
