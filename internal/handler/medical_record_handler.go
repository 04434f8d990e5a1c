package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hrmedrecords/internal/apperrors"
	"hrmedrecords/internal/domain"
	"hrmedrecords/internal/response"
	"hrmedrecords/internal/sorting"
)

const userIDHeader = "x-user-id"

// dateLayout задает формат дат в параметрах запроса.
const dateLayout = "2006-01-02"

// MedicalRecordService перечисляет операции сервиса, доступные по HTTP.
type MedicalRecordService interface {
	GetMedicalRecordByID(ctx context.Context, medicalRecordID int) (*response.BaseResponse[domain.MedicalRecordDTO], error)
	AddUpdateMedicalRecord(ctx context.Context, request domain.CreateUpdateMedicalRecord, userID uuid.UUID) (*response.BaseResponse[domain.SimpleMedicalRecordDTO], error)
	DeleteMedicalRecord(ctx context.Context, request domain.SoftDeleteMedicalRecord, userID uuid.UUID) (*response.BaseResponse[domain.SimpleMedicalRecordDTO], error)
	GetFilterMedicalRecords(ctx context.Context, filter domain.MedicalRecordFilter) (*response.BaseResponse[domain.PaginationDTO[domain.MedicalRecordDTO]], error)
}

type MedicalRecordHandler struct {
	service MedicalRecordService
	log     zerolog.Logger
}

func NewMedicalRecordHandler(service MedicalRecordService, log zerolog.Logger) *MedicalRecordHandler {
	return &MedicalRecordHandler{service: service, log: log}
}

// Routes регистрирует маршруты карт на переданном роутере.
func (h *MedicalRecordHandler) Routes(r chi.Router) {
	r.Get("/filter", h.GetFilterMedicalRecords)
	r.Get("/{medicalRecordId}", h.GetMedicalRecordByID)
	r.Post("/register", h.AddMedicalRecord)
	r.Put("/update", h.UpdateMedicalRecord)
	r.Patch("/softDelete", h.DeleteMedicalRecord)
}

// GetMedicalRecordByID обрабатывает запрос на получение карты по идентификатору.
func (h *MedicalRecordHandler) GetMedicalRecordByID(w http.ResponseWriter, r *http.Request) {
	medicalRecordID, err := strconv.Atoi(chi.URLParam(r, "medicalRecordId"))
	if err != nil {
		h.writeError(w, apperrors.NewBadRequest("medicalRecordId must be a number"))
		return
	}

	resp, err := h.service.GetMedicalRecordByID(r.Context(), medicalRecordID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, resp.Code, resp)
}

// GetFilterMedicalRecords обрабатывает запрос на выборку карт по фильтру.
func (h *MedicalRecordHandler) GetFilterMedicalRecords(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp, err := h.service.GetFilterMedicalRecords(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, resp.Code, resp)
}

// AddMedicalRecord обрабатывает запрос на регистрацию новой карты.
func (h *MedicalRecordHandler) AddMedicalRecord(w http.ResponseWriter, r *http.Request) {
	h.addOrUpdate(w, r)
}

// UpdateMedicalRecord обрабатывает запрос на изменение существующей карты.
func (h *MedicalRecordHandler) UpdateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	h.addOrUpdate(w, r)
}

// addOrUpdate: заголовок x-user-id проверяется до какой-либо бизнес-логики.
func (h *MedicalRecordHandler) addOrUpdate(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var request domain.CreateUpdateMedicalRecord
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, apperrors.NewBadRequest("invalid request body"))
		return
	}

	resp, err := h.service.AddUpdateMedicalRecord(r.Context(), request, userID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, resp.Code, resp)
}

// DeleteMedicalRecord обрабатывает запрос на мягкое удаление карты.
func (h *MedicalRecordHandler) DeleteMedicalRecord(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var request domain.SoftDeleteMedicalRecord
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, apperrors.NewBadRequest("invalid request body"))
		return
	}

	resp, err := h.service.DeleteMedicalRecord(r.Context(), request, userID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, resp.Code, resp)
}

func (h *MedicalRecordHandler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
	}
}

// writeError переводит ошибку в конверт ответа. Текст неожиданных ошибок
// клиенту не отдается, причина остается в логе.
func (h *MedicalRecordHandler) writeError(w http.ResponseWriter, err error) {
	var badRequest *apperrors.BadRequestError
	var notFound *apperrors.NotFoundError

	switch {
	case errors.As(err, &badRequest):
		h.writeJSON(w, http.StatusBadRequest, response.Error[any](badRequest.Message, http.StatusBadRequest, "BadRequest"))
	case errors.As(err, &notFound):
		h.writeJSON(w, http.StatusNotFound, response.Error[any](notFound.Message, http.StatusNotFound, "NotFound"))
	default:
		h.log.Error().Err(err).Msg("Unexpected error")
		h.writeJSON(w, http.StatusInternalServerError, response.Error[any]("An unexpected error occurred", http.StatusInternalServerError, "Exception"))
	}
}

// parseUserID читает обязательный заголовок x-user-id.
func parseUserID(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(r.Header.Get(userIDHeader))
	if raw == "" {
		return uuid.Nil, apperrors.NewBadRequest("The 'x-user-id' header is required")
	}

	userID, err := uuid.Parse(raw)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, apperrors.NewBadRequest("The 'x-user-id' header is required")
	}

	return userID, nil
}

// parseFilter собирает фильтр выборки из параметров строки запроса.
func parseFilter(r *http.Request) (domain.MedicalRecordFilter, error) {
	var filter domain.MedicalRecordFilter
	query := r.URL.Query()

	filter.ColumnFilter = query.Get("column_filter")

	switch strings.ToUpper(query.Get("sort_by")) {
	case "", string(sorting.ASC):
		filter.SortBy = sorting.ASC
	case string(sorting.DESC):
		filter.SortBy = sorting.DESC
	default:
		return filter, apperrors.NewBadRequest("sort_by must be ASC or DESC")
	}

	var err error
	if filter.Skip, err = intParam(query.Get("skip"), "skip"); err != nil {
		return filter, err
	}
	if filter.Limit, err = intParam(query.Get("limit"), "limit"); err != nil {
		return filter, err
	}
	if filter.StatusID, err = intParam(query.Get("status_id"), "status_id"); err != nil {
		return filter, err
	}
	if filter.MedicalRecordTypeID, err = intParam(query.Get("medical_record_type_id"), "medical_record_type_id"); err != nil {
		return filter, err
	}
	if filter.FieldFilter, err = intParam(query.Get("field_filter"), "field_filter"); err != nil {
		return filter, err
	}
	if filter.StartDate, err = dateParam(query.Get("start_date"), "start_date"); err != nil {
		return filter, err
	}
	if filter.EndDate, err = dateParam(query.Get("end_date"), "end_date"); err != nil {
		return filter, err
	}

	return filter, nil
}

func intParam(raw, name string) (*int, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.NewBadRequest("%s must be a number", name)
	}

	return &value, nil
}

func dateParam(raw, name string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, apperrors.NewBadRequest("%s must be a date in the format %s", name, dateLayout)
	}

	return &value, nil
}
