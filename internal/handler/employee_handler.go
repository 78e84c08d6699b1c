package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/employee-registry/internal/domain"
	"github.com/employee-registry/internal/dto"
	"github.com/employee-registry/internal/feedback"
	"github.com/employee-registry/internal/service"
	"github.com/go-playground/validator/v10"
)

type EmployeeHandler struct {
	empService service.EmployeeService
	notifier   *feedback.Notifier
	validator  *validator.Validate
	logger     *slog.Logger
}

func NewEmployeeHandler(
	empService service.EmployeeService,
	notifier *feedback.Notifier,
	logger *slog.Logger,
) *EmployeeHandler {
	return &EmployeeHandler{
		empService: empService,
		notifier:   notifier,
		validator:  validator.New(),
		logger:     logger,
	}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	snap, err := h.empService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.toRegistryResponse(snap))
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	req.Normalize()
	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	snap, err := h.empService.Add(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, h.toRegistryResponse(snap))
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	emp, err := h.empService.Get(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	req.Normalize()
	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	snap, err := h.empService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.toRegistryResponse(snap))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	snap, err := h.empService.Delete(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.toRegistryResponse(snap))
}

// Feedback отдаёт текущее сообщение или 204, если оно уже скрыто
func (h *EmployeeHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	msg, ok := h.notifier.Current()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.respondJSON(w, http.StatusOK, toFeedbackResponse(&msg))
}

func (h *EmployeeHandler) extractID(r *http.Request) (int64, error) {
	path := strings.TrimPrefix(r.URL.Path, "/funcionarios/")
	path = strings.Trim(path, "/")

	if path == "" || strings.Contains(path, "/") {
		return 0, errors.New("id is required")
	}

	id, err := strconv.ParseInt(path, 10, 64)
	if err != nil {
		return 0, err
	}
	if id < 1 {
		return 0, errors.New("id must be positive")
	}
	return id, nil
}

func (h *EmployeeHandler) toRegistryResponse(snap *service.Snapshot) dto.RegistryResponse {
	resp := dto.RegistryResponse{
		Employees: make([]dto.EmployeeResponse, len(snap.Employees)),
		Feedback:  toFeedbackResponse(snap.Feedback),
	}

	for i := range snap.Employees {
		resp.Employees[i] = h.toEmployeeResponse(&snap.Employees[i])
	}

	if snap.Employee != nil {
		emp := h.toEmployeeResponse(snap.Employee)
		resp.Employee = &emp
	}

	return resp
}

func (h *EmployeeHandler) toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:             emp.ID,
		Nome:           emp.Nome,
		CPF:            emp.CPF,
		Email:          emp.Email,
		Telefone:       emp.Telefone,
		DataNascimento: emp.DataNascimento,
		Cargo:          emp.Cargo,
		Summary:        emp.Summary(),
	}
}

func toFeedbackResponse(msg *feedback.Message) *dto.FeedbackResponse {
	if msg == nil {
		return nil
	}
	return &dto.FeedbackResponse{
		Message: msg.Text,
		Kind:    string(msg.Kind),
	}
}

func (h *EmployeeHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound):
		h.respondError(w, http.StatusNotFound, "employee not found", "")
	case errors.Is(err, domain.ErrConstraintViolation):
		h.respondError(w, http.StatusConflict, "employee with this cpf, email or telefone already exists", "")
	case errors.Is(err, domain.ErrRead):
		h.respondError(w, http.StatusInternalServerError, "failed to read employees", "")
	case errors.Is(err, domain.ErrWrite):
		h.respondError(w, http.StatusInternalServerError, "failed to write employee", "")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h *EmployeeHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *EmployeeHandler) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}
