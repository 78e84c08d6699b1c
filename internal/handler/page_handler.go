package handler

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/employee-registry/internal/domain"
	"github.com/employee-registry/internal/dto"
	"github.com/employee-registry/internal/feedback"
	"github.com/employee-registry/internal/service"
	"github.com/go-playground/validator/v10"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type pageData struct {
	Employees []domain.Employee
	Feedback  *feedback.Message
}

// PageHandler отдаёт страницу реестра и принимает отправку формы
type PageHandler struct {
	empService service.EmployeeService
	notifier   *feedback.Notifier
	validator  *validator.Validate
	logger     *slog.Logger
}

func NewPageHandler(
	empService service.EmployeeService,
	notifier *feedback.Notifier,
	logger *slog.Logger,
) *PageHandler {
	return &PageHandler{
		empService: empService,
		notifier:   notifier,
		validator:  validator.New(),
		logger:     logger,
	}
}

// Show перечитывает список при каждой загрузке страницы
func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) {
	prev, hasPrev := h.notifier.Current()

	var data pageData
	snap, err := h.empService.List(r.Context())
	switch {
	case err != nil:
		// записи, прочитанные до сбоя, остаются на странице вместе с сообщением об ошибке
		h.logger.Warn("registry page rendered with incomplete list", slog.Any("error", err))
		if snap != nil {
			data.Employees = snap.Employees
			data.Feedback = snap.Feedback
		}
		if data.Feedback == nil {
			msg := h.notifier.Error(service.MsgListFailed)
			data.Feedback = &msg
		}
	default:
		data.Employees = snap.Employees
		data.Feedback = snap.Feedback
		// после отправки формы показываем её результат, а не сообщение о загрузке списка
		if hasPrev && r.URL.Query().Has("submitted") {
			data.Feedback = &prev
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		h.logger.Error("failed to render page", slog.Any("error", err))
	}
}

// Submit обрабатывает отправку формы и возвращает на страницу
func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.notifier.Error(service.MsgAddFailed)
		http.Redirect(w, r, "/?submitted=1", http.StatusSeeOther)
		return
	}

	req := dto.CreateEmployeeRequest{
		Nome:           r.PostForm.Get("nome"),
		CPF:            r.PostForm.Get("cpf"),
		Email:          r.PostForm.Get("email"),
		Telefone:       r.PostForm.Get("telefone"),
		DataNascimento: r.PostForm.Get("data_nascimento"),
		Cargo:          r.PostForm.Get("cargo"),
	}

	req.Normalize()
	if err := h.validator.Struct(&req); err != nil {
		h.logger.Warn("invalid form submission", slog.Any("error", err))
		h.notifier.Error(service.MsgAddFailed)
		http.Redirect(w, r, "/?submitted=1", http.StatusSeeOther)
		return
	}

	// результат отражается через notifier, ошибка уже залогирована сервисом
	_, _ = h.empService.Add(r.Context(), &req)
	http.Redirect(w, r, "/?submitted=1", http.StatusSeeOther)
}
