package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/employee-registry/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	empHandler  *EmployeeHandler
	pageHandler *PageHandler
	metrics     http.Handler
}

// NewRouter создаёт новый роутер
func NewRouter(empHandler *EmployeeHandler, pageHandler *PageHandler, metrics http.Handler, logger *slog.Logger) *Router {
	return &Router{
		mux:         http.NewServeMux(),
		logger:      logger,
		empHandler:  empHandler,
		pageHandler: pageHandler,
		metrics:     metrics,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	r.mux.HandleFunc("/funcionarios", r.employeesRouter)
	r.mux.HandleFunc("/funcionarios/", r.employeesRouter)
	r.mux.HandleFunc("/feedback", r.feedbackRouter)
	r.mux.HandleFunc("/", r.pageRouter)

	if r.metrics != nil {
		r.mux.Handle("/metrics", r.metrics)
	}

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware (Content-Type выставляют сами обработчики)
	handler := middleware.Logger(r.logger)(r.mux)
	handler = middleware.RequestID(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

// employeesRouter обрабатывает все запросы к /funcionarios/
func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/funcionarios")
	path = strings.Trim(path, "/")

	if path == "" {
		switch req.Method {
		case http.MethodGet:
			r.empHandler.List(w, req)
		case http.MethodPost:
			r.empHandler.Create(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	if strings.Contains(path, "/") {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}

	// /funcionarios/{id}
	switch req.Method {
	case http.MethodGet:
		r.empHandler.GetByID(w, req)
	case http.MethodPatch:
		r.empHandler.Update(w, req)
	case http.MethodDelete:
		r.empHandler.Delete(w, req)
	default:
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
	}
}

func (r *Router) feedbackRouter(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	r.empHandler.Feedback(w, req)
}

// pageRouter отдаёт страницу реестра только по корневому пути
func (r *Router) pageRouter(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path != "/" {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}

	switch req.Method {
	case http.MethodGet:
		r.pageHandler.Show(w, req)
	case http.MethodPost:
		r.pageHandler.Submit(w, req)
	default:
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
	}
}
