package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/employee-registry/internal/domain"
	"github.com/employee-registry/internal/dto"
	"github.com/employee-registry/internal/feedback"
	"github.com/employee-registry/internal/metrics"
	"github.com/employee-registry/internal/repository"
)

// Сообщения для пользователя, отображаются на странице реестра
const (
	MsgListOK      = "Lista de funcionários carregada com sucesso!"
	MsgListFailed  = "Erro ao listar funcionários!"
	MsgAddOK       = "Funcionário cadastrado com sucesso!"
	MsgAddFailed   = "Erro ao cadastrar funcionário!"
	MsgUpdateOK    = "Dados atualizados com sucesso!"
	MsgUpdateRead  = "Erro ao carregar funcionário para atualização!"
	MsgUpdateWrite = "Erro ao atualizar funcionário!"
	MsgDeleteOK    = "Funcionário removido com sucesso!"
	MsgDeleteFail  = "Erro ao remover funcionário!"
)

// Snapshot - результат операции: затронутая запись, обновлённый список и сообщение
type Snapshot struct {
	Employee  *domain.Employee
	Employees []domain.Employee
	Feedback  *feedback.Message
}

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Initialize(ctx context.Context) error
	List(ctx context.Context) (*Snapshot, error)
	Get(ctx context.Context, id int64) (*domain.Employee, error)
	Add(ctx context.Context, req *dto.CreateEmployeeRequest) (*Snapshot, error)
	Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*Snapshot, error)
	Delete(ctx context.Context, id int64) (*Snapshot, error)
}

type employeeService struct {
	repo     repository.EmployeeRepository
	notifier *feedback.Notifier
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(
	repo repository.EmployeeRepository,
	notifier *feedback.Notifier,
	m *metrics.Metrics,
	logger *slog.Logger,
) EmployeeService {
	return &employeeService{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

// Initialize выполняет первичную загрузку списка после открытия базы
func (s *employeeService) Initialize(ctx context.Context) error {
	snap, err := s.List(ctx)
	if err != nil {
		return err
	}
	s.logger.Info("employee store initialized", slog.Int("employees", len(snap.Employees)))
	return nil
}

// List возвращает все записи в порядке id. При ошибке чтения Snapshot
// содержит записи, прочитанные до сбоя.
func (s *employeeService) List(ctx context.Context) (*Snapshot, error) {
	employees, err := s.scan(ctx)
	if err != nil {
		msg := s.notifier.Error(MsgListFailed)
		return &Snapshot{Employees: employees, Feedback: &msg}, err
	}

	msg := s.notifier.Success(MsgListOK)
	return &Snapshot{Employees: employees, Feedback: &msg}, nil
}

func (s *employeeService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	emp, err := s.repo.GetByID(ctx, id)
	s.metrics.Observe("get", err)
	if err != nil && !errors.Is(err, domain.ErrEmployeeNotFound) {
		s.logger.Error("failed to get employee", slog.Int64("id", id), slog.Any("error", err))
	}
	return emp, err
}

func (s *employeeService) Add(ctx context.Context, req *dto.CreateEmployeeRequest) (*Snapshot, error) {
	emp := &domain.Employee{
		Nome:           strings.TrimSpace(req.Nome),
		CPF:            strings.TrimSpace(req.CPF),
		Email:          strings.TrimSpace(req.Email),
		Telefone:       strings.TrimSpace(req.Telefone),
		DataNascimento: strings.TrimSpace(req.DataNascimento),
		Cargo:          strings.TrimSpace(req.Cargo),
	}

	err := s.repo.Create(ctx, emp)
	s.metrics.Observe("add", err)
	if err != nil {
		s.logger.Error("failed to add employee", slog.Any("error", err))
		msg := s.notifier.Error(MsgAddFailed)
		return &Snapshot{Feedback: &msg}, err
	}

	s.logger.Info("employee added", slog.Int64("id", emp.ID))
	return s.refresh(ctx, emp, MsgAddOK), nil
}

// Update сливает непустые поля запроса с существующей записью.
// Отсутствующая запись даёт ErrEmployeeNotFound без сообщения пользователю.
func (s *employeeService) Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*Snapshot, error) {
	emp, err := s.repo.Merge(ctx, id, func(emp *domain.Employee) {
		applyUpdate(emp, req)
	})
	s.metrics.Observe("update", err)

	switch {
	case err == nil:
	case errors.Is(err, domain.ErrEmployeeNotFound):
		s.logger.Warn("update target not found", slog.Int64("id", id))
		return nil, err
	case errors.Is(err, domain.ErrRead):
		s.logger.Error("failed to get employee for update", slog.Int64("id", id), slog.Any("error", err))
		msg := s.notifier.Error(MsgUpdateRead)
		return &Snapshot{Feedback: &msg}, err
	default:
		s.logger.Error("failed to update employee", slog.Int64("id", id), slog.Any("error", err))
		msg := s.notifier.Error(MsgUpdateWrite)
		return &Snapshot{Feedback: &msg}, err
	}

	s.logger.Info("employee updated", slog.Int64("id", id))
	return s.refresh(ctx, emp, MsgUpdateOK), nil
}

// Delete удаляет запись без проверки существования
func (s *employeeService) Delete(ctx context.Context, id int64) (*Snapshot, error) {
	err := s.repo.Delete(ctx, id)
	s.metrics.Observe("delete", err)
	if err != nil {
		s.logger.Error("failed to delete employee", slog.Int64("id", id), slog.Any("error", err))
		msg := s.notifier.Error(MsgDeleteFail)
		return &Snapshot{Feedback: &msg}, err
	}

	s.logger.Info("employee deleted", slog.Int64("id", id))
	return s.refresh(ctx, nil, MsgDeleteOK), nil
}

// refresh перечитывает список после успешной записи. Сбой чтения
// не отменяет запись: сообщение об ошибке списка заменяет сообщение об успехе.
func (s *employeeService) refresh(ctx context.Context, emp *domain.Employee, okMsg string) *Snapshot {
	msg := s.notifier.Success(okMsg)

	employees, err := s.scan(ctx)
	if err != nil {
		msg = s.notifier.Error(MsgListFailed)
	}

	return &Snapshot{Employee: emp, Employees: employees, Feedback: &msg}
}

func (s *employeeService) scan(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.repo.List(ctx)
	s.metrics.Observe("list", err)
	if err != nil {
		s.logger.Error("failed to list employees",
			slog.Int("scanned", len(employees)),
			slog.Any("error", err),
		)
		return employees, err
	}

	s.metrics.SetRecords(len(employees))
	s.logger.Debug("employees listed", slog.Int("count", len(employees)))
	return employees, nil
}

func applyUpdate(emp *domain.Employee, req *dto.UpdateEmployeeRequest) {
	if req.Nome != nil {
		emp.Nome = strings.TrimSpace(*req.Nome)
	}
	if req.CPF != nil {
		emp.CPF = strings.TrimSpace(*req.CPF)
	}
	if req.Email != nil {
		emp.Email = strings.TrimSpace(*req.Email)
	}
	if req.Telefone != nil {
		emp.Telefone = strings.TrimSpace(*req.Telefone)
	}
	if req.DataNascimento != nil {
		emp.DataNascimento = strings.TrimSpace(*req.DataNascimento)
	}
	if req.Cargo != nil {
		emp.Cargo = strings.TrimSpace(*req.Cargo)
	}
}
