package dto

import "strings"

// CreateEmployeeRequest - запрос на создание сотрудника (JSON или форма)
type CreateEmployeeRequest struct {
	Nome           string `json:"nome" validate:"required,max=200"`
	CPF            string `json:"cpf" validate:"required,max=20"`
	Email          string `json:"email" validate:"required,email,max=200"`
	Telefone       string `json:"telefone" validate:"required,max=30"`
	DataNascimento string `json:"data_nascimento" validate:"required,datetime=2006-01-02"`
	Cargo          string `json:"cargo" validate:"required,max=200"`
}

// UpdateEmployeeRequest - частичное обновление, отсутствующие поля сохраняются
type UpdateEmployeeRequest struct {
	Nome           *string `json:"nome" validate:"omitempty,min=1,max=200"`
	CPF            *string `json:"cpf" validate:"omitempty,min=1,max=20"`
	Email          *string `json:"email" validate:"omitempty,email,max=200"`
	Telefone       *string `json:"telefone" validate:"omitempty,min=1,max=30"`
	DataNascimento *string `json:"data_nascimento" validate:"omitempty,datetime=2006-01-02"`
	Cargo          *string `json:"cargo" validate:"omitempty,min=1,max=200"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID             int64  `json:"id"`
	Nome           string `json:"nome"`
	CPF            string `json:"cpf"`
	Email          string `json:"email"`
	Telefone       string `json:"telefone"`
	DataNascimento string `json:"data_nascimento"`
	Cargo          string `json:"cargo"`
	Summary        string `json:"summary"`
}

// FeedbackResponse - временное сообщение для пользователя
type FeedbackResponse struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// RegistryResponse - результат операции вместе с обновлённым списком
type RegistryResponse struct {
	Employee  *EmployeeResponse  `json:"employee,omitempty"`
	Employees []EmployeeResponse `json:"employees"`
	Feedback  *FeedbackResponse  `json:"feedback,omitempty"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Normalize убирает пробелы по краям до валидации, чтобы "   " не проходило required
func (r *CreateEmployeeRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	r.CPF = strings.TrimSpace(r.CPF)
	r.Email = strings.TrimSpace(r.Email)
	r.Telefone = strings.TrimSpace(r.Telefone)
	r.DataNascimento = strings.TrimSpace(r.DataNascimento)
	r.Cargo = strings.TrimSpace(r.Cargo)
}

// Normalize убирает пробелы у переданных полей; пустое после обрезки поле не проходит min=1
func (r *UpdateEmployeeRequest) Normalize() {
	for _, field := range []*string{r.Nome, r.CPF, r.Email, r.Telefone, r.DataNascimento, r.Cargo} {
		if field != nil {
			*field = strings.TrimSpace(*field)
		}
	}
}
