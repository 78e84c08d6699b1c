package domain

import "fmt"

// Employee представляет запись о сотруднике (коллекция funcionarios)
type Employee struct {
	ID             int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Nome           string `json:"nome" gorm:"type:varchar(200);not null;index:idx_funcionarios_nome"`
	CPF            string `json:"cpf" gorm:"column:cpf;type:varchar(20);not null;uniqueIndex:idx_funcionarios_cpf"`
	Email          string `json:"email" gorm:"type:varchar(200);not null;uniqueIndex:idx_funcionarios_email"`
	Telefone       string `json:"telefone" gorm:"type:varchar(30);not null;uniqueIndex:idx_funcionarios_telefone"`
	DataNascimento string `json:"data_nascimento" gorm:"column:data_nascimento;type:varchar(10);not null"`
	Cargo          string `json:"cargo" gorm:"type:varchar(200);not null;index:idx_funcionarios_cargo"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "funcionarios"
}

// Summary возвращает строку списка в формате страницы реестра
func (e Employee) Summary() string {
	return fmt.Sprintf("ID: %d - Nome: %s - CPF: %s", e.ID, e.Nome, e.CPF)
}
