package domain_test

import (
	"testing"

	"github.com/employee-registry/internal/domain"
)

func TestEmployeeSummary(t *testing.T) {
	emp := domain.Employee{ID: 1, Nome: "Ana", CPF: "111", Email: "a@x.com"}

	if got, want := emp.Summary(), "ID: 1 - Nome: Ana - CPF: 111"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEmployeeTableName(t *testing.T) {
	if got := (domain.Employee{}).TableName(); got != "funcionarios" {
		t.Errorf("expected table 'funcionarios', got '%s'", got)
	}
}
