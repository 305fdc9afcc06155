package dto

import "github.com/shopspring/decimal"

// CreateEmployeeRequest entrada para crear un empleado. PIN es opcional: si
// viene, habilita al empleado para autorizar ventas (se guarda hasheado).
type CreateEmployeeRequest struct {
	Code       string          `json:"codigo" validate:"required"`
	Name       string          `json:"nombre" validate:"required"`
	Role       string          `json:"puesto"`
	BranchCode string          `json:"sucursal_codigo"`
	Phone      string          `json:"telefono"`
	Salary     decimal.Decimal `json:"salario"`
	PIN        string          `json:"pin"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado.
type UpdateEmployeeRequest struct {
	Name       *string          `json:"nombre"`
	Role       *string          `json:"puesto"`
	BranchCode *string          `json:"sucursal_codigo"`
	Phone      *string          `json:"telefono"`
	Salary     *decimal.Decimal `json:"salario"`
	PIN        *string          `json:"pin"`
}

// EmployeeResponse salida de un empleado. El hash del PIN nunca sale; solo
// se reporta si el empleado puede autorizar ventas.
type EmployeeResponse struct {
	ID           string          `json:"_id"`
	Code         string          `json:"codigo"`
	Name         string          `json:"nombre"`
	Role         string          `json:"puesto"`
	BranchCode   string          `json:"sucursal_codigo"`
	Phone        string          `json:"telefono"`
	Salary       decimal.Decimal `json:"salario"`
	CanAuthorize bool            `json:"puede_autorizar"`
}
