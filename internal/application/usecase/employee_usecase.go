package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tiendashellx/pos-api/internal/application/dto"
	"github.com/tiendashellx/pos-api/internal/domain"
	"github.com/tiendashellx/pos-api/internal/domain/entity"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeUseCase casos de uso CRUD para empleados. El PIN de autorización
// de ventas se guarda siempre hasheado con bcrypt.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create da de alta un empleado. Un PIN vacío deja al empleado sin permiso
// para autorizar ventas.
func (uc *EmployeeUseCase) Create(tenantID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Salary.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetActiveByCode(tenantID, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	pinHash := ""
	if in.PIN != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.PIN), 10)
		if err != nil {
			return nil, err
		}
		pinHash = string(hash)
	}

	now := time.Now()
	employee := &entity.Employee{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		Code:       in.Code,
		Name:       in.Name,
		Role:       in.Role,
		BranchCode: in.BranchCode,
		Phone:      in.Phone,
		Salary:     in.Salary,
		PINHash:    pinHash,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List devuelve los empleados activos del tenant.
func (uc *EmployeeUseCase) List(tenantID string) ([]dto.EmployeeResponse, error) {
	employees, err := uc.repo.ListActiveByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		items = append(items, *toEmployeeResponse(e))
	}
	return items, nil
}

// Update modifica los datos de un empleado. Un PIN nuevo reemplaza al
// anterior; un PIN vacío revoca el permiso de autorizar.
func (uc *EmployeeUseCase) Update(tenantID, code string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetActiveByCode(tenantID, code)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		employee.Name = *in.Name
	}
	if in.Role != nil {
		employee.Role = *in.Role
	}
	if in.BranchCode != nil {
		employee.BranchCode = *in.BranchCode
	}
	if in.Phone != nil {
		employee.Phone = *in.Phone
	}
	if in.Salary != nil {
		if in.Salary.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		employee.Salary = *in.Salary
	}
	if in.PIN != nil {
		if *in.PIN == "" {
			employee.PINHash = ""
		} else {
			hash, err := bcrypt.GenerateFromPassword([]byte(*in.PIN), 10)
			if err != nil {
				return nil, err
			}
			employee.PINHash = string(hash)
		}
	}
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Deactivate borra lógicamente un empleado.
func (uc *EmployeeUseCase) Deactivate(tenantID, code string) error {
	employee, err := uc.repo.GetActiveByCode(tenantID, code)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(tenantID, code)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:           e.ID,
		Code:         e.Code,
		Name:         e.Name,
		Role:         e.Role,
		BranchCode:   e.BranchCode,
		Phone:        e.Phone,
		Salary:       e.Salary,
		CanAuthorize: e.PINHash != "",
	}
}
