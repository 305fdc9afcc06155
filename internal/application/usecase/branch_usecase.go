package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tiendashellx/pos-api/internal/application/dto"
	"github.com/tiendashellx/pos-api/internal/domain"
	"github.com/tiendashellx/pos-api/internal/domain/entity"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
)

// BranchUseCase casos de uso CRUD para sucursales.
type BranchUseCase struct {
	repo repository.BranchRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(repo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo}
}

// Create da de alta una sucursal.
func (uc *BranchUseCase) Create(tenantID string, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByTenantAndCode(tenantID, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Code:      in.Code,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// List devuelve todas las sucursales del tenant, activas e inactivas.
func (uc *BranchUseCase) List(tenantID string) ([]dto.BranchResponse, error) {
	branches, err := uc.repo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(branches))
	for _, b := range branches {
		items = append(items, *toBranchResponse(b))
	}
	return items, nil
}

// Update modifica los datos de una sucursal.
func (uc *BranchUseCase) Update(tenantID, code string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByTenantAndCode(tenantID, code)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		branch.Name = *in.Name
	}
	if in.Address != nil {
		branch.Address = *in.Address
	}
	if in.Phone != nil {
		branch.Phone = *in.Phone
	}
	branch.UpdatedAt = time.Now()
	if err := uc.repo.Update(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// Deactivate desactiva una sucursal; sus ventas y movimientos se conservan.
func (uc *BranchUseCase) Deactivate(tenantID, code string) error {
	branch, err := uc.repo.GetByTenantAndCode(tenantID, code)
	if err != nil {
		return err
	}
	if branch == nil || !branch.Active {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(tenantID, code)
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{
		ID:      b.ID,
		Code:    b.Code,
		Name:    b.Name,
		Address: b.Address,
		Phone:   b.Phone,
		Active:  b.Active,
	}
}
