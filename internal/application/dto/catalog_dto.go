package dto

// CreateBranchRequest entrada para crear una sucursal.
type CreateBranchRequest struct {
	Code    string `json:"codigo" validate:"required"`
	Name    string `json:"nombre" validate:"required"`
	Address string `json:"direccion"`
	Phone   string `json:"telefono"`
}

// UpdateBranchRequest entrada para actualizar una sucursal.
type UpdateBranchRequest struct {
	Name    *string `json:"nombre"`
	Address *string `json:"direccion"`
	Phone   *string `json:"telefono"`
}

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID      string `json:"_id"`
	Code    string `json:"codigo"`
	Name    string `json:"nombre"`
	Address string `json:"direccion"`
	Phone   string `json:"telefono"`
	Active  bool   `json:"activa"`
}

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Code        string `json:"codigo" validate:"required"`
	Name        string `json:"nombre" validate:"required"`
	Description string `json:"descripcion"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string `json:"_id"`
	Code        string `json:"codigo"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Code    string `json:"codigo" validate:"required"`
	Name    string `json:"nombre" validate:"required"`
	Contact string `json:"contacto"`
	Phone   string `json:"telefono"`
	Email   string `json:"email"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor.
type UpdateSupplierRequest struct {
	Name    *string `json:"nombre"`
	Contact *string `json:"contacto"`
	Phone   *string `json:"telefono"`
	Email   *string `json:"email"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID      string `json:"_id"`
	Code    string `json:"codigo"`
	Name    string `json:"nombre"`
	Contact string `json:"contacto"`
	Phone   string `json:"telefono"`
	Email   string `json:"email"`
	Active  bool   `json:"activo"`
}
