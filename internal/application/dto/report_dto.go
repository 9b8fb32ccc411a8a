package dto

// ReportRequest ventana y filtros del reporte de productos registrados.
// StoreID/DepartmentID admiten vacío o "all" como "sin filtro"; según el rol
// pueden ser ignorados (el alcance del actor manda).
type ReportRequest struct {
	StartDate    string `query:"start_date" validate:"required"` // YYYY-MM-DD
	EndDate      string `query:"end_date" validate:"required"`   // YYYY-MM-DD
	StoreID      string `query:"store_id"`
	DepartmentID string `query:"department_id"`
}

// ReportRowResponse fila plana del reporte, contrato del render de PDF.
type ReportRowResponse struct {
	CreatorDisplay   string `json:"creator_display"`
	RegistrationDate string `json:"registration_date"` // D/M/Y
	ProductName      string `json:"product_name"`      // ≤ 45 caracteres
	ExpiryDate       string `json:"expiry_date"`       // D/M/Y
	StatusLabel      string `json:"status_label"`
}

// ReportResponse reporte completo: título, subtítulo y filas ordenadas.
// Rows vacío es válido; el render imprime el mensaje de "sin registros".
type ReportResponse struct {
	Title    string              `json:"title"`
	Subtitle string              `json:"subtitle"`
	Rows     []ReportRowResponse `json:"rows"`
}

// ExpiredRequest filtros del listado de vencidos (solo roles sin alcance
// forzado los usan).
type ExpiredRequest struct {
	StoreID      string `query:"store_id"`
	DepartmentID string `query:"department_id"`
}
