package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/rebaixa-api/internal/application/dto"
	"github.com/jhoicas/rebaixa-api/internal/domain"
	"github.com/jhoicas/rebaixa-api/internal/domain/authz"
	"github.com/jhoicas/rebaixa-api/internal/domain/entity"
	"github.com/jhoicas/rebaixa-api/internal/domain/repository"
)

const (
	// displayDateLayout D/M/Y, formato del contrato de reporte.
	displayDateLayout = "02/01/2006"
	// maxNameDisplayLen corte del nombre del producto en las filas del reporte.
	maxNameDisplayLen = 45
	// filterAll valor centinela de los filtros opcionales ("todas las tiendas").
	filterAll = "all"
)

// ReportUseCase motor de consultas de reporte: ventana por fecha de registro
// con alcance condicionado por rol, y listado de vencidos.
type ReportUseCase struct {
	reports     repository.ReportRepository
	stores      repository.StoreRepository
	departments repository.DepartmentRepository
	now         func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reports repository.ReportRepository, stores repository.StoreRepository, departments repository.DepartmentRepository) *ReportUseCase {
	return &ReportUseCase{reports: reports, stores: stores, departments: departments, now: time.Now}
}

// Query arma el reporte de productos registrados en [inicio-de-día(start),
// fin-de-día(end)]. El registro es un timestamp, por eso la ventana se expande
// a 00:00:00 y 23:59:59.999999999, ambos inclusive. El alcance se estrecha por rol:
//
//   - encargado de sector: tienda + sector propios, filtros ignorados;
//   - gerente de tienda: tienda propia, filtro de sector respetado;
//   - gerencia general / trocas: sin alcance forzado, filtros respetados
//     (vacío o "all" = sin filtro).
func (uc *ReportUseCase) Query(ctx context.Context, actor entity.Actor, in dto.ReportRequest) (*dto.ReportResponse, error) {
	if err := authz.Authorize(actor, authz.ActionQueryReports, entity.Scope{}); err != nil {
		return nil, err
	}
	start, err := time.ParseInLocation(dateLayout, in.StartDate, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.ParseInLocation(dateLayout, in.EndDate, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if start.After(end) {
		return nil, domain.ErrInvalidInput
	}

	filter := repository.RegistrationFilter{
		Start: startOfDay(start),
		End:   endOfDay(end),
	}

	var title string
	switch actor.Role {
	case entity.RoleDepartmentSupervisor:
		filter.StoreID = actor.Scope.StoreID
		filter.DepartmentID = actor.Scope.DepartmentID
		filter.ByRegistrationOnly = true
		dept, err := uc.departments.GetByID(actor.Scope.DepartmentID)
		if err != nil {
			return nil, err
		}
		name := actor.Scope.DepartmentID
		if dept != nil {
			name = dept.Name
		}
		title = "Relatório do Setor: " + name

	case entity.RoleStoreManager:
		filter.StoreID = actor.Scope.StoreID
		filter.DepartmentID = normalizeFilter(in.DepartmentID)
		store, err := uc.stores.GetByID(actor.Scope.StoreID)
		if err != nil {
			return nil, err
		}
		name := actor.Scope.StoreID
		if store != nil {
			name = store.Name
		}
		title = "Relatório da Loja: " + name

	default: // gerencia general / trocas
		filter.StoreID = normalizeFilter(in.StoreID)
		filter.DepartmentID = normalizeFilter(in.DepartmentID)
		title = "Relatório Geral de Produtos"
	}

	rows, err := uc.reports.RegisteredBetween(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReportRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ReportRowResponse{
			CreatorDisplay:   entity.DisplayNameFor(r.CreatorLogin),
			RegistrationDate: r.RegisteredAt.Format(displayDateLayout),
			ProductName:      truncate(r.ProductName, maxNameDisplayLen),
			ExpiryDate:       r.Expiry.Format(displayDateLayout),
			StatusLabel:      r.Status.Label(),
		})
	}

	return &dto.ReportResponse{
		Title:    title,
		Subtitle: fmt.Sprintf("Produtos cadastrados de %s a %s", in.StartDate, in.EndDate),
		Rows:     out,
	}, nil
}

// Expired lista los productos con validad estrictamente anterior a hoy, con el
// mismo estrechamiento de alcance por rol. Orden: validad descendente, o
// tienda y luego validad descendente para los roles sin tienda propia.
func (uc *ReportUseCase) Expired(ctx context.Context, actor entity.Actor, in dto.ExpiredRequest) (*dto.ProductListResponse, error) {
	if err := authz.Authorize(actor, authz.ActionListExpired, entity.Scope{}); err != nil {
		return nil, err
	}
	filter := repository.ExpiredFilter{Today: startOfDay(uc.now())}

	switch actor.Role {
	case entity.RoleDepartmentSupervisor:
		filter.StoreID = actor.Scope.StoreID
		filter.DepartmentID = actor.Scope.DepartmentID
	case entity.RoleStoreManager:
		filter.StoreID = actor.Scope.StoreID
	default:
		filter.StoreID = normalizeFilter(in.StoreID)
		filter.DepartmentID = normalizeFilter(in.DepartmentID)
		filter.ByStore = true
	}

	list, err := uc.reports.Expired(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{Items: toProductResponses(list)}, nil
}

// normalizeFilter traduce el centinela "all" (y el vacío) a "sin filtro".
func normalizeFilter(s string) string {
	if s == filterAll {
		return ""
	}
	return s
}

// endOfDay devuelve el último instante del día calendario de t (23:59:59.999999999).
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

// truncate corta s a max runas (el PDF reserva un ancho fijo por columna).
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
