// Package authz concentra las reglas de autorización del ciclo de vida de
// productos y de los reportes. Authorize es una función pura y determinista:
// se evalúa ANTES de cualquier mutación y un deny nunca deja efectos parciales.
package authz

import (
	"github.com/jhoicas/rebaixa-api/internal/domain"
	"github.com/jhoicas/rebaixa-api/internal/domain/entity"
)

// Action identifica cada operación protegida.
type Action string

const (
	ActionCreateProduct Action = "create_product"
	ActionEditProduct   Action = "edit_product"
	ActionChangeStatus  Action = "change_product_status"
	ActionDeleteProduct Action = "delete_product"
	ActionQueryReports  Action = "query_reports"
	ActionListExpired   Action = "list_expired"
	ActionManageStores  Action = "manage_stores"
	ActionManageUsers   Action = "manage_users"
)

// Authorize decide si el actor puede ejecutar la acción sobre el alcance
// objetivo (tienda/sector del producto afectado; Scope cero para acciones sin
// objetivo concreto). Devuelve nil (allow) o domain.ErrForbidden (deny).
//
// El switch es exhaustivo por acción y por rol; agregar un rol o una acción
// sin cubrirla aquí debe saltar en revisión, no en producción.
func Authorize(actor entity.Actor, action Action, target entity.Scope) error {
	switch action {
	case ActionCreateProduct:
		// La tienda destino siempre se fuerza a la del actor, por eso el
		// objetivo no participa en la decisión.
		switch actor.Role {
		case entity.RoleStoreManager, entity.RoleDepartmentSupervisor, entity.RoleManagementAssistant:
			return nil
		}
		return domain.ErrForbidden

	case ActionEditProduct:
		if actor.Role == entity.RoleDepartmentSupervisor && actor.Scope.Covers(target) {
			return nil
		}
		return domain.ErrForbidden

	case ActionChangeStatus:
		if actor.Role == entity.RoleStoreManager && actor.Scope.SameStore(target) {
			return nil
		}
		return domain.ErrForbidden

	case ActionDeleteProduct:
		switch actor.Role {
		case entity.RoleGeneralManager:
			return nil
		case entity.RoleDepartmentSupervisor:
			if actor.Scope.Covers(target) {
				return nil
			}
		}
		return domain.ErrForbidden

	case ActionQueryReports, ActionListExpired:
		switch actor.Role {
		case entity.RoleGeneralManager, entity.RoleExchangeManager,
			entity.RoleStoreManager, entity.RoleDepartmentSupervisor:
			return nil
		}
		return domain.ErrForbidden

	case ActionManageStores, ActionManageUsers:
		if actor.Role == entity.RoleGeneralManager {
			return nil
		}
		return domain.ErrForbidden
	}
	return domain.ErrForbidden
}

// dashboards mapea cada rol a su pantalla inicial. Un rol fuera del mapa es un
// error de configuración que se reporta al llamador, nunca un panic.
var dashboards = map[entity.Role]string{
	entity.RoleGeneralManager:       "/api/dashboards/general-manager",
	entity.RoleExchangeManager:      "/api/dashboards/exchange",
	entity.RoleStoreManager:         "/api/dashboards/store-manager",
	entity.RoleDepartmentSupervisor: "/api/products/department",
	entity.RoleManagementAssistant:  "/api/dashboards/assistant",
}

// DashboardFor resuelve la pantalla inicial del rol.
func DashboardFor(role entity.Role) (string, error) {
	path, ok := dashboards[role]
	if !ok {
		return "", domain.ErrNoDashboard
	}
	return path, nil
}
