package entity

import "github.com/jhoicas/rebaixa-api/internal/domain"

// ScopeKind discrimina la unión de alcances. El rol determina qué variante
// corresponde; nunca se valida "a mano" sobre campos anulables.
type ScopeKind int

const (
	// ScopeUnscoped sin tienda ni sector (gerencia general / trocas).
	ScopeUnscoped ScopeKind = iota
	// ScopeStore atado a una tienda.
	ScopeStore
	// ScopeStoreDepartment atado a una tienda y un sector.
	ScopeStoreDepartment
)

// Scope es el alcance organizacional de un actor o de un producto:
// la variante activa la indica Kind; los IDs no usados quedan vacíos.
type Scope struct {
	Kind         ScopeKind
	StoreID      string
	DepartmentID string
}

// Unscoped construye la variante sin alcance.
func Unscoped() Scope { return Scope{Kind: ScopeUnscoped} }

// StoreScope construye la variante de tienda.
func StoreScope(storeID string) Scope {
	return Scope{Kind: ScopeStore, StoreID: storeID}
}

// StoreDepartmentScope construye la variante de tienda + sector.
func StoreDepartmentScope(storeID, departmentID string) Scope {
	return Scope{Kind: ScopeStoreDepartment, StoreID: storeID, DepartmentID: departmentID}
}

// RequiredScopeKind devuelve la variante de alcance que exige cada rol.
func RequiredScopeKind(role Role) ScopeKind {
	switch role {
	case RoleGeneralManager, RoleExchangeManager:
		return ScopeUnscoped
	case RoleDepartmentSupervisor:
		return ScopeStoreDepartment
	default: // RoleStoreManager, RoleManagementAssistant
		return ScopeStore
	}
}

// ScopeForRole normaliza el alcance de un usuario según su rol, forzando el
// invariante en cada create/update: los roles sin tienda descartan cualquier
// tienda/sector recibido; los roles con tienda exigen tienda; solo el
// encargado de sector lleva sector.
func ScopeForRole(role Role, storeID, departmentID string) (Scope, error) {
	if !role.Valid() {
		return Scope{}, domain.ErrInvalidInput
	}
	switch RequiredScopeKind(role) {
	case ScopeUnscoped:
		return Unscoped(), nil
	case ScopeStoreDepartment:
		if storeID == "" || departmentID == "" {
			return Scope{}, domain.ErrInvalidInput
		}
		return StoreDepartmentScope(storeID, departmentID), nil
	default:
		if storeID == "" {
			return Scope{}, domain.ErrInvalidInput
		}
		return StoreScope(storeID), nil
	}
}

// SameStore indica si ambos alcances refieren a la misma tienda.
func (s Scope) SameStore(other Scope) bool {
	return s.StoreID != "" && s.StoreID == other.StoreID
}

// Covers indica si el alcance s cubre al objetivo: la variante de tienda cubre
// todo lo de su tienda, la de tienda+sector solo su sector, y la variante sin
// alcance cubre todo.
func (s Scope) Covers(target Scope) bool {
	switch s.Kind {
	case ScopeUnscoped:
		return true
	case ScopeStore:
		return s.SameStore(target)
	default:
		return s.SameStore(target) && s.DepartmentID == target.DepartmentID
	}
}
