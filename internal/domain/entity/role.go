package entity

// Role es la enumeración cerrada de cargos del sistema.
// Cualquier switch sobre Role debe ser exhaustivo; un valor fuera de la
// enumeración es un error de configuración, no un estado válido.
type Role string

const (
	// RoleGeneralManager administra tiendas y usuarios de toda la cadena (sin tienda propia).
	RoleGeneralManager Role = "general_manager"
	// RoleExchangeManager consulta reportes de toda la cadena (sin tienda propia).
	RoleExchangeManager Role = "exchange_manager"
	// RoleStoreManager supervisa una sola tienda; único rol que cambia el estado de rebaixa.
	RoleStoreManager Role = "store_manager"
	// RoleDepartmentSupervisor opera sobre un sector concreto de una tienda.
	RoleDepartmentSupervisor Role = "department_supervisor"
	// RoleManagementAssistant registra productos en su tienda; no edita ni elimina.
	RoleManagementAssistant Role = "management_assistant"
)

// AllRoles lista los roles válidos (útil para validación y seeds).
var AllRoles = []Role{
	RoleGeneralManager,
	RoleExchangeManager,
	RoleStoreManager,
	RoleDepartmentSupervisor,
	RoleManagementAssistant,
}

// Valid indica si r pertenece a la enumeración.
func (r Role) Valid() bool {
	switch r {
	case RoleGeneralManager, RoleExchangeManager, RoleStoreManager,
		RoleDepartmentSupervisor, RoleManagementAssistant:
		return true
	}
	return false
}
