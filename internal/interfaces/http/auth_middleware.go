package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rebaixa-api/internal/application/dto"
	"github.com/jhoicas/rebaixa-api/internal/domain/entity"
	"github.com/jhoicas/rebaixa-api/pkg/jwt"
)

// Locals keys para la identidad del actor en Fiber.
const (
	LocalUserID       = "user_id"
	LocalRole         = "role"
	LocalStoreID      = "store_id"
	LocalDepartmentID = "department_id"
)

// AuthMiddleware valida el Bearer Token JWT y extrae identidad, rol y alcance
// a c.Locals. Toda ruta protegida reconstruye el actor desde aquí, sin DB.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalStoreID, claims.StoreID)
		c.Locals(LocalDepartmentID, claims.DepartmentID)
		return c.Next()
	}
}

// RequireRole corta con 403 si el rol del token no está en la lista permitida.
// Se usa como segunda capa de defensa; la decisión fina vive en authz.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actual := GetRole(c)
		for _, r := range roles {
			if actual == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta ruta"})
	}
}

// GetActor reconstruye el actor (identidad + rol + alcance) desde los locals.
func GetActor(c *fiber.Ctx) entity.Actor {
	role := GetRole(c)
	return entity.Actor{
		ID:   localString(c, LocalUserID),
		Role: role,
		Scope: entity.Scope{
			Kind:         entity.RequiredScopeKind(role),
			StoreID:      localString(c, LocalStoreID),
			DepartmentID: localString(c, LocalDepartmentID),
		},
	}
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) entity.Role {
	return entity.Role(localString(c, LocalRole))
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
