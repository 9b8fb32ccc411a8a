// Comando de siembra: crea la gerencia general inicial y los catálogos base
// (tiendas y sectores) si no existen. Es idempotente: se puede re-ejecutar.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/rebaixa-api/internal/domain/entity"
	"github.com/jhoicas/rebaixa-api/internal/infrastructure/postgres"
	"github.com/jhoicas/rebaixa-api/pkg/config"
	"github.com/jhoicas/rebaixa-api/pkg/logger"
)

var defaultDepartments = []string{
	"Frios",
	"Hortifruti",
	"Padaria",
	"Mercearia",
	"Açougue",
}

func main() {
	email := flag.String("email", "admin@rebaixa.local", "email de la gerencia general inicial")
	password := flag.String("password", "", "contraseña de la gerencia general inicial (requerido)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if *password == "" {
		log.Fatal().Msg("el flag -password es requerido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)

	existing, err := userRepo.GetByEmail(*email)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar usuario inicial")
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("generar hash de contraseña")
		}
		now := time.Now()
		user := &entity.User{
			ID:           uuid.New().String(),
			Email:        *email,
			PasswordHash: string(hash),
			Role:         entity.RoleGeneralManager,
			Scope:        entity.Unscoped(),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(user); err != nil {
			log.Fatal().Err(err).Msg("crear gerencia general inicial")
		}
		log.Info().Str("email", *email).Msg("gerencia general creada")
	} else {
		log.Info().Str("email", *email).Msg("gerencia general ya existe, sin cambios")
	}

	for _, name := range defaultDepartments {
		dept, err := departmentRepo.GetByName(name)
		if err != nil {
			log.Fatal().Err(err).Str("department", name).Msg("consultar sector")
		}
		if dept != nil {
			continue
		}
		now := time.Now()
		if err := departmentRepo.Create(&entity.Department{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			log.Fatal().Err(err).Str("department", name).Msg("crear sector")
		}
		log.Info().Str("department", name).Msg("sector creado")
	}

	log.Info().Msg("siembra completada")
}
