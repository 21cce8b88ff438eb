// seed asegura que exista el administrador principal en el proveedor de identidad
// y su cuenta local SousAdmin. Es idempotente.
//
// Uso: go run ./cmd/seed
// La contraseña inicial se toma de SEED_ADMIN_PASSWORD (por defecto Password123);
// solo se usa si la cuenta remota no existe todavía.
package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/application/ports"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/jhoicas/cargopilot-api/internal/infrastructure/postgres"
	"github.com/jhoicas/cargopilot-api/internal/infrastructure/supabase"
	"github.com/jhoicas/cargopilot-api/pkg/config"
	"github.com/jhoicas/cargopilot-api/pkg/logger"
)

const (
	adminEmail       = "admin@cargopilot.com"
	adminFullName    = "Main Admin"
	defaultAdminPass = "Password123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, App: "cargopilot-seed"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	identity := supabase.NewClient(cfg.Supabase, nil, log.Component("supabase"))

	admin, err := ensureIdentity(ctx, identity, adminPassword())
	if err != nil {
		log.Fatal().Err(err).Msg("cuenta remota del administrador")
	}

	now := time.Now().UTC()
	err = postgres.NewUserRepository(pool).Upsert(ctx, &entity.Utilisateur{
		ID:        admin.ID,
		Email:     admin.Email,
		FullName:  adminFullName,
		UserType:  entity.UserTypeSousAdmin,
		Status:    entity.StatusActif,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cuenta local del administrador")
	}
	log.Info().Str("email", admin.Email).Str("id", admin.ID).Msg("administrador listo")
}

// ensureIdentity busca la cuenta por email y la crea si no existe.
func ensureIdentity(ctx context.Context, identity ports.IdentityGateway, password string) (*ports.IdentityUser, error) {
	users, err := identity.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, adminEmail) {
			return &users[i], nil
		}
	}
	return identity.CreateUser(ctx, ports.CreateIdentityInput{
		Email:    adminEmail,
		Password: password,
		FullName: adminFullName,
	})
}

func adminPassword() string {
	if p := os.Getenv("SEED_ADMIN_PASSWORD"); p != "" {
		return p
	}
	return defaultAdminPass
}
