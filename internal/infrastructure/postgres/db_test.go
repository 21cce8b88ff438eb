package postgres

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/cargopilot-api/pkg/config"
	"github.com/stretchr/testify/require"
)

// newTestDB abre un pool contra TEST_DATABASE_URL en un esquema propio con la migración aplicada.
// Sin la variable el test se omite.
func newTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 2})
	require.NoError(t, err)
	schema := "it_" + uuid.NewString()[:8]
	_, err = admin.Exec(ctx, fmt.Sprintf(`CREATE SCHEMA %q`, schema))
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = admin.Exec(context.Background(), fmt.Sprintf(`DROP SCHEMA %q CASCADE`, schema))
		admin.Close()
	})

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	q := u.Query()
	q.Set("search_path", schema)
	q.Set("timezone", "UTC")
	u.RawQuery = q.Encode()

	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: u.String(), MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	ddl, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(ddl))
	require.NoError(t, err)
	return pool
}

// fleetFixture un conductor, un cliente y un vehículo para colgar misiones y documentos.
type fleetFixture struct {
	ChauffeurID int64
	ClientID    int64
	VehiculeID  int64
}

func seedFleet(t *testing.T, pool *pgxpool.Pool) fleetFixture {
	t.Helper()
	ctx := context.Background()
	var f fleetFixture

	userID := uuid.New()
	_, err := pool.Exec(ctx, `INSERT INTO utilisateurs (id, email, full_name, user_type) VALUES ($1, $2, $3, 'Chauffeur')`,
		userID.String(), "paul@cargopilot.test", "Paul Durand")
	require.NoError(t, err)
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO chauffeurs (utilisateur_id, chauffeur_code) VALUES ($1, 'CH-1') RETURNING id`, userID.String()).Scan(&f.ChauffeurID))
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO clients (company_name) VALUES ('Transports Lemoine') RETURNING id`).Scan(&f.ClientID))
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO vehicules (immatriculation) VALUES ('AB-123-CD') RETURNING id`).Scan(&f.VehiculeID))
	return f
}
