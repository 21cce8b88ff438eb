package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChauffeurRepo_ListExpiringDocumentsExcluyeHoyPasado(t *testing.T) {
	pool := newTestDB(t)
	f := seedFleet(t, pool)
	ctx := context.Background()
	for _, exp := range []string{"2024-06-01", "2024-06-03", "2024-07-01", "2024-07-02"} {
		_, err := pool.Exec(ctx, `INSERT INTO documents_chauffeurs (chauffeur_id, document_type, file_path, expiration_date)
			VALUES ($1, 'Permis', 'docs/permis.pdf', $2::date)`, f.ChauffeurID, exp)
		require.NoError(t, err)
	}
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	docs, err := NewChauffeurRepository(pool).ListExpiringDocuments(ctx, now, now.Add(30*24*time.Hour))

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "2024-06-03", docs[0].ExpirationDate.Format("2006-01-02"))
	assert.Equal(t, "2024-07-01", docs[1].ExpirationDate.Format("2006-01-02"))
	assert.Equal(t, "Paul Durand", docs[0].ChauffeurName)
}
