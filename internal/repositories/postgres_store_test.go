package repositories_test

import (
	"context"
	"testing"

	"sponsorly_backend/database"
	"sponsorly_backend/internal/repositories"
	"sponsorly_backend/internal/repositories/repotest"

	"github.com/stretchr/testify/require"
)

func TestPostgresStore(t *testing.T) {
	dsn := repotest.StartPostgres(t)
	ctx := context.Background()

	db, err := database.Connect(ctx, dsn, false)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	store := repositories.NewPostgresStore(db)
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	require.NoError(t, store.Ping(ctx))

	repotest.Run(t, store)
}
