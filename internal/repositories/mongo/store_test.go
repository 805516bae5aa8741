package mongo

import (
	"context"
	"testing"
	"time"

	"sponsorly_backend/internal/repositories/repotest"

	"github.com/stretchr/testify/require"
)

func TestMongoStore(t *testing.T) {
	uri := repotest.StartMongo(t)
	ctx := context.Background()

	store, err := Open(ctx, uri, WithDatabase("sponsorly_test"), WithTimeout(5*time.Second))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	require.NoError(t, store.Ping(ctx))

	repotest.Run(t, store)
}
