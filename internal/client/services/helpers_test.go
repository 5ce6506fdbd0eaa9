package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/hrmportal/internal/client/api"
	"github.com/dmitrijs2005/hrmportal/internal/client/api/apitest"
	"github.com/dmitrijs2005/hrmportal/internal/client/localdb"
	"github.com/dmitrijs2005/hrmportal/internal/client/session"
	"github.com/dmitrijs2005/hrmportal/internal/logging"
	"github.com/stretchr/testify/require"
)

type env struct {
	backend *apitest.Backend
	store   *session.Store
	gateway *api.Gateway
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db, err := localdb.Open(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	b := apitest.New(t)
	store := session.NewStore(db, logging.Discard())
	g := api.NewGateway(api.Config{BaseURL: b.URL}, store, logging.Discard())

	return &env{backend: b, store: store, gateway: g}
}

// signIn stores a session without going through the backend.
func (e *env) signIn(t *testing.T, token string) {
	t.Helper()
	require.NoError(t, e.store.Save(context.Background(), session.Session{Token: token}))
}
