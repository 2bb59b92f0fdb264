package http

import (
	"context"
	"testing"

	"github.com/dmarquez/go-mission-log/internal/config"
	"github.com/dmarquez/go-mission-log/internal/logger"
	"github.com/dmarquez/go-mission-log/internal/service"
	"github.com/dmarquez/go-mission-log/internal/utils"
	"github.com/stretchr/testify/require"
)

// ctxWithUserID simulates what the auth middleware does for a request that
// carried a valid bearer token.
func ctxWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, utils.UserIDCtxKey, userID)
}

// newTestHandler builds a Handler around the given service mocks with a
// throwaway uploads directory.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	return NewHandler(services, config.Files{UploadsDir: t.TempDir()}, logger.Nop())
}

func TestNewHandler(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	require.NotNil(t, h)
	require.NotNil(t, h.Init())
}
