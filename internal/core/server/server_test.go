package server

import (
	"net/http/httptest"
	"testing"
	"time"

	"shop-admin/internal/core/config"
	"shop-admin/internal/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(port int) *config.AppConfig {
	return &config.AppConfig{
		ServerPort: port,
		Upload:     config.UploadConfig{MaxBytes: 5 << 20, MaxFiles: 10},
	}
}

// TestNew verifies that New creates a Server with the correct configuration.
func TestNew(t *testing.T) {
	cfg := testConfig(8090)

	logger.Init("development", "debug")
	srv := New(cfg)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.App)
	assert.NotNil(t, srv.Admin)
	assert.Equal(t, cfg, srv.cfg)
	assert.Equal(t, cfg.Upload.BodyLimit(), srv.App.Config().BodyLimit)
}

func TestHealthAndRayID(t *testing.T) {
	logger.Init("development", "error")
	srv := New(testConfig(8090))

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))
}

// TestServer_Run_Error verifies that Run returns an error when binding fails (e.g., privileged port).
func TestServer_Run_Error(t *testing.T) {
	logger.Init("development", "error")

	srv := New(testConfig(1))

	errCh := make(chan error)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		assert.Error(t, err)
	case <-time.After(1 * time.Second):
		srv.Shutdown()
		t.Log("Server unexpectedly started or timed out on Error test")
	}
}
