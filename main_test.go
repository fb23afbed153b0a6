package main_test

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/JojerDojer/web-420/internal/app"
	"github.com/JojerDojer/web-420/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cfg         *config.Config
	application *app.App
	baseURL     string
)

func TestMain(m *testing.M) {
	// Initialize Viper for tests
	v := viper.New()
	config.SetDefaults(v)
	v.Set("STORE_DRIVER", config.DriverMemory)
	v.Set("BCRYPT_COST", 4)
	v.Set("LOG_LEVEL", "warn")

	var err error
	cfg, err = config.FromViper(v)
	if err != nil {
		log.Fatalf("Failed to load test config: %v", err)
	}

	application, err = app.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}
	baseURL = "http://" + ln.Addr().String()
	go func() {
		if err := application.Fiber.Listener(ln); err != nil {
			log.Printf("Test server stopped: %v", err)
		}
	}()

	code := m.Run()

	// Graceful Shutdown
	if err := application.Fiber.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	_ = application.Close(context.Background())

	os.Exit(code)
}

func get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+path, nil)
	require.NoError(t, err)

	var resp *http.Response
	// The listener goroutine may still be starting.
	require.Eventually(t, func() bool {
		resp, err = http.DefaultClient.Do(req)
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestServerStartupAndHealthCheck(t *testing.T) {
	t.Run("HealthCheck", func(t *testing.T) {
		resp, body := get(t, "/health")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, `"status":"healthy"`)
	})

	t.Run("EmptyCollections", func(t *testing.T) {
		for _, path := range []string{"/api/composers", "/api/persons", "/api/teams"} {
			resp, body := get(t, path)
			assert.Equal(t, http.StatusOK, resp.StatusCode, path)
			assert.Equal(t, "[]", strings.TrimSpace(body), path)
		}
	})

	t.Run("Docs", func(t *testing.T) {
		resp, body := get(t, "/api-docs/openapi.json")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, fmt.Sprintf("%q", "/api/teams/{id}/players"))
	})
}
