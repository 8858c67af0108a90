package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadgalhoum/DPS/internal/config"
	"github.com/muhammadgalhoum/DPS/internal/http/middleware"
	"github.com/muhammadgalhoum/DPS/internal/logger"
)

func TestRootCmd(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate"}, names)

	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.NotNil(t, serve.Flags().Lookup("skip-migrate"))
}

func TestNewApp(t *testing.T) {
	var buf bytes.Buffer
	metrics, err := middleware.NewPrometheusMiddleware(prometheus.NewRegistry())
	require.NoError(t, err)

	cfg := &config.AppConfig{MaxUploadSize: "1kB"}
	app := newApp(cfg, logger.New(&buf, time.UTC), metrics)
	app.Post("/echo", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/panic", func(c *fiber.Ctx) error { panic("boom") })

	t.Run("request passes the chain", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("{}")))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
	})

	t.Run("body limit follows upload size", func(t *testing.T) {
		assert.Equal(t, cfg.MaxUploadBytes(), app.Config().BodyLimit)
		assert.Equal(t, 1000, app.Config().BodyLimit)
	})

	t.Run("panic becomes 500", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	assert.Contains(t, buf.String(), `"path":"/echo"`)
}
