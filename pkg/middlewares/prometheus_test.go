package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sh5080/utm-checker/pkg/utils"
)

func TestPrometheus_RecordsStatus(t *testing.T) {
	app := fiber.New()
	app.Use(Prometheus("test"))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/bad", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "bad")
	})

	okBefore := testutil.ToFloat64(utils.RequestCounter.WithLabelValues("GET", "/ok", "200"))
	badBefore := testutil.ToFloat64(utils.RequestCounter.WithLabelValues("GET", "/bad", "422"))

	for _, target := range []string{"/ok", "/bad"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	assert.Equal(t, okBefore+1, testutil.ToFloat64(utils.RequestCounter.WithLabelValues("GET", "/ok", "200")))
	assert.Equal(t, badBefore+1, testutil.ToFloat64(utils.RequestCounter.WithLabelValues("GET", "/bad", "422")))

	// 첫 요청에서 서버 상태 메트릭 갱신
	capacity := testutil.ToFloat64(utils.ServerStatusGauge.WithLabelValues("test", "capacity"))
	assert.GreaterOrEqual(t, capacity, 0.0)
}
