package controller

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sh5080/utm-checker/pkg/configs"
	responseDto "github.com/sh5080/utm-checker/pkg/types/dtos/responses"
	"github.com/sh5080/utm-checker/pkg/utils"
)

var GoVersion = runtime.Version()
var startTime = time.Now()

// Root는 서비스 동작 여부 메시지를 반환합니다
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(responseDto.Message{Message: "UTM Checker is running!"})
	}
}

// Health는 서버 상태와 시스템 사용률을 반환합니다
func Health(sourceCategories int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		load := utils.GetServerLoad()
		status := "ok"
		if !load.IsHealthy {
			status = "degraded"
		}

		response := responseDto.HealthResponse{
			Status:           status,
			Time:             time.Now(),
			Version:          configs.AppVersion,
			Uptime:           time.Since(startTime).String(),
			GoVersion:        GoVersion,
			SourceCategories: sourceCategories,
			CpuUsage:         load.CpuUsage,
			MemoryUsage:      load.MemoryUsage,
			IsHealthy:        load.IsHealthy,
		}
		return c.JSON(response)
	}
}

// Metrics는 프로메테우스 메트릭을 제공하는 핸들러입니다
func Metrics() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
