package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sh5080/utm-checker/pkg/utils"
)

// serverMetricInterval은 서버 상태 메트릭 갱신 최소 간격입니다
const serverMetricInterval = 10 * time.Second

// Prometheus 미들웨어는 HTTP 요청에 대한 메트릭을 수집합니다
func Prometheus(serverName string) fiber.Handler {
	sampler := &serverMetricSampler{serverName: serverName}

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// 오류는 ErrorHandler 에서 상태 코드로 변환되므로 여기서 코드를 결정
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			}
		}

		utils.RecordRequest(c.Method(), c.Route().Path, strconv.Itoa(status), time.Since(start).Seconds())
		sampler.update(time.Now())

		return err
	}
}

// serverMetricSampler는 서버 상태 메트릭을 일정 간격으로만 갱신합니다
type serverMetricSampler struct {
	serverName string
	mu         sync.Mutex
	lastUpdate time.Time
}

func (s *serverMetricSampler) update(now time.Time) {
	s.mu.Lock()
	if now.Sub(s.lastUpdate) < serverMetricInterval {
		s.mu.Unlock()
		return
	}
	s.lastUpdate = now
	s.mu.Unlock()

	load := utils.GetServerLoad()

	healthValue := 0.0
	if load.IsHealthy {
		healthValue = 1.0
	}
	utils.UpdateServerMetric(s.serverName, "load", load.Load)
	utils.UpdateServerMetric(s.serverName, "healthy", healthValue)
	utils.UpdateServerMetric(s.serverName, "capacity", load.Capacity)
}
