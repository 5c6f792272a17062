package serverless

import (
	"context"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/sh5080/utm-checker/pkg/configs"
	route "github.com/sh5080/utm-checker/pkg/routes"
	service "github.com/sh5080/utm-checker/pkg/services"
	"github.com/sh5080/utm-checker/pkg/utils"
)

var (
	app     *fiber.App
	appOnce sync.Once
)

// GetApp 함수는 초기화된 애플리케이션 인스턴스를 반환합니다.
// 콜드 스타트 때 한 번만 생성하고 이후 호출에서는 같은 인스턴스를 재사용합니다.
func GetApp() *fiber.App {
	appOnce.Do(func() {
		utils.InitMetrics()

		config := configs.GetConfig()
		services := service.NewServiceContainer(context.Background(), config)
		app = route.NewApp(config, services, true)
	})
	return app
}
