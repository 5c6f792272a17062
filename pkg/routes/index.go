package route

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sh5080/utm-checker/pkg/configs"
	controller "github.com/sh5080/utm-checker/pkg/controllers"
	_interface "github.com/sh5080/utm-checker/pkg/interfaces"
	middleware "github.com/sh5080/utm-checker/pkg/middlewares"
)

// NewApp은 미들웨어와 라우트가 설정된 fiber 앱을 생성합니다.
// 서버와 서버리스 진입점이 같은 구성을 사용합니다.
func NewApp(config *configs.EnvConfig, services *_interface.ServiceContainer, serverless bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               config.Server.AppName,
		BodyLimit:             config.Server.BodyLimit,
		ErrorHandler:          controller.ErrorHandler,
		DisableStartupMessage: serverless, // 서버리스 환경에서는 시작 메시지 비활성화
	})

	app.Use(recover.New())
	app.Use(logger.New())
	origins := strings.Join(config.Server.AllowOrigins, ",")
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST",
		AllowHeaders: "Content-Type",
		// 와일드카드 오리진과 자격 증명은 함께 허용할 수 없음
		AllowCredentials: origins != "*",
	}))
	app.Use(middleware.Prometheus(config.Server.AppName))

	SetupRoutes(app, services)
	return app
}

// SetupRoutes는 애플리케이션의 모든 라우트를 설정합니다
func SetupRoutes(app *fiber.App, services *_interface.ServiceContainer) {
	SetupAppRoutes(app, services)

	// API 라우트 그룹
	api := app.Group("/api/v1")
	SetupCheckRoutes(app, api, services)
}
