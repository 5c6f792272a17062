package route

import (
	"github.com/gofiber/fiber/v2"

	controller "github.com/sh5080/utm-checker/pkg/controllers"
	_interface "github.com/sh5080/utm-checker/pkg/interfaces"
)

// SetupCheckRoutes는 UTM 검사 관련 라우트를 설정합니다
func SetupCheckRoutes(app *fiber.App, api fiber.Router, services *_interface.ServiceContainer) {
	// 기존 클라이언트 호환 경로
	app.Post("/check_utm", controller.CheckURL(services.CheckService, false))

	api.Post("/check", controller.CheckURL(services.CheckService, true))
	api.Get("/checks/:id", controller.GetCheck(services.CheckService))
	api.Get("/channel", controller.Channel(services.CheckService))
}
