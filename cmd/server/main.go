package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sh5080/utm-checker/pkg/configs"
	route "github.com/sh5080/utm-checker/pkg/routes"
	service "github.com/sh5080/utm-checker/pkg/services"
	"github.com/sh5080/utm-checker/pkg/utils"
)

func main() {
	defer utils.Sync()

	// 메트릭 초기화
	utils.InitMetrics()

	config := configs.GetConfig()

	// 소스 카테고리는 요청 처리 전에 한 번만 로드
	services := service.NewServiceContainer(context.Background(), config)
	app := route.NewApp(config, services, false)

	// 종료 시그널 처리
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		utils.Info("server", "서버 종료 중...")
		if err := app.Shutdown(); err != nil {
			utils.Error("server", "서버 종료 실패: %v", err)
		}
	}()

	// 서버 시작
	port := config.Server.Port
	if err := app.Listen(":" + port); err != nil {
		utils.Fatal("server", "서버 실행 실패: %v", err)
	}
}
