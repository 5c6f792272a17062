package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/sh5080/utm-checker/pkg/utils"
)

// EnvConfig는 환경 변수로 구성되는 애플리케이션 설정입니다
type EnvConfig struct {
	Server struct {
		Port    string `env:"PORT" envDefault:"8800"`
		AppName string `env:"APP_NAME" envDefault:"utm-checker"`
		AppEnv  string `env:"APP_ENV" envDefault:"prod"`
		Version string `env:"VERSION" envDefault:"dev"`
		// 허용 오리진 목록 (쉼표 구분)
		AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"https://frankmickeler.com,http://localhost:3000"`
		BodyLimit    int      `env:"BODY_LIMIT" envDefault:"16384"`
	}
	Channel struct {
		SourcesPath string `env:"SOURCES_PATH" envDefault:"sources.json"`
	}
	Check struct {
		TTLHours int `env:"CHECK_TTL_HOURS" envDefault:"24"`
	}
	AWS struct {
		AccessKeyID      string `env:"AWS_ACCESS_KEY_ID"`
		SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY"`
		Region           string `env:"AWS_REGION" envDefault:"ap-northeast-2"`
		DynamoDBEndpoint string `env:"AWS_DYNAMODB_ENDPOINT"`
		Tables           struct {
			Checks string `env:"AWS_DYNAMODB_TABLE_CHECKS"`
		}
	}
}

// AppVersion은 앱 버전입니다 (설정 로드 시 갱신)
var AppVersion = "dev"

var (
	configInstance *EnvConfig
	once           sync.Once
)

// Load는 .env 파일(있는 경우)과 환경 변수로 설정을 읽습니다.
// 이미 설정된 환경 변수는 .env 값으로 덮어쓰지 않습니다.
func Load(dotenvPath string) (*EnvConfig, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf(".env 로드 실패: %w", err)
		}
	}

	config := &EnvConfig{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("환경 변수 파싱 실패: %w", err)
	}

	// 개발 환경일 경우 항상 "dev"로 설정
	if config.Server.AppEnv == "dev" {
		config.Server.Version = "dev"
	}
	if config.Check.TTLHours <= 0 {
		config.Check.TTLHours = 24
	}

	return config, nil
}

// GetConfig는 EnvConfig의 싱글톤 인스턴스를 반환합니다.
// 처음 호출 시에만 환경 변수를 로드하고 이후 호출에서는 캐시된 인스턴스를 반환합니다.
func GetConfig() *EnvConfig {
	once.Do(func() {
		config, err := Load(".env")
		if err != nil {
			utils.Fatal("config", "설정 로드 실패: %v", err)
		}
		configInstance = config
		AppVersion = config.Server.Version
		utils.Info("config", "환경 변수 로드 완료 (앱: %s, 버전: %s, 포트: %s)",
			config.Server.AppName, AppVersion, config.Server.Port)
	})
	return configInstance
}
