package service

import (
	"context"
	"time"

	"github.com/sh5080/utm-checker/pkg/configs"
	"github.com/sh5080/utm-checker/pkg/db"
	_interface "github.com/sh5080/utm-checker/pkg/interfaces"
	repository "github.com/sh5080/utm-checker/pkg/repositories"
	"github.com/sh5080/utm-checker/pkg/services/api"
	"github.com/sh5080/utm-checker/pkg/services/internal/channel"
	structure "github.com/sh5080/utm-checker/pkg/types/structures"
	"github.com/sh5080/utm-checker/pkg/utils"
)

// NewServiceContainer는 새로운 서비스 컨테이너를 생성합니다.
// 소스 카테고리 테이블은 여기서 한 번만 로드되며 이후 변경되지 않습니다.
func NewServiceContainer(ctx context.Context, config *configs.EnvConfig) *_interface.ServiceContainer {
	table := channel.LoadOrEmpty(config.Channel.SourcesPath)
	utils.SetSourceCategoryCount(len(table))

	return NewServiceContainerWith(table, NewCheckRepository(ctx, config), config)
}

// NewServiceContainerWith는 주어진 소스 카테고리와 저장소로 컨테이너를 구성합니다
func NewServiceContainerWith(
	categories map[string]structure.SourceCategory,
	checkRepository _interface.CheckRepository,
	config *configs.EnvConfig,
) *_interface.ServiceContainer {
	classifier := channel.NewClassifier(channel.NewTable(categories))
	ttl := time.Duration(config.Check.TTLHours) * time.Hour
	checkService := api.NewCheckService(classifier, checkRepository, ttl)

	return &_interface.ServiceContainer{
		Classifier:       classifier,
		CheckService:     checkService,
		CheckRepository:  checkRepository,
		SourceCategories: len(classifier.Table()),
	}
}

// NewCheckRepository는 설정에 따라 검사 결과 저장소를 선택합니다.
// DynamoDB 테이블이 설정되지 않았거나 초기화에 실패하면 인메모리 저장소를 사용합니다.
func NewCheckRepository(ctx context.Context, config *configs.EnvConfig) _interface.CheckRepository {
	tableName := config.AWS.Tables.Checks
	if tableName == "" {
		utils.Info("service", "검사 결과 인메모리 저장소 사용")
		return repository.NewInMemoryCheckRepository()
	}

	client, err := db.NewDynamoClient(ctx, config)
	if err != nil {
		utils.Error("service", "DynamoDB 클라이언트 생성 실패, 인메모리 저장소 사용: %v", err)
		return repository.NewInMemoryCheckRepository()
	}

	repo := db.NewDynamoCheckRepository(client, tableName)
	if err := repo.CreateTableIfNotExists(ctx); err != nil {
		utils.Error("service", "검사 결과 테이블 준비 실패, 인메모리 저장소 사용: %v", err)
		return repository.NewInMemoryCheckRepository()
	}

	utils.Info("service", "검사 결과 DynamoDB 저장소 사용 (%s)", tableName)
	return repo
}
