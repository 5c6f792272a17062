package _interface

import (
	"context"

	request "github.com/sh5080/utm-checker/pkg/types/dtos/requests"
	response "github.com/sh5080/utm-checker/pkg/types/dtos/responses"
	model "github.com/sh5080/utm-checker/pkg/types/models"
	structure "github.com/sh5080/utm-checker/pkg/types/structures"
)

// ChannelClassifier는 UTM 값으로 채널을 결정하는 인터페이스입니다
type ChannelClassifier interface {
	// Classify는 디코딩된 UTM 값으로 채널을 결정합니다
	Classify(source, medium, campaign, platform string) structure.Channel
	// Category는 소스의 카테고리를 반환합니다
	Category(source string) structure.SourceCategory
}

// CheckService는 URL 검사 서비스 인터페이스입니다
type CheckService interface {
	// Check는 URL의 UTM 파라미터를 검사하고 채널을 결정합니다
	Check(ctx context.Context, url string) (*response.Check, error)
	// Classify는 이미 디코딩된 UTM 값으로 채널을 결정합니다
	Classify(ctx context.Context, query request.ChannelQuery) *response.Channel
	// GetCheck는 저장된 검사 결과를 조회합니다
	GetCheck(ctx context.Context, id string) (*model.CheckRecord, error)
}

// CheckRepository는 검사 결과 저장소 인터페이스입니다
type CheckRepository interface {
	// SaveCheck는 검사 결과를 저장합니다
	SaveCheck(ctx context.Context, record *model.CheckRecord) error
	// GetCheck는 검사 결과를 조회합니다. 없거나 만료되었으면 nil, nil 을 반환합니다
	GetCheck(ctx context.Context, id string) (*model.CheckRecord, error)
}
