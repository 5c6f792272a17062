package api

import (
	"context"
	"time"

	"github.com/google/uuid"

	_interface "github.com/sh5080/utm-checker/pkg/interfaces"
	"github.com/sh5080/utm-checker/pkg/services/internal/utm"
	request "github.com/sh5080/utm-checker/pkg/types/dtos/requests"
	response "github.com/sh5080/utm-checker/pkg/types/dtos/responses"
	model "github.com/sh5080/utm-checker/pkg/types/models"
	"github.com/sh5080/utm-checker/pkg/utils"
)

const noneValue = "none"

// ValidationError는 검사할 수 없는 URL 형식 오류입니다
type ValidationError = utm.ValidationError

// ErrQuotedValue는 UTM 값에 따옴표가 포함된 경우의 오류입니다
var ErrQuotedValue = utm.ErrQuotedValue

// CheckImpl는 URL 검사 서비스 구현체입니다
type CheckImpl struct {
	classifier _interface.ChannelClassifier
	repository _interface.CheckRepository
	ttl        time.Duration
	now        func() time.Time
}

// 인터페이스 구현 확인
var _ _interface.CheckService = (*CheckImpl)(nil)

// NewCheckService는 새 검사 서비스를 생성합니다. repository 가 nil 이면 결과를 저장하지 않습니다.
func NewCheckService(classifier _interface.ChannelClassifier, repository _interface.CheckRepository, ttl time.Duration) *CheckImpl {
	return &CheckImpl{
		classifier: classifier,
		repository: repository,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Check는 URL의 UTM 파라미터를 검사하고 채널을 결정합니다.
// URL 형식 오류는 *utm.ValidationError, 따옴표 포함은 utm.ErrQuotedValue 를 반환합니다.
func (s *CheckImpl) Check(ctx context.Context, url string) (*response.Check, error) {
	params, err := utm.Parse(url)
	if err != nil {
		utils.Debug("check", "URL 검사 실패: %v", err)
		return nil, err
	}
	utils.Debug("check", "디코딩된 UTM: source=%q medium=%q campaign=%q platform=%q",
		params.Source, params.Medium, params.Campaign, params.Platform)

	channel := s.classifier.Classify(params.Source, params.Medium, params.Campaign, params.Platform)
	utils.RecordChannel(string(channel))

	result := &response.Check{
		Source:   orNone(params.Source),
		Medium:   orNone(params.Medium),
		Campaign: orNone(params.Campaign),
		Channel:  string(channel),
		Warning:  params.Warning(),
	}

	if s.repository != nil {
		now := s.now()
		record := &model.CheckRecord{
			CheckID:   uuid.New().String(),
			CheckedAt: now,
			ExpiresAt: now.Add(s.ttl),
			URL:       params.URL,
			Source:    result.Source,
			Medium:    result.Medium,
			Campaign:  result.Campaign,
			Platform:  params.Platform,
			Category:  string(s.classifier.Category(params.Source)),
			Channel:   result.Channel,
			Warning:   result.Warning,
		}

		// 저장 실패는 검사 결과에 영향을 주지 않음
		if err := s.repository.SaveCheck(ctx, record); err != nil {
			utils.Warn("check", "검사 결과 저장 실패: %v", err)
		} else {
			result.ID = record.CheckID
		}
	}

	return result, nil
}

// Classify는 이미 디코딩된 UTM 값으로 채널을 결정합니다
func (s *CheckImpl) Classify(_ context.Context, query request.ChannelQuery) *response.Channel {
	channel := s.classifier.Classify(query.Source, query.Medium, query.Campaign, query.Platform)
	utils.RecordChannel(string(channel))

	return &response.Channel{
		Source:   query.Source,
		Medium:   query.Medium,
		Campaign: query.Campaign,
		Platform: query.Platform,
		Category: string(s.classifier.Category(query.Source)),
		Channel:  string(channel),
	}
}

// GetCheck는 저장된 검사 결과를 조회합니다. 없으면 nil, nil 을 반환합니다
func (s *CheckImpl) GetCheck(ctx context.Context, id string) (*model.CheckRecord, error) {
	if s.repository == nil {
		return nil, nil
	}
	return s.repository.GetCheck(ctx, id)
}

func orNone(v string) string {
	if v == "" {
		return noneValue
	}
	return v
}
