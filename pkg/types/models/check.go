package model

import (
	"time"
)

const (
	TableNameChecks = "UtmChecks"
)

// CheckRecord는 URL 검사 결과 한 건을 나타냅니다
type CheckRecord struct {
	// =================== 기본 식별 정보 ===================
	CheckID   string    `json:"id" dynamodbav:"CheckID"`          // 검사 ID (UUID) - 기본 키(Primary Key)
	CheckedAt time.Time `json:"checkedAt" dynamodbav:"checkedAt"` // 검사 시간
	ExpiresAt time.Time `json:"expiresAt" dynamodbav:"expiresAt"` // 만료 시간 - 조회 시 만료 판단
	TTL       int64     `json:"-" dynamodbav:"ttl,omitempty"`     // DynamoDB TTL 속성 (유닉스 초)

	// =================== 검사 입력/결과 ===================
	URL      string `json:"url" dynamodbav:"url"`
	Source   string `json:"utm_source" dynamodbav:"utmSource"`
	Medium   string `json:"utm_medium" dynamodbav:"utmMedium"`
	Campaign string `json:"utm_campaign" dynamodbav:"utmCampaign"`
	Platform string `json:"utm_source_platform,omitempty" dynamodbav:"utmSourcePlatform,omitempty"`
	Category string `json:"category,omitempty" dynamodbav:"category,omitempty"` // 소스 카테고리 태그
	Channel  string `json:"channel" dynamodbav:"channel"`
	Warning  string `json:"warning,omitempty" dynamodbav:"warning,omitempty"`
}

// IsExpired는 기준 시간에 만료되었는지 확인합니다
func (r *CheckRecord) IsExpired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && now.After(r.ExpiresAt)
}
