package channel

import (
	"regexp"
	"strings"

	structure "github.com/sh5080/utm-checker/pkg/types/structures"
)

const (
	// paidMediumPattern은 cpc/cpm/ppc/retargeting/paid* 형태의 유료 매체입니다
	paidMediumPattern = `(?i)^(.*cp.*|ppc|retargeting|paid.*)$`
	// shoppingCampaignPattern은 "shop"/"shopping"이 포함된 캠페인입니다.
	// shop 앞 글자는 a-d, f-z 가 아니어야 합니다 (e 는 허용).
	shoppingCampaignPattern = `(?i)^(.*(([^a-df-z]|^)shop|shopping).*)$`
	emailPattern            = `(?i)^(email|e-mail|e_mail|e mail)$`
	videoPattern            = `(?i)^.*video.*$`
)

var (
	paidMedium       = regexp.MustCompile(paidMediumPattern)
	shoppingCampaign = regexp.MustCompile(shoppingCampaignPattern)
	emailValue       = regexp.MustCompile(emailPattern)
	videoMedium      = regexp.MustCompile(videoPattern)
)

var (
	socialMediums  = set("social", "social-network", "social-media", "sm", "social network", "social media")
	displayMediums = set("display", "banner", "expandable", "interstitial", "cpm")
	referralMedium = set("referral", "app", "link")
)

func set(values ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

func in(m map[string]struct{}, v string) bool {
	_, ok := m[v]
	return ok
}

// Classifier는 소스 카테고리 테이블과 고정된 규칙 순서로 채널을 결정합니다.
// 테이블은 읽기 전용이므로 여러 고루틴에서 동시에 사용해도 안전합니다.
type Classifier struct {
	table Table
}

// NewClassifier는 주어진 테이블로 분류기를 생성합니다. nil 테이블은 빈 테이블로 취급합니다.
func NewClassifier(table Table) *Classifier {
	if table == nil {
		table = Table{}
	}
	return &Classifier{table: table}
}

// Table은 분류기가 사용하는 소스 카테고리 테이블을 반환합니다
func (c *Classifier) Table() Table {
	return c.table
}

// Category는 소스의 카테고리를 반환합니다 (정규화 포함)
func (c *Classifier) Category(source string) structure.SourceCategory {
	return c.table.Get(normalize(source, "none"))
}

// Classify는 UTM 값으로 채널을 결정합니다. 항상 고정된 채널 목록 중 하나를 반환합니다.
func (c *Classifier) Classify(source, medium, campaign, platform string) structure.Channel {
	us := normalize(source, "none")
	um := normalize(medium, "none")
	uc := normalize(campaign, "none")
	sp := normalize(platform, "")

	category := c.table.Get(us)
	paid := paidMedium.MatchString(um)

	// 카테고리별 유료 채널
	if paid {
		switch category {
		case structure.SourceCategorySearch:
			return structure.ChannelPaidSearch
		case structure.SourceCategorySocial:
			return structure.ChannelPaidSocial
		case structure.SourceCategoryVideo:
			return structure.ChannelPaidVideo
		case structure.SourceCategoryShopping:
			return structure.ChannelPaidShopping
		}
		return structure.ChannelPaidOther
	}

	// 여기부터 매체는 유료가 아님
	if category == structure.SourceCategoryShopping || shoppingCampaign.MatchString(uc) {
		return structure.ChannelOrganicShopping
	}
	if category == structure.SourceCategorySocial || in(socialMediums, um) {
		return structure.ChannelOrganicSocial
	}
	if category == structure.SourceCategoryVideo || videoMedium.MatchString(um) {
		return structure.ChannelOrganicVideo
	}
	// Display 는 Organic Search 보다 먼저 확인
	if in(displayMediums, um) {
		return structure.ChannelDisplay
	}
	if category == structure.SourceCategorySearch || um == "organic" {
		return structure.ChannelOrganicSearch
	}
	if in(referralMedium, um) {
		return structure.ChannelReferral
	}
	if emailValue.MatchString(us) || emailValue.MatchString(um) {
		return structure.ChannelEmail
	}
	if um == "affiliate" {
		return structure.ChannelAffiliates
	}
	if um == "audio" {
		return structure.ChannelAudio
	}
	if us == "sms" || um == "sms" {
		return structure.ChannelSMS
	}
	if strings.HasSuffix(um, "push") || strings.Contains(um, "mobile") ||
		strings.Contains(um, "notification") || us == "firebase" {
		return structure.ChannelMobilePush
	}

	if ch, ok := matchFallback(sp, us, um, uc); ok {
		return ch
	}

	return structure.ChannelUnassigned
}

// ClassifyInput은 ChannelInput 값으로 Classify 를 호출합니다
func (c *Classifier) ClassifyInput(in structure.ChannelInput) structure.Channel {
	return c.Classify(in.Source, in.Medium, in.Campaign, in.Platform)
}

// normalize는 앞뒤 공백을 제거하고 비어 있으면 기본값을 반환합니다
func normalize(value, fallback string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return fallback
	}
	return v
}
