package channel

import (
	"regexp"

	structure "github.com/sh5080/utm-checker/pkg/types/structures"
)

// Rule은 플랫폼/소스/매체/캠페인 패턴이 모두 일치할 때 적용되는 채널 규칙입니다.
// 모든 패턴은 대소문자 구분 없이 문자열 전체와 비교합니다.
type Rule struct {
	Platform *regexp.Regexp
	Source   *regexp.Regexp
	Medium   *regexp.Regexp
	Campaign *regexp.Regexp
	Channel  structure.Channel
}

// anchored는 패턴을 문자열 전체 일치, 대소문자 무시로 컴파일합니다
func anchored(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^(?:` + pattern + `)$`)
}

func newRule(platform, source, medium, campaign string, ch structure.Channel) Rule {
	return Rule{
		Platform: anchored(platform),
		Source:   anchored(source),
		Medium:   anchored(medium),
		Campaign: anchored(campaign),
		Channel:  ch,
	}
}

// Matches는 네 값이 모두 규칙 패턴과 일치하는지 확인합니다
func (r Rule) Matches(platform, source, medium, campaign string) bool {
	return r.Platform.MatchString(platform) &&
		r.Source.MatchString(source) &&
		r.Medium.MatchString(medium) &&
		r.Campaign.MatchString(campaign)
}

// anyValue는 줄바꿈을 포함한 모든 값과 일치합니다
const anyValue = `(?s:.*)`

// fallbackRules는 개별 규칙에 걸리지 않은 입력에 순서대로 적용됩니다. 순서 변경 금지.
// 매체/쇼핑 캠페인 패턴은 줄바꿈을 넘어 일치하지 않습니다.
var fallbackRules = []Rule{
	newRule(anyValue, `direct|none`, `none`, anyValue, structure.ChannelDirect),
	newRule(anyValue, anyValue, anyValue, `.*cross-network`+anyValue, structure.ChannelCrossNetwork),
	newRule(anyValue, anyValue, `.*cp.*|ppc|retargeting|paid.*`, `.*(([^a-df-z]|^)shop|shopping).*`, structure.ChannelPaidShopping),
}

// matchFallback은 첫 번째로 일치하는 대체 규칙의 채널을 반환합니다
func matchFallback(platform, source, medium, campaign string) (structure.Channel, bool) {
	for _, rule := range fallbackRules {
		if rule.Matches(platform, source, medium, campaign) {
			return rule.Channel, true
		}
	}
	return "", false
}
