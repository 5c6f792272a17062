package structure

// Channel은 트래픽이 귀속되는 마케팅 채널 라벨입니다
type Channel string

const (
	ChannelDirect          Channel = "Direct"
	ChannelCrossNetwork    Channel = "Cross-network"
	ChannelPaidSearch      Channel = "Paid Search"
	ChannelPaidSocial      Channel = "Paid Social"
	ChannelPaidVideo       Channel = "Paid Video"
	ChannelPaidShopping    Channel = "Paid Shopping"
	ChannelPaidOther       Channel = "Paid Other"
	ChannelOrganicShopping Channel = "Organic Shopping"
	ChannelOrganicSocial   Channel = "Organic Social"
	ChannelOrganicVideo    Channel = "Organic Video"
	ChannelDisplay         Channel = "Display"
	ChannelOrganicSearch   Channel = "Organic Search"
	ChannelReferral        Channel = "Referral"
	ChannelEmail           Channel = "Email"
	ChannelAffiliates      Channel = "Affiliates"
	ChannelAudio           Channel = "Audio"
	ChannelSMS             Channel = "SMS"
	ChannelMobilePush      Channel = "Mobile Push Notifications"
	ChannelUnassigned      Channel = "Unassigned"
)

// Channels는 분류 결과로 나올 수 있는 모든 채널 목록입니다
var Channels = []Channel{
	ChannelDirect,
	ChannelCrossNetwork,
	ChannelPaidSearch,
	ChannelPaidSocial,
	ChannelPaidVideo,
	ChannelPaidShopping,
	ChannelPaidOther,
	ChannelOrganicShopping,
	ChannelOrganicSocial,
	ChannelOrganicVideo,
	ChannelDisplay,
	ChannelOrganicSearch,
	ChannelReferral,
	ChannelEmail,
	ChannelAffiliates,
	ChannelAudio,
	ChannelSMS,
	ChannelMobilePush,
	ChannelUnassigned,
}

// IsValid는 채널이 고정된 채널 목록에 속하는지 확인합니다
func (c Channel) IsValid() bool {
	for _, ch := range Channels {
		if c == ch {
			return true
		}
	}
	return false
}

// SourceCategory는 소스 카테고리 문서에 기록된 소스 분류 태그입니다
type SourceCategory string

const (
	SourceCategoryNone     SourceCategory = ""
	SourceCategorySearch   SourceCategory = "SOURCE_CATEGORY_SEARCH"
	SourceCategorySocial   SourceCategory = "SOURCE_CATEGORY_SOCIAL"
	SourceCategoryVideo    SourceCategory = "SOURCE_CATEGORY_VIDEO"
	SourceCategoryShopping SourceCategory = "SOURCE_CATEGORY_SHOPPING"
)

// IsValid는 문서에서 허용되는 네 가지 태그 중 하나인지 확인합니다
func (s SourceCategory) IsValid() bool {
	switch s {
	case SourceCategorySearch, SourceCategorySocial, SourceCategoryVideo, SourceCategoryShopping:
		return true
	}
	return false
}

// ChannelInput은 분류기에 전달되는 디코딩된 UTM 값입니다.
// 비어 있는 값은 분류 시 기본값("none", 플랫폼은 "")으로 대체됩니다.
type ChannelInput struct {
	Source   string
	Medium   string
	Campaign string
	Platform string
}
