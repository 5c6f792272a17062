package request

// CheckBody는 URL 검사 요청 본문입니다
type CheckBody struct {
	URL string `json:"url" validate:"required"`
}

// ChannelQuery는 디코딩된 UTM 값으로 채널을 조회하는 요청 쿼리입니다
type ChannelQuery struct {
	Source   string `json:"source,omitempty" validate:"max=500,noquotes"`
	Medium   string `json:"medium,omitempty" validate:"max=500,noquotes"`
	Campaign string `json:"campaign,omitempty" validate:"max=500,noquotes"`
	Platform string `json:"platform,omitempty" validate:"max=500,noquotes"`
}
