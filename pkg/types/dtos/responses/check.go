package response

// Check는 URL 검사 응답입니다
type Check struct {
	ID       string `json:"id,omitempty"`
	Source   string `json:"utm_source"`
	Medium   string `json:"utm_medium"`
	Campaign string `json:"utm_campaign"`
	Channel  string `json:"channel"`
	Warning  string `json:"warning,omitempty"`
}

// Channel은 UTM 값 채널 조회 응답입니다
type Channel struct {
	Source   string `json:"source"`
	Medium   string `json:"medium"`
	Campaign string `json:"campaign"`
	Platform string `json:"platform"`
	Category string `json:"category,omitempty"`
	Channel  string `json:"channel"`
}

// Message는 단순 메시지 응답입니다
type Message struct {
	Message string `json:"message"`
}

// Error는 오류 응답입니다
type Error struct {
	Detail string `json:"detail"`
}
