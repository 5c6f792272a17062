package utm

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxURLLength는 검사할 수 있는 URL의 최대 길이(글자 수)입니다
	MaxURLLength = 2000

	KeySource   = "utm_source"
	KeyMedium   = "utm_medium"
	KeyCampaign = "utm_campaign"
	KeyPlatform = "utm_source_platform"
)

// 대문자 경고 대상 키 (source_platform 은 제외)
var warnKeys = map[string]bool{
	KeySource:   true,
	KeyMedium:   true,
	KeyCampaign: true,
}

// ErrQuotedValue는 UTM 값에 따옴표가 포함된 경우입니다
var ErrQuotedValue = errors.New("quotation marks in UTM parameters can cause problems and should be avoided")

// ValidationError는 URL 자체가 검사 불가능한 형식인 경우입니다
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Params는 URL에서 추출한 UTM 값입니다.
// 값이 없으면 빈 문자열이며, 디코딩된 값이 저장됩니다.
type Params struct {
	URL      string
	Source   string
	Medium   string
	Campaign string
	Platform string
	// HasQuery는 URL에 쿼리 문자열이 있었는지 여부입니다
	HasQuery bool
	// UppercaseKeys는 디코딩 전 값에 대문자가 포함된 키 목록입니다 (쿼리 순서)
	UppercaseKeys []string
}

// Warning은 사용자에게 보여줄 경고 문구를 반환합니다 (없으면 빈 문자열)
func (p *Params) Warning() string {
	if !p.HasQuery {
		return "No UTM parameters found"
	}
	if len(p.UppercaseKeys) > 0 {
		return "The following UTM parameters contain uppercase letters; this should be avoided: " +
			strings.Join(p.UppercaseKeys, ", ")
	}
	return ""
}

// NormalizeURL은 길이를 확인하고 프로토콜이 없으면 https:// 를 붙입니다
func NormalizeURL(raw string) (string, error) {
	if utf8.RuneCountInString(raw) > MaxURLLength {
		return "", &ValidationError{Message: fmt.Sprintf("URL is too long (max. %d characters)", MaxURLLength)}
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &ValidationError{Message: "Invalid URL format"}
	}
	return raw, nil
}

// Parse는 URL에서 UTM 파라미터를 추출합니다
func Parse(raw string) (*Params, error) {
	normalized, err := NormalizeURL(raw)
	if err != nil {
		return nil, err
	}

	// NormalizeURL 에서 이미 검증됨
	parsed, _ := url.Parse(normalized)
	params := &Params{URL: normalized}
	if parsed.RawQuery == "" {
		return params, nil
	}
	params.HasQuery = true

	keys, values := splitQuery(parsed.RawQuery)

	params.Source = decode(values[KeySource])
	params.Medium = decode(values[KeyMedium])
	params.Campaign = decode(values[KeyCampaign])
	params.Platform = decode(values[KeyPlatform])

	for _, v := range []string{params.Source, params.Medium, params.Campaign, params.Platform} {
		if strings.ContainsAny(v, `"'`) {
			return nil, ErrQuotedValue
		}
	}

	for _, key := range keys {
		if warnKeys[key] && hasUpper(values[key]) {
			params.UppercaseKeys = append(params.UppercaseKeys, key)
		}
	}

	return params, nil
}

// splitQuery는 "&" 로 나누고 "=" 가 있는 조각만 키/값으로 만듭니다.
// 같은 키가 반복되면 마지막 값이 사용되며, 키 순서는 처음 등장한 순서입니다.
func splitQuery(query string) ([]string, map[string]string) {
	var keys []string
	values := make(map[string]string)

	for _, part := range strings.Split(query, "&") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}
		values[key] = value
	}

	return keys, values
}

// decode는 퍼센트 인코딩을 해제합니다. "+" 는 공백으로 바꾸지 않으며
// 잘못된 이스케이프는 그대로 두고 나머지만 해제합니다.
// 디코딩 결과가 올바른 UTF-8 이 아니면 해당 부분을 U+FFFD 로 바꿉니다.
func decode(raw string) string {
	if !strings.Contains(raw, "%") {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '%' && i+2 < len(raw) && isHex(raw[i+1]) && isHex(raw[i+2]) {
			b.WriteByte(unhex(raw[i+1])<<4 | unhex(raw[i+2]))
			i += 2
			continue
		}
		b.WriteByte(raw[i])
	}
	return strings.ToValidUTF8(b.String(), "\uFFFD")
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
