package utm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr string
	}{
		{"https 유지", "https://example.com/?a=1", "https://example.com/?a=1", ""},
		{"http 유지", "http://example.com", "http://example.com", ""},
		{"프로토콜 추가", "example.com/page", "https://example.com/page", ""},
		{"호스트 없음", "https://", "", "Invalid URL format"},
		{"빈 문자열", "", "", "Invalid URL format"},
		{"너무 긴 URL", "https://example.com/?q=" + strings.Repeat("a", MaxURLLength), "", "URL is too long (max. 2000 characters)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeURL(tt.raw)
			if tt.wantErr != "" {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantErr, validationErr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	params, err := Parse("example.com/landing?utm_source=google&utm_medium=cpc&utm_campaign=spring%20sale&utm_source_platform=Google%20Ads")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/landing?utm_source=google&utm_medium=cpc&utm_campaign=spring%20sale&utm_source_platform=Google%20Ads", params.URL)
	assert.Equal(t, "google", params.Source)
	assert.Equal(t, "cpc", params.Medium)
	assert.Equal(t, "spring sale", params.Campaign)
	assert.Equal(t, "Google Ads", params.Platform)
	assert.True(t, params.HasQuery)
	// source_platform 은 대문자 경고 대상이 아님
	assert.Empty(t, params.UppercaseKeys)
	assert.Empty(t, params.Warning())
}

func TestParse_NoQuery(t *testing.T) {
	params, err := Parse("https://example.com/page")
	require.NoError(t, err)

	assert.False(t, params.HasQuery)
	assert.Empty(t, params.Source)
	assert.Equal(t, "No UTM parameters found", params.Warning())
}

func TestParse_LastValueWins(t *testing.T) {
	params, err := Parse("https://example.com/?utm_source=first&utm_source=second&flag&utm_medium=")
	require.NoError(t, err)

	assert.Equal(t, "second", params.Source)
	assert.Empty(t, params.Medium)
}

func TestParse_PlusIsNotSpace(t *testing.T) {
	params, err := Parse("https://example.com/?utm_campaign=a+b&utm_source=bad%zz")
	require.NoError(t, err)

	assert.Equal(t, "a+b", params.Campaign)
	// 잘못된 인코딩은 원본 유지
	assert.Equal(t, "bad%zz", params.Source)
}

func TestParse_UppercaseWarning(t *testing.T) {
	params, err := Parse("https://example.com/?utm_medium=CPC&utm_source=Google&utm_campaign=sale")
	require.NoError(t, err)

	assert.Equal(t, []string{KeyMedium, KeySource}, params.UppercaseKeys)
	assert.Equal(t,
		"The following UTM parameters contain uppercase letters; this should be avoided: utm_medium, utm_source",
		params.Warning())
}

func TestParse_QuotedValue(t *testing.T) {
	tests := []string{
		`https://example.com/?utm_source="google"`,
		"https://example.com/?utm_medium=%27cpc%27",
		"https://example.com/?utm_campaign=it's",
		"https://example.com/?utm_source_platform=%22ads%22",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			_, err := Parse(raw)
			assert.ErrorIs(t, err, ErrQuotedValue)
		})
	}
}

func TestParse_QuotesInOtherKeysIgnored(t *testing.T) {
	params, err := Parse("https://example.com/?ref=%22x%22&utm_source=google")
	require.NoError(t, err)
	assert.Equal(t, "google", params.Source)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"spring%20sale", "spring sale"},
		{"a%20b%zz", "a b%zz"},
		{"100%", "100%"},
		{"50%2", "50%2"},
		{"%ED%95%9C%EA%B8%80", "한글"},
		{"bad%FFbyte", "bad\uFFFDbyte"},
		{"line%0Abreak", "line\nbreak"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, decode(tt.raw))
		})
	}
}

func TestParse_MixedEscapes(t *testing.T) {
	params, err := Parse("https://example.com/?utm_campaign=a%20b%zz")
	require.NoError(t, err)
	assert.Equal(t, "a b%zz", params.Campaign)
}
