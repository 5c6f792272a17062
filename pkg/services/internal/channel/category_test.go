package channel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	structure "github.com/sh5080/utm-checker/pkg/types/structures"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "sources.json", `{
  "google": "SOURCE_CATEGORY_SEARCH",
  "baidu.com": "SOURCE_CATEGORY_SEARCH",
  "m.facebook.com": "SOURCE_CATEGORY_SOCIAL",
  "YouTube": "SOURCE_CATEGORY_VIDEO",
  "amazon": "SOURCE_CATEGORY_SHOPPING",
  "legacy": "SOURCE_CATEGORY_UNKNOWN",
  "broken": 42
}`)

	table, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, table, 5)
	assert.Equal(t, structure.SourceCategorySearch, table.Get("baidu.com"))
	assert.Equal(t, structure.SourceCategorySocial, table.Get("m.facebook.com"))
	assert.Equal(t, structure.SourceCategoryVideo, table.Get("youtube"))
	assert.Equal(t, structure.SourceCategoryShopping, table.Get("AMAZON"))
	assert.Equal(t, structure.SourceCategoryNone, table.Get("legacy"))
	assert.Equal(t, structure.SourceCategoryNone, table.Get("broken"))
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "sources.yaml", `
google: SOURCE_CATEGORY_SEARCH
"search.naver.com": SOURCE_CATEGORY_SEARCH
instagram: SOURCE_CATEGORY_SOCIAL
`)

	table, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, table, 3)
	assert.Equal(t, structure.SourceCategorySearch, table.Get("search.naver.com"))
	assert.Equal(t, structure.SourceCategorySocial, table.Get("instagram"))
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "broken.json", `{"google": `))
	assert.Error(t, err)
}

func TestLoadOrEmpty(t *testing.T) {
	table := LoadOrEmpty(filepath.Join(t.TempDir(), "missing.json"))
	require.NotNil(t, table)
	assert.Empty(t, table)

	// 빈 테이블이어도 분류는 계속 동작
	c := NewClassifier(table)
	assert.Equal(t, structure.ChannelDirect, c.Classify("", "", "", ""))
}

func TestNewTable(t *testing.T) {
	table := NewTable(map[string]structure.SourceCategory{
		" Google ": structure.SourceCategorySearch,
		"other":    "SEARCH",
		"none":     structure.SourceCategoryNone,
	})

	assert.Len(t, table, 1)
	assert.Equal(t, structure.SourceCategorySearch, table.Get("google"))
}

func TestLoad_RepositorySourcesFile(t *testing.T) {
	table, err := Load(filepath.Join("..", "..", "..", "..", "sources.json"))
	require.NoError(t, err)

	assert.NotEmpty(t, table)
	assert.Equal(t, structure.SourceCategorySearch, table.Get("google"))
	assert.Equal(t, structure.SourceCategorySocial, table.Get("facebook"))
	assert.Equal(t, structure.SourceCategoryVideo, table.Get("youtube"))
	assert.Equal(t, structure.SourceCategoryShopping, table.Get("amazon"))
	for source, category := range table {
		assert.True(t, category.IsValid(), source)
	}
}
