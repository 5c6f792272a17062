package channel

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	structure "github.com/sh5080/utm-checker/pkg/types/structures"
	"github.com/sh5080/utm-checker/pkg/utils"
)

// Table은 소문자 소스 이름 -> 소스 카테고리 매핑입니다.
// 시작 시 한 번 로드된 뒤에는 읽기 전용으로만 사용됩니다.
type Table map[string]structure.SourceCategory

// Get은 소스의 카테고리를 대소문자 구분 없이 조회합니다
func (t Table) Get(source string) structure.SourceCategory {
	return t[strings.ToLower(source)]
}

// NewTable은 키를 소문자로 바꾸고 허용되지 않는 태그를 제외한 테이블을 만듭니다
func NewTable(categories map[string]structure.SourceCategory) Table {
	table := make(Table, len(categories))
	for source, category := range categories {
		if !category.IsValid() {
			utils.Warn("channel", "알 수 없는 소스 카테고리 건너뜀: %s=%s", source, category)
			continue
		}
		table[strings.ToLower(strings.TrimSpace(source))] = category
	}
	return table
}

// Load는 소스 카테고리 문서(JSON, YAML, TOML)를 읽어 Table을 만듭니다.
// 허용되지 않는 카테고리 태그를 가진 항목은 건너뜁니다.
func Load(path string) (Table, error) {
	// 기본 구분자(".")를 쓰면 "baidu.com" 같은 키가 중첩 맵으로 쪼개짐
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("소스 카테고리 파일 읽기 실패 (%s): %w", path, err)
	}

	settings := v.AllSettings()
	categories := make(map[string]structure.SourceCategory, len(settings))
	for source, raw := range settings {
		tag, ok := raw.(string)
		if !ok {
			utils.Warn("channel", "문자열이 아닌 소스 카테고리 건너뜀: %s=%v", source, raw)
			continue
		}
		categories[source] = structure.SourceCategory(strings.TrimSpace(tag))
	}

	return NewTable(categories), nil
}

// LoadOrEmpty는 Load 실패 시 오류를 기록하고 빈 테이블을 반환합니다.
// 빈 테이블이면 분류는 카테고리와 무관한 규칙만으로 진행됩니다.
func LoadOrEmpty(path string) Table {
	table, err := Load(path)
	if err != nil {
		utils.Error("channel", "소스 카테고리 로드 실패, 빈 테이블 사용: %v", err)
		return Table{}
	}
	utils.Info("channel", "소스 카테고리 %d개 로드 완료 (%s)", len(table), path)
	return table
}
