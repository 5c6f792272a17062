package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ValidationErrors는 필드별 유효성 검사 오류입니다
type ValidationErrors map[string]string

// Add는 ValidationErrors에 새 오류를 추가합니다
func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

// HasErrors는 ValidationErrors에 오류가 있는지 확인합니다
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// Error는 필드 이름 순으로 정렬된 오류 문자열을 반환합니다
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}

	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	errs := make([]string, 0, len(fields))
	for _, field := range fields {
		errs = append(errs, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return strings.Join(errs, ", ")
}

// StructValidator는 struct 태그를 기반으로 유효성을 검사합니다
type StructValidator struct{}

// NewValidator는 새 StructValidator를 생성합니다
func NewValidator() *StructValidator {
	return &StructValidator{}
}

// Validate는 구조체의 유효성을 검사합니다
// 지원되는 태그:
// - required: 필드가 비어있으면 안됨
// - min=n / max=n: 문자열은 글자 수(rune), 숫자는 값
// - noquotes: 문자열에 ' 또는 " 가 포함되면 안됨
// - regexp=pattern: 문자열은 정규식 패턴과 일치해야 함
func (v *StructValidator) Validate(data interface{}) ValidationErrors {
	errs := make(ValidationErrors)

	val := reflect.ValueOf(data)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		errs.Add("_error", "only structs can be validated")
		return errs
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		typeField := typ.Field(i)

		validateTag := typeField.Tag.Get("validate")
		if validateTag == "" {
			continue
		}

		fieldName := jsonFieldName(typeField)
		for _, rule := range strings.Split(validateTag, ",") {
			if msg := validateField(field, rule); msg != "" {
				errs.Add(fieldName, msg)
				break // 하나의 필드에 대해 첫 번째 오류만 보고
			}
		}
	}

	return errs
}

// jsonFieldName은 JSON 태그의 이름을 반환합니다 (없으면 구조체 필드 이름)
func jsonFieldName(f reflect.StructField) string {
	if tag := f.Tag.Get("json"); tag != "" {
		name := strings.Split(tag, ",")[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

// validateField는 단일 필드에 대한 유효성 검사 규칙을 적용합니다
func validateField(field reflect.Value, rule string) string {
	name, param, _ := strings.Cut(rule, "=")

	switch name {
	case "required":
		if field.IsZero() {
			return "is required"
		}
	case "min", "max":
		limit, err := strconv.Atoi(param)
		if err != nil {
			return fmt.Sprintf("invalid %s rule: %s", name, param)
		}
		return checkBound(field, name, limit)
	case "noquotes":
		if field.Kind() == reflect.String && strings.ContainsAny(field.String(), `"'`) {
			return "must not contain quote characters"
		}
	case "regexp":
		if field.Kind() == reflect.String && field.String() != "" {
			re, err := regexp.Compile(param)
			if err != nil || !re.MatchString(field.String()) {
				return fmt.Sprintf("does not match pattern %s", param)
			}
		}
	}

	return ""
}

// checkBound는 min/max 규칙을 검사합니다
func checkBound(field reflect.Value, rule string, limit int) string {
	var n int64
	unit := ""

	switch field.Kind() {
	case reflect.String:
		if field.String() == "" {
			return ""
		}
		n = int64(utf8.RuneCountInString(field.String()))
		unit = " characters"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = field.Int()
	default:
		return ""
	}

	if rule == "min" && n < int64(limit) {
		return fmt.Sprintf("must be at least %d%s", limit, unit)
	}
	if rule == "max" && n > int64(limit) {
		return fmt.Sprintf("must be at most %d%s", limit, unit)
	}
	return ""
}
