package utils

import (
	"reflect"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParseAndValidate는 쿼리 파라미터를 DTO로 변환하고 검증합니다.
// queries: 요청 쿼리 맵
// dto: 변환될 DTO 구조체 포인터
// 반환값: 실패 시 fiber.Error (형식 오류 400, 검증 오류 422)
func ParseAndValidate(queries map[string]string, dto interface{}) error {
	dtoValue := reflect.ValueOf(dto)
	if dtoValue.Kind() != reflect.Ptr || dtoValue.IsNil() || dtoValue.Elem().Kind() != reflect.Struct {
		return fiber.NewError(fiber.StatusInternalServerError, "DTO must be a non-nil struct pointer")
	}

	dtoElem := dtoValue.Elem()
	dtoType := dtoElem.Type()

	for i := 0; i < dtoElem.NumField(); i++ {
		field := dtoElem.Field(i)
		fieldName := jsonFieldName(dtoType.Field(i))

		queryValue, exists := queries[fieldName]
		if !exists || queryValue == "" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(queryValue)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			intVal, err := strconv.ParseInt(queryValue, 10, 64)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, fieldName+": must be an integer")
			}
			field.SetInt(intVal)
		case reflect.Bool:
			boolVal, err := strconv.ParseBool(queryValue)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, fieldName+": must be a boolean")
			}
			field.SetBool(boolVal)
		default:
			Debug("dto", "필드 %s의 타입 %s은(는) 지원되지 않습니다", fieldName, field.Kind())
		}
	}

	if errs := NewValidator().Validate(dto); errs.HasErrors() {
		Debug("dto", "유효성 검증 실패: %s", errs.Error())
		return fiber.NewError(fiber.StatusUnprocessableEntity, errs.Error())
	}

	return nil
}
