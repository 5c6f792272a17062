package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	_interface "github.com/sh5080/utm-checker/pkg/interfaces"
	"github.com/sh5080/utm-checker/pkg/services/api"
	requestDto "github.com/sh5080/utm-checker/pkg/types/dtos/requests"
	"github.com/sh5080/utm-checker/pkg/utils"
)

// CheckURL은 URL의 UTM 파라미터를 검사하는 핸들러입니다.
// includeID 가 false 이면 응답에서 저장된 검사 ID를 생략합니다.
func CheckURL(checkService _interface.CheckService, includeID bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.CheckBody
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body: "+err.Error())
		}
		if errs := utils.NewValidator().Validate(&req); errs.HasErrors() {
			return fiber.NewError(fiber.StatusUnprocessableEntity, errs.Error())
		}

		utils.Debug("check", "수신한 URL: %s", req.URL)

		result, err := checkService.Check(c.UserContext(), req.URL)
		if err != nil {
			return checkError(err)
		}
		if !includeID {
			result.ID = ""
		}

		utils.Debug("check", "최종 응답: %+v", *result)
		return c.JSON(result)
	}
}

// Channel은 디코딩된 UTM 값으로 채널을 조회하는 핸들러입니다
func Channel(checkService _interface.CheckService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var query requestDto.ChannelQuery
		if err := utils.ParseAndValidate(c.Queries(), &query); err != nil {
			return err
		}

		return c.JSON(checkService.Classify(c.UserContext(), query))
	}
}

// GetCheck는 저장된 검사 결과를 조회하는 핸들러입니다
func GetCheck(checkService _interface.CheckService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Params("id"))
		if _, err := uuid.Parse(id); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid check id")
		}

		record, err := checkService.GetCheck(c.UserContext(), id)
		if err != nil {
			utils.Error("check", "검사 결과 조회 실패 (%s): %v", id, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load check")
		}
		if record == nil {
			return fiber.NewError(fiber.StatusNotFound, "Check not found")
		}

		return c.JSON(record)
	}
}

// checkError는 검사 오류를 HTTP 오류로 변환합니다
func checkError(err error) error {
	var validationErr *api.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return fiber.NewError(fiber.StatusUnprocessableEntity, validationErr.Message)
	case errors.Is(err, api.ErrQuotedValue):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		utils.Error("check", "URL 검사 중 오류: %v", err)
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Error parsing URL or parameters: "+err.Error())
	}
}
