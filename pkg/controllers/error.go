package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	responseDto "github.com/sh5080/utm-checker/pkg/types/dtos/responses"
	"github.com/sh5080/utm-checker/pkg/utils"
)

// ErrorHandler는 모든 오류를 {"detail": "..."} 형식으로 응답합니다
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	detail := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		detail = fiberErr.Message
	}

	if code >= fiber.StatusInternalServerError {
		utils.Error("http", "%s %s 처리 실패: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(responseDto.Error{Detail: detail})
}
