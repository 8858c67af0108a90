package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/muhammadgalhoum/DPS/internal/service"
)

// Upload stores an image or PDF sent as a base64 data URI.
//
// @Summary      Upload a file
// @Description  Accepts jpg, jpeg and png images and PDF documents encoded as a data URI.
// @Tags         upload
// @Accept       json
// @Produce      json
// @Param        body body uploadRequest true "data URI"
// @Success      201 {object} model.Image "image record, or a model.PDF for PDF uploads"
// @Failure      400 {object} errorPayload
// @Failure      413 {object} errorPayload
// @Failure      500 {object} errorPayload
// @Router       /upload [post]
func Upload(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req uploadRequest
		if err := decodeBody(c, &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		if strings.TrimSpace(req.File) == "" {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		rec, err := svc.Upload(c.UserContext(), req.File)
		if err != nil {
			return writeServiceError(c, err, "")
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}
