package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/muhammadgalhoum/DPS/internal/service"
)

const imageNotFound = "image not found"

// ListImages returns every stored image record.
//
// @Summary  List images
// @Tags     images
// @Produce  json
// @Success  200 {array}  model.Image
// @Failure  500 {object} errorPayload
// @Router   /images [get]
func ListImages(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, imageNotFound)
		}
		return c.JSON(items)
	}
}

// GetImage returns one image record.
//
// @Summary  Get an image
// @Tags     images
// @Produce  json
// @Param    id  path     int true "image id"
// @Success  200 {object} model.Image
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Router   /images/{id} [get]
func GetImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		img, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, imageNotFound)
		}
		return c.JSON(img)
	}
}

// DeleteImage removes an image record and its stored file.
//
// @Summary  Delete an image
// @Tags     images
// @Param    id  path     int true "image id"
// @Success  204
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Failure  500 {object} errorPayload
// @Router   /images/{id} [delete]
func DeleteImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err, imageNotFound)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// RotateImage returns a stored image rotated clockwise by angle degrees.
//
// @Summary      Rotate an image
// @Description  Positive angles turn clockwise, negative counter-clockwise. The canvas grows to fit. Nothing is stored.
// @Tags         transform
// @Accept       json
// @Produce      json
// @Param        body body     rotateRequest true "image id and angle"
// @Success      200  {object} rotateResponse
// @Failure      400  {object} errorPayload
// @Failure      404  {object} errorPayload "image or stored file not found"
// @Failure      500  {object} errorPayload
// @Router       /rotate [post]
func RotateImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req rotateRequest
		if err := decodeBody(c, &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "image_id and angle must be integers")
		}
		if !req.ImageID.Set || !req.Angle.Set {
			return writeError(c, fiber.StatusBadRequest, "MISSING_FIELDS", "image_id and angle are required")
		}

		out, err := svc.Rotate(c.UserContext(), req.ImageID.Value, int(req.Angle.Value))
		if err != nil {
			return writeServiceError(c, err, imageNotFound)
		}
		return c.JSON(rotateResponse{RotatedImage: out})
	}
}
