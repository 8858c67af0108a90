package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/muhammadgalhoum/DPS/internal/service"
)

const pdfNotFound = "pdf not found"

// ListPDFs returns every stored PDF record.
//
// @Summary  List PDFs
// @Tags     pdfs
// @Produce  json
// @Success  200 {array}  model.PDF
// @Failure  500 {object} errorPayload
// @Router   /pdfs [get]
func ListPDFs(svc service.PDFService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, pdfNotFound)
		}
		return c.JSON(items)
	}
}

// GetPDF returns one PDF record.
//
// @Summary  Get a PDF
// @Tags     pdfs
// @Produce  json
// @Param    id  path     int true "pdf id"
// @Success  200 {object} model.PDF
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Router   /pdfs/{id} [get]
func GetPDF(svc service.PDFService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		pdf, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, pdfNotFound)
		}
		return c.JSON(pdf)
	}
}

// DeletePDF removes a PDF record and its stored file.
//
// @Summary  Delete a PDF
// @Tags     pdfs
// @Param    id  path     int true "pdf id"
// @Success  204
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Failure  500 {object} errorPayload
// @Router   /pdfs/{id} [delete]
func DeletePDF(svc service.PDFService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err, pdfNotFound)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ConvertPDF renders every page of a stored PDF into one JPEG, pages stacked top to bottom.
//
// @Summary  Convert a PDF to one image
// @Tags     transform
// @Accept   json
// @Produce  json
// @Param    body body     convertRequest true "pdf id"
// @Success  200  {object} convertResponse
// @Failure  400  {object} errorPayload
// @Failure  404  {object} errorPayload "pdf or stored file not found"
// @Failure  500  {object} errorPayload
// @Router   /convert-pdf-to-image [post]
func ConvertPDF(svc service.PDFService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req convertRequest
		if err := decodeBody(c, &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "pdf_id must be an integer")
		}
		if !req.PDFID.Set {
			return writeError(c, fiber.StatusBadRequest, "MISSING_FIELDS", "pdf_id is required")
		}

		out, err := svc.Convert(c.UserContext(), req.PDFID.Value)
		if err != nil {
			return writeServiceError(c, err, pdfNotFound)
		}
		return c.JSON(convertResponse{CombinedImage: out})
	}
}
