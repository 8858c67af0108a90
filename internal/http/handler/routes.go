package handler

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/muhammadgalhoum/DPS/docs"
	"github.com/muhammadgalhoum/DPS/internal/service"
)

// Services bundles the use cases the HTTP layer depends on.
type Services struct {
	Upload service.UploadService
	Images service.ImageService
	PDFs   service.PDFService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/upload", Upload(svc.Upload))

	app.Get("/images", ListImages(svc.Images))
	app.Get("/images/:id", GetImage(svc.Images))
	app.Delete("/images/:id", DeleteImage(svc.Images))

	app.Get("/pdfs", ListPDFs(svc.PDFs))
	app.Get("/pdfs/:id", GetPDF(svc.PDFs))
	app.Delete("/pdfs/:id", DeletePDF(svc.PDFs))

	app.Post("/rotate", RotateImage(svc.Images))
	app.Post("/convert-pdf-to-image", ConvertPDF(svc.PDFs))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})
}
