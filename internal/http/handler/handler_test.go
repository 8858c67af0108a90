package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/muhammadgalhoum/DPS/internal/http/middleware"
	"github.com/muhammadgalhoum/DPS/internal/model"
	"github.com/muhammadgalhoum/DPS/internal/service"
	serviceMocks "github.com/muhammadgalhoum/DPS/internal/service/mocks"
)

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var res errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpload(t *testing.T) {
	const uri = "data:image/jpeg;base64,/9j/4AAQ"

	tests := []struct {
		name       string
		body       string
		setupMock  func(m *serviceMocks.MockUploadService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "image created",
			body: `{"file":"` + uri + `"}`,
			setupMock: func(m *serviceMocks.MockUploadService) {
				m.On("Upload", mock.Anything, uri).
					Return(model.Image{ID: 1, Location: "images/a.jpeg", Width: 100, Height: 100, NumberOfChannels: 3}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "no body",
			body:       "",
			setupMock:  func(m *serviceMocks.MockUploadService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "FILE_REQUIRED",
		},
		{
			name:       "empty file",
			body:       `{"file":""}`,
			setupMock:  func(m *serviceMocks.MockUploadService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "FILE_REQUIRED",
		},
		{
			name:       "not json",
			body:       `file=abc`,
			setupMock:  func(m *serviceMocks.MockUploadService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_BODY",
		},
		{
			name: "undecodable file",
			body: `{"file":"` + uri + `"}`,
			setupMock: func(m *serviceMocks.MockUploadService) {
				m.On("Upload", mock.Anything, uri).
					Return(nil, fmt.Errorf("%w: bad", service.ErrInvalidInput)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_FILE",
		},
		{
			name: "unsupported type",
			body: `{"file":"` + uri + `"}`,
			setupMock: func(m *serviceMocks.MockUploadService) {
				m.On("Upload", mock.Anything, uri).
					Return(nil, fmt.Errorf("%w: gif", service.ErrUnsupportedMediaType)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "UNSUPPORTED_MEDIA_TYPE",
		},
		{
			name: "service error",
			body: `{"file":"` + uri + `"}`,
			setupMock: func(m *serviceMocks.MockUploadService) {
				m.On("Upload", mock.Anything, uri).Return(nil, errors.New("upload to storage: boom")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(serviceMocks.MockUploadService)
			tt.setupMock(mockSvc)

			app := fiber.New()
			app.Post("/upload", Upload(mockSvc))

			resp, err := app.Test(jsonRequest(http.MethodPost, "/upload", tt.body))
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantCode != "" {
				res := decodeError(t, resp)
				assert.Equal(t, tt.wantCode, res.Code)
				assert.NotContains(t, res.Error, "boom")
			} else {
				var img model.Image
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&img))
				assert.Equal(t, model.Image{ID: 1, Location: "images/a.jpeg", Width: 100, Height: 100, NumberOfChannels: 3}, img)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestUpload_PDFRecordShape(t *testing.T) {
	mockSvc := new(serviceMocks.MockUploadService)
	mockSvc.On("Upload", mock.Anything, mock.Anything).
		Return(model.PDF{ID: 4, Location: "pdfs/a.pdf", Width: 500, Height: 700, NumberOfPages: 1}, nil)

	app := fiber.New()
	app.Post("/upload", Upload(mockSvc))

	resp, err := app.Test(jsonRequest(http.MethodPost, "/upload", `{"file":"data:application/pdf;base64,JVBE"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]any{
		"id":              float64(4),
		"location":        "pdfs/a.pdf",
		"width":           float64(500),
		"height":          float64(700),
		"number_of_pages": float64(1),
	}, body)
}

func TestListImages(t *testing.T) {
	mockSvc := new(serviceMocks.MockImageService)
	app := fiber.New()
	app.Get("/images", ListImages(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).Return([]model.Image{{ID: 1}, {ID: 2}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/images", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result []model.Image
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result, 2)
		mockSvc.AssertExpectations(t)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).Return([]model.Image{}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/images", nil))

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(body))
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).Return(nil, errors.New("db down")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/images", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetImage(t *testing.T) {
	mockSvc := new(serviceMocks.MockImageService)
	app := fiber.New()
	app.Get("/images/:id", GetImage(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, int64(7)).Return(&model.Image{ID: 7, Width: 10}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/images/7", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result model.Image
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, int64(7), result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, int64(8)).Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/images/8", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "NOT_FOUND", res.Code)
		assert.Equal(t, "image not found", res.Error)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		for _, id := range []string{"abc", "0", "-3", "1.5"} {
			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/images/"+id, nil))

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, id)
			assert.Equal(t, "INVALID_ID", decodeError(t, resp).Code, id)
		}
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, int64(9)).Return(nil, sql.ErrConnDone).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/images/9", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeleteImage(t *testing.T) {
	mockSvc := new(serviceMocks.MockImageService)
	app := fiber.New()
	app.Delete("/images/:id", DeleteImage(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/images/1", nil))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, int64(2)).Return(service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/images/2", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("storage error", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, int64(3)).Return(errors.New("delete storage: permission denied")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/images/3", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "INTERNAL_ERROR", res.Code)
		assert.NotContains(t, res.Error, "permission")
		mockSvc.AssertExpectations(t)
	})
}

func TestRotateImage(t *testing.T) {
	const rotated = "data:image/png;base64,AAAA"

	tests := []struct {
		name       string
		body       string
		setupMock  func(m *serviceMocks.MockImageService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "numbers",
			body: `{"image_id":1,"angle":90}`,
			setupMock: func(m *serviceMocks.MockImageService) {
				m.On("Rotate", mock.Anything, int64(1), 90).Return(rotated, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "numeric strings and negative angle",
			body: `{"image_id":"1","angle":"-45"}`,
			setupMock: func(m *serviceMocks.MockImageService) {
				m.On("Rotate", mock.Anything, int64(1), -45).Return(rotated, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "zero angle",
			body: `{"image_id":1,"angle":0}`,
			setupMock: func(m *serviceMocks.MockImageService) {
				m.On("Rotate", mock.Anything, int64(1), 0).Return(rotated, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing angle",
			body:       `{"image_id":1}`,
			setupMock:  func(m *serviceMocks.MockImageService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "MISSING_FIELDS",
		},
		{
			name:       "missing body",
			body:       ``,
			setupMock:  func(m *serviceMocks.MockImageService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "MISSING_FIELDS",
		},
		{
			name:       "non-numeric angle",
			body:       `{"image_id":1,"angle":"ninety"}`,
			setupMock:  func(m *serviceMocks.MockImageService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_BODY",
		},
		{
			name: "image not found",
			body: `{"image_id":5,"angle":90}`,
			setupMock: func(m *serviceMocks.MockImageService) {
				m.On("Rotate", mock.Anything, int64(5), 90).Return("", service.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name: "stored file missing",
			body: `{"image_id":5,"angle":90}`,
			setupMock: func(m *serviceMocks.MockImageService) {
				m.On("Rotate", mock.Anything, int64(5), 90).Return("", service.ErrBlobMissing).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "FILE_NOT_FOUND",
		},
		{
			name: "processing error",
			body: `{"image_id":5,"angle":90}`,
			setupMock: func(m *serviceMocks.MockImageService) {
				m.On("Rotate", mock.Anything, int64(5), 90).
					Return("", fmt.Errorf("%w: corrupt", service.ErrRenderFailed)).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "PROCESSING_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(serviceMocks.MockImageService)
			tt.setupMock(mockSvc)

			app := fiber.New()
			app.Post("/rotate", RotateImage(mockSvc))

			resp, err := app.Test(jsonRequest(http.MethodPost, "/rotate", tt.body))
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, resp).Code)
			} else {
				var res rotateResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
				assert.Equal(t, rotated, res.RotatedImage)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestListPDFs(t *testing.T) {
	mockSvc := new(serviceMocks.MockPDFService)
	app := fiber.New()
	app.Get("/pdfs", ListPDFs(mockSvc))

	mockSvc.On("List", mock.Anything).Return([]model.PDF{{ID: 1, NumberOfPages: 3}}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/pdfs", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var result []model.PDF
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, []model.PDF{{ID: 1, NumberOfPages: 3}}, result)
	mockSvc.AssertExpectations(t)
}

func TestGetPDF(t *testing.T) {
	mockSvc := new(serviceMocks.MockPDFService)
	app := fiber.New()
	app.Get("/pdfs/:id", GetPDF(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, int64(2)).Return(&model.PDF{ID: 2, Width: 612, Height: 792}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/pdfs/2", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result model.PDF
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, 612.0, result.Width)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, int64(3)).Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/pdfs/3", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "pdf not found", decodeError(t, resp).Error)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/pdfs/x", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Code)
	})
}

func TestDeletePDF(t *testing.T) {
	mockSvc := new(serviceMocks.MockPDFService)
	app := fiber.New()
	app.Delete("/pdfs/:id", DeletePDF(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/pdfs/1", nil))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, int64(2)).Return(service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/pdfs/2", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}

func TestConvertPDF(t *testing.T) {
	const combined = "data:image/jpeg;base64,/9j/"

	tests := []struct {
		name       string
		body       string
		setupMock  func(m *serviceMocks.MockPDFService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "success",
			body: `{"pdf_id":3}`,
			setupMock: func(m *serviceMocks.MockPDFService) {
				m.On("Convert", mock.Anything, int64(3)).Return(combined, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "numeric string",
			body: `{"pdf_id":"3"}`,
			setupMock: func(m *serviceMocks.MockPDFService) {
				m.On("Convert", mock.Anything, int64(3)).Return(combined, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing pdf_id",
			body:       `{}`,
			setupMock:  func(m *serviceMocks.MockPDFService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "MISSING_FIELDS",
		},
		{
			name:       "null pdf_id",
			body:       `{"pdf_id":null}`,
			setupMock:  func(m *serviceMocks.MockPDFService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "MISSING_FIELDS",
		},
		{
			name: "pdf not found",
			body: `{"pdf_id":3}`,
			setupMock: func(m *serviceMocks.MockPDFService) {
				m.On("Convert", mock.Anything, int64(3)).Return("", service.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name: "stored file missing",
			body: `{"pdf_id":3}`,
			setupMock: func(m *serviceMocks.MockPDFService) {
				m.On("Convert", mock.Anything, int64(3)).Return("", service.ErrBlobMissing).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "FILE_NOT_FOUND",
		},
		{
			name: "render failure",
			body: `{"pdf_id":3}`,
			setupMock: func(m *serviceMocks.MockPDFService) {
				m.On("Convert", mock.Anything, int64(3)).Return("", service.ErrRenderFailed).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "PROCESSING_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(serviceMocks.MockPDFService)
			tt.setupMock(mockSvc)

			app := fiber.New()
			app.Post("/convert-pdf-to-image", ConvertPDF(mockSvc))

			resp, err := app.Test(jsonRequest(http.MethodPost, "/convert-pdf-to-image", tt.body))
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, resp).Code)
			} else {
				var res convertResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
				assert.Equal(t, combined, res.CombinedImage)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestFlexInt(t *testing.T) {
	tests := []struct {
		in      string
		want    flexInt
		wantErr bool
	}{
		{in: `90`, want: flexInt{Value: 90, Set: true}},
		{in: `-90`, want: flexInt{Value: -90, Set: true}},
		{in: `"12"`, want: flexInt{Value: 12, Set: true}},
		{in: `" 7 "`, want: flexInt{Value: 7, Set: true}},
		{in: `45.0`, want: flexInt{Value: 45, Set: true}},
		{in: `null`, want: flexInt{}},
		{in: `45.5`, wantErr: true},
		{in: `""`, wantErr: true},
		{in: `"abc"`, wantErr: true},
		{in: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got flexInt
			err := json.Unmarshal([]byte(tt.in), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})
	app.Use(middleware.RequestID())

	RegisterRoutes(app, nil, Services{
		Upload: new(serviceMocks.MockUploadService),
		Images: new(serviceMocks.MockImageService),
		PDFs:   new(serviceMocks.MockPDFService),
	})
	// fasthttp rejects oversized bodies before routing and hands
	// ErrRequestEntityTooLarge to the error handler.
	app.Post("/too-large", func(c *fiber.Ctx) error { return fiber.ErrRequestEntityTooLarge })

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "NOT_FOUND", res.Code)
		assert.Equal(t, resp.Header.Get(middleware.RequestIDHeader), res.RequestID)
	})

	t.Run("method not allowed", func(t *testing.T) {
		// Health endpoint only allows GET
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Code)
	})

	t.Run("body too large", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/too-large", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "FILE_TOO_LARGE", res.Code)
		assert.Equal(t, resp.Header.Get(middleware.RequestIDHeader), res.RequestID)
	})
}
