package mocks

import (
	"context"

	"github.com/muhammadgalhoum/DPS/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, dataURI string) (model.Record, error) {
	args := m.Called(ctx, dataURI)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Record), args.Error(1)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) List(ctx context.Context) ([]model.Image, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Image), args.Error(1)
}

func (m *MockImageService) Get(ctx context.Context, id int64) (*model.Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Image), args.Error(1)
}

func (m *MockImageService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockImageService) Rotate(ctx context.Context, id int64, angle int) (string, error) {
	args := m.Called(ctx, id, angle)
	return args.String(0), args.Error(1)
}

type MockPDFService struct {
	mock.Mock
}

func (m *MockPDFService) List(ctx context.Context) ([]model.PDF, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PDF), args.Error(1)
}

func (m *MockPDFService) Get(ctx context.Context, id int64) (*model.PDF, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PDF), args.Error(1)
}

func (m *MockPDFService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPDFService) Convert(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
