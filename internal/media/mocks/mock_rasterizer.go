package mocks

import (
	"context"
	"image"

	"github.com/stretchr/testify/mock"
)

type MockRasterizer struct {
	mock.Mock
}

func (m *MockRasterizer) Rasterize(ctx context.Context, pdf []byte) ([]image.Image, error) {
	args := m.Called(ctx, pdf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]image.Image), args.Error(1)
}
