package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stayhub/infras/otel/mocks"
	placeMocks "stayhub/internal/domains/place/mocks"
	"stayhub/internal/domains/place/model"
	"stayhub/internal/domains/place/model/dto"
	"stayhub/internal/domains/place/service"
	"stayhub/shared/failure"
)

func TestPlaceService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := placeMocks.NewMockPlace(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	validReq := dto.CreatePlaceRequest{
		Name:        "Seaside Cabin",
		Description: "Two rooms by the shore",
		ImageURL:    "https://example.com/cabin.jpg",
		Amount:      "120.50",
	}

	tests := []struct {
		name      string
		req       dto.CreatePlaceRequest
		setupMock func()
		wantID    int
		wantErr   error
	}{
		{
			name: "successful create",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), model.Place{
						Name:        "Seaside Cabin",
						Description: "Two rooms by the shore",
						ImageURL:    "https://example.com/cabin.jpg",
						Amount:      120.50,
					}).
					Return(1, nil)
			},
			wantID: 1,
		},
		{
			name: "non-numeric amount never reaches the repository",
			req: dto.CreatePlaceRequest{
				Name:        "Seaside Cabin",
				Description: "Two rooms by the shore",
				ImageURL:    "https://example.com/cabin.jpg",
				Amount:      "abc",
			},
			setupMock: func() {},
			wantErr:   failure.InvalidAmountField,
		},
		{
			name: "insert error",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(0, errors.New("insert failed"))
			},
			wantErr: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			id, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr.Error())

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestPlaceService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := placeMocks.NewMockPlace(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	t.Run("returns places in fetch order", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any()).
			Return([]model.Place{
				{ID: 1, Name: "Seaside Cabin", Amount: 120.50},
				{ID: 2, Name: "City Loft", Amount: 200},
			}, nil)

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, "Seaside Cabin", res.Places[0].Name)
		assert.Equal(t, "City Loft", res.Places[1].Name)
	})

	t.Run("no places yet", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any()).
			Return([]model.Place{}, nil)

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, res.TotalData)
		assert.Empty(t, res.Places)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any()).
			Return(nil, errors.New("query failed"))

		_, err := svc.GetAll(context.Background())

		assert.Error(t, err)
	})
}

func TestPlaceService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := placeMocks.NewMockPlace(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	t.Run("existing place", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Place{ID: 7, Name: "Seaside Cabin", Amount: 120.50}, nil)

		res, err := svc.Get(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, 7, res.ID)
		assert.Equal(t, "Seaside Cabin", res.Name)
	})

	t.Run("unknown place", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Place{}, nil)

		_, err := svc.Get(context.Background(), 9999)

		assert.ErrorIs(t, err, failure.PlaceNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Place{}, errors.New("query failed"))

		_, err := svc.Get(context.Background(), 7)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, failure.PlaceNotFound)
	})
}
