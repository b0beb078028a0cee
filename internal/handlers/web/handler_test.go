package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stayhub/config"
	"stayhub/infras/otel/mocks"
	"stayhub/internal/domains/place/model"
	"stayhub/internal/domains/place/model/dto"
	serviceMocks "stayhub/internal/domains/place/service/mocks"
	"stayhub/internal/handlers/web"
	"stayhub/shared/constant"
	"stayhub/shared/flash"
	"stayhub/transport/http/view"
)

const testFlashSecret = "MDEyMzQ1Njc4OTAxMjM0NTY3ODkwMTIzNDU2Nzg5MDE="

func setup(t *testing.T) (*serviceMocks.MockPlace, *flash.Flash, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := serviceMocks.NewMockPlace(ctrl)

	cfg := &config.Config{}
	cfg.App.FlashSecret = testFlashSecret
	flashHelper := flash.New(cfg)

	handler := web.New(mockService, view.New(), flashHelper, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return mockService, flashHelper, router
}

func placesResponse() dto.GetPlacesResponse {
	var res dto.GetPlacesResponse
	res.FromModels([]model.Place{
		{ID: 1, Name: "Seaside Cabin", Description: "Two rooms by the shore", ImageURL: "https://example.com/cabin.jpg", Amount: 120.50},
		{ID: 2, Name: "City Loft", Description: "Downtown loft", ImageURL: "https://example.com/loft.jpg", Amount: 200},
	})

	return res
}

func TestIndex(t *testing.T) {
	t.Run("lists every place", func(t *testing.T) {
		mockService, _, router := setup(t)

		mockService.EXPECT().
			GetAll(gomock.Any()).
			Return(placesResponse(), nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Seaside Cabin")
		assert.Contains(t, rec.Body.String(), "City Loft")
	})

	t.Run("renders the pending flash notice once", func(t *testing.T) {
		mockService, flashHelper, router := setup(t)

		mockService.EXPECT().
			GetAll(gomock.Any()).
			Return(placesResponse(), nil)

		seed := httptest.NewRecorder()
		flashHelper.Set(seed, constant.FlashBookingCreated)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(seed.Result().Cookies()[0])
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), constant.FlashBookingCreated)

		cookies := rec.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("no places yet", func(t *testing.T) {
		mockService, _, router := setup(t)

		mockService.EXPECT().
			GetAll(gomock.Any()).
			Return(dto.GetPlacesResponse{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockService, _, router := setup(t)

		mockService.EXPECT().
			GetAll(gomock.Any()).
			Return(dto.GetPlacesResponse{}, assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
