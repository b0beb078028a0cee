package booking_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stayhub/config"
	"stayhub/infras/otel/mocks"
	bookingDto "stayhub/internal/domains/booking/model/dto"
	bookingServiceMocks "stayhub/internal/domains/booking/service/mocks"
	placeDto "stayhub/internal/domains/place/model/dto"
	placeServiceMocks "stayhub/internal/domains/place/service/mocks"
	"stayhub/internal/handlers/booking"
	"stayhub/shared/constant"
	"stayhub/shared/failure"
	"stayhub/shared/flash"
	"stayhub/transport/http/view"
)

const testFlashSecret = "MDEyMzQ1Njc4OTAxMjM0NTY3ODkwMTIzNDU2Nzg5MDE="

func newTestFlash() *flash.Flash {
	cfg := &config.Config{}
	cfg.App.FlashSecret = testFlashSecret

	return flash.New(cfg)
}

func setup(t *testing.T) (*bookingServiceMocks.MockBooking, *placeServiceMocks.MockPlace, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := bookingServiceMocks.NewMockBooking(ctrl)
	mockPlaceService := placeServiceMocks.NewMockPlace(ctrl)

	handler := booking.New(mockService, mockPlaceService, view.New(), newTestFlash(), mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return mockService, mockPlaceService, router
}

func postForm(router *chi.Mux, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	return rec
}

func validBookingForm() url.Values {
	return url.Values{
		constant.FormFieldUserName:    {"Alice"},
		constant.FormFieldUserAddress: {"1 Main Street"},
		constant.FormFieldBookingDate: {"2026-09-01"},
	}
}

func TestBookingForm(t *testing.T) {
	t.Run("existing place", func(t *testing.T) {
		_, mockPlaceService, router := setup(t)

		mockPlaceService.EXPECT().
			Get(gomock.Any(), 7).
			Return(placeDto.PlaceResponse{ID: 7, Name: "Seaside Cabin", Amount: 120.50}, nil)

		req := httptest.NewRequest(http.MethodGet, "/book/7", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Seaside Cabin")
	})

	t.Run("unknown place", func(t *testing.T) {
		_, mockPlaceService, router := setup(t)

		mockPlaceService.EXPECT().
			Get(gomock.Any(), 9999).
			Return(placeDto.PlaceResponse{}, failure.PlaceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/book/9999", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "place not found")
	})

	t.Run("non-numeric place id", func(t *testing.T) {
		_, _, router := setup(t)

		req := httptest.NewRequest(http.MethodGet, "/book/abc", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreateBooking(t *testing.T) {
	t.Run("successful booking redirects to the listing", func(t *testing.T) {
		mockService, mockPlaceService, router := setup(t)

		mockPlaceService.EXPECT().
			Get(gomock.Any(), 7).
			Return(placeDto.PlaceResponse{ID: 7, Name: "Seaside Cabin"}, nil)

		mockService.EXPECT().
			Create(gomock.Any(), bookingDto.CreateBookingRequest{
				UserName:    "Alice",
				UserAddress: "1 Main Street",
				BookingDate: "2026-09-01",
			}, 7).
			Return(1, nil)

		rec := postForm(router, "/book/7", validBookingForm())

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(constant.RequestHeaderLocation))

		cookies := rec.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, "stayhub_flash", cookies[0].Name)
	})

	t.Run("unknown place aborts before the form is read", func(t *testing.T) {
		_, mockPlaceService, router := setup(t)

		mockPlaceService.EXPECT().
			Get(gomock.Any(), 9999).
			Return(placeDto.PlaceResponse{}, failure.PlaceNotFound)

		rec := postForm(router, "/book/9999", validBookingForm())

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Header().Get(constant.RequestHeaderLocation))
	})

	t.Run("unknown place wins over an empty form", func(t *testing.T) {
		_, mockPlaceService, router := setup(t)

		mockPlaceService.EXPECT().
			Get(gomock.Any(), 9999).
			Return(placeDto.PlaceResponse{}, failure.PlaceNotFound)

		rec := postForm(router, "/book/9999", url.Values{})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "place not found")
	})

	t.Run("missing field never reaches the service", func(t *testing.T) {
		_, mockPlaceService, router := setup(t)

		mockPlaceService.EXPECT().
			Get(gomock.Any(), 7).
			Return(placeDto.PlaceResponse{ID: 7, Name: "Seaside Cabin"}, nil)

		form := validBookingForm()
		form.Del(constant.FormFieldUserName)

		rec := postForm(router, "/book/7", form)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty form", func(t *testing.T) {
		_, mockPlaceService, router := setup(t)

		mockPlaceService.EXPECT().
			Get(gomock.Any(), 7).
			Return(placeDto.PlaceResponse{ID: 7, Name: "Seaside Cabin"}, nil)

		rec := postForm(router, "/book/7", url.Values{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
