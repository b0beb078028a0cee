package place_test

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
	"stayhub/internal/domains/place/model/dto"
	serviceMocks "stayhub/internal/domains/place/service/mocks"
	"stayhub/internal/handlers/place"
	"stayhub/shared/constant"
	"stayhub/shared/failure"
	"stayhub/shared/flash"
	"stayhub/transport/http/view"
)

const testFlashSecret = "MDEyMzQ1Njc4OTAxMjM0NTY3ODkwMTIzNDU2Nzg5MDE="

func setup(t *testing.T) (*serviceMocks.MockPlace, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := serviceMocks.NewMockPlace(ctrl)

	cfg := &config.Config{}
	cfg.App.FlashSecret = testFlashSecret

	handler := place.New(mockService, view.New(), flash.New(cfg), mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return mockService, router
}

func postForm(router *chi.Mux, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/add_place", strings.NewReader(form.Encode()))
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	return rec
}

func validPlaceForm() url.Values {
	return url.Values{
		constant.FormFieldName:        {"Seaside Cabin"},
		constant.FormFieldDescription: {"Two rooms by the shore"},
		constant.FormFieldImageURL:    {"https://example.com/cabin.jpg"},
		constant.FormFieldAmount:      {"120.50"},
	}
}

func TestPlaceForm(t *testing.T) {
	_, router := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/add_place", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(constant.RequestHeaderContentType), "text/html")
}

func TestCreatePlace(t *testing.T) {
	t.Run("successful create redirects to the listing", func(t *testing.T) {
		mockService, router := setup(t)

		mockService.EXPECT().
			Create(gomock.Any(), dto.CreatePlaceRequest{
				Name:        "Seaside Cabin",
				Description: "Two rooms by the shore",
				ImageURL:    "https://example.com/cabin.jpg",
				Amount:      "120.50",
			}).
			Return(1, nil)

		rec := postForm(router, validPlaceForm())

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(constant.RequestHeaderLocation))

		cookies := rec.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, "stayhub_flash", cookies[0].Name)
	})

	t.Run("image url is free text", func(t *testing.T) {
		mockService, router := setup(t)

		form := validPlaceForm()
		form.Set(constant.FormFieldImageURL, "cabin.png")

		mockService.EXPECT().
			Create(gomock.Any(), dto.CreatePlaceRequest{
				Name:        "Seaside Cabin",
				Description: "Two rooms by the shore",
				ImageURL:    "cabin.png",
				Amount:      "120.50",
			}).
			Return(1, nil)

		rec := postForm(router, form)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(constant.RequestHeaderLocation))
	})

	t.Run("missing field never reaches the service", func(t *testing.T) {
		_, router := setup(t)

		form := validPlaceForm()
		form.Del(constant.FormFieldName)

		rec := postForm(router, form)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, rec.Header().Get(constant.RequestHeaderLocation))
	})

	t.Run("non-numeric amount", func(t *testing.T) {
		mockService, router := setup(t)

		form := validPlaceForm()
		form.Set(constant.FormFieldAmount, "abc")

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(0, failure.InvalidAmountField)

		rec := postForm(router, form)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "amount must be a number")
	})
}
