package dto

import (
	"strconv"

	"stayhub/internal/domains/place/model"
	"stayhub/shared/failure"
)

// CreatePlaceRequest carries the raw add-place form fields. Amount stays a
// string until ToModel coerces it, so a missing field and a malformed
// number surface as distinct messages.
type CreatePlaceRequest struct {
	Name        string `form:"name"        validate:"required,max=200"`
	Description string `form:"description" validate:"required"`
	ImageURL    string `form:"image_url"   validate:"required,max=200"`
	Amount      string `form:"amount"      validate:"required"`
}

func (c *CreatePlaceRequest) ToModel() (model.Place, error) {
	amount, err := strconv.ParseFloat(c.Amount, 64)
	if err != nil {
		return model.Place{}, failure.InvalidAmountField
	}

	return model.Place{
		Name:        c.Name,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Amount:      amount,
	}, nil
}

type PlaceResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Amount      float64 `json:"amount"`
}

func (r *PlaceResponse) FromModel(model model.Place) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.ImageURL = model.ImageURL
	r.Amount = model.Amount
}

type GetPlacesResponse struct {
	Places    []PlaceResponse `json:"places"`
	TotalData int             `json:"total_data"`
}

func (r *GetPlacesResponse) FromModels(models []model.Place) {
	r.Places = make([]PlaceResponse, len(models))
	r.TotalData = len(models)

	for index, place := range models {
		r.Places[index].FromModel(place)
	}
}
