package dto

import (
	"stayhub/internal/domains/booking/model"

	placeDto "stayhub/internal/domains/place/model/dto"
)

type CreateBookingRequest struct {
	UserName    string `form:"user_name"    validate:"required,max=100"`
	UserAddress string `form:"user_address" validate:"required,max=200"`
	BookingDate string `form:"booking_date" validate:"required,max=50"`
}

func (c *CreateBookingRequest) ToModel(placeID int) model.Booking {
	return model.Booking{
		UserName:    c.UserName,
		UserAddress: c.UserAddress,
		BookingDate: c.BookingDate,
		PlaceID:     placeID,
	}
}

type BookingResponse struct {
	ID          int    `json:"id"`
	UserName    string `json:"user_name"`
	UserAddress string `json:"user_address"`
	BookingDate string `json:"booking_date"`
	PlaceID     int    `json:"place_id"`

	// Place is resolved by id for display; zero-valued when the referenced
	// place no longer resolves.
	Place placeDto.PlaceResponse `json:"place"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserName = model.UserName
	r.UserAddress = model.UserAddress
	r.BookingDate = model.BookingDate
	r.PlaceID = model.PlaceID
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	r.TotalData = len(models)

	for index, booking := range models {
		r.Bookings[index].FromModel(booking)
	}
}
