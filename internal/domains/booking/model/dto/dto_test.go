package dto_test

import (
	"testing"

	"stayhub/internal/domains/booking/model"
	"stayhub/internal/domains/booking/model/dto"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		UserName:    "Alice",
		UserAddress: "1 Main Street",
		BookingDate: "2026-09-01",
	}

	booking := req.ToModel(7)

	expected := model.Booking{
		UserName:    "Alice",
		UserAddress: "1 Main Street",
		BookingDate: "2026-09-01",
		PlaceID:     7,
	}

	if booking != expected {
		t.Errorf("expected model %+v, got %+v", expected, booking)
	}
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	models := []model.Booking{
		{ID: 1, UserName: "Alice", UserAddress: "1 Main Street", BookingDate: "2026-09-01", PlaceID: 7},
		{ID: 2, UserName: "Bob", UserAddress: "2 Side Street", BookingDate: "2026-09-02", PlaceID: 7},
	}

	var res dto.GetBookingsResponse
	res.FromModels(models)

	if res.TotalData != 2 {
		t.Errorf("expected total data 2, got %d", res.TotalData)
	}

	if len(res.Bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(res.Bookings))
	}

	if res.Bookings[0].UserName != "Alice" || res.Bookings[0].PlaceID != 7 {
		t.Errorf("unexpected first booking: %+v", res.Bookings[0])
	}

	if res.Bookings[1].Place.ID != 0 {
		t.Errorf("expected unresolved place, got %+v", res.Bookings[1].Place)
	}
}
