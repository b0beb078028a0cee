package model

const (
	TableName  = "booking"
	EntityName = "booking"

	FieldID          = "id"
	FieldUserName    = "user_name"
	FieldUserAddress = "user_address"
	FieldBookingDate = "booking_date"
	FieldPlaceID     = "place_id"
)

// Booking is a reservation request against a Place. BookingDate is kept as
// the free-form text the visitor typed; it is never parsed as a date.
type Booking struct {
	ID          int    `db:"id"`
	UserName    string `db:"user_name"`
	UserAddress string `db:"user_address"`
	BookingDate string `db:"booking_date"`
	PlaceID     int    `db:"place_id"`
}
