package model

const (
	TableName  = "place"
	EntityName = "place"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldImageURL    = "image_url"
	FieldAmount      = "amount"
)

type Place struct {
	ID          int     `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	ImageURL    string  `db:"image_url"`
	Amount      float64 `db:"amount"`
}
