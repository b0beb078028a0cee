package constant

const (
	RequestParamPlaceID = "place_id"
)

const (
	FormFieldName        = "name"
	FormFieldDescription = "description"
	FormFieldImageURL    = "image_url"
	FormFieldAmount      = "amount"
	FormFieldUserName    = "user_name"
	FormFieldUserAddress = "user_address"
	FormFieldBookingDate = "booking_date"
	FormFieldFilterName  = "filter_name"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderContentDisposition = "Content-Disposition"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderLocation           = "Location"
)

const (
	ContentTypeJSON           = "application/json"
	ContentTypeHTML           = "text/html; charset=utf-8"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
	ContentTypeSpreadsheet    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF            = "application/pdf"
)

const (
	ExportFileNameSpreadsheet = "bookings.xlsx"
	ExportFileNameDocument    = "bookings.pdf"
)

const (
	FlashBookingCreated = "Booking successful!"
	FlashPlaceCreated   = "Place added successfully!"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
