package response

// Envelope is the uniform response shape shared by every operation.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message,omitempty"`
	Body       any    `json:"body,omitempty"`
}

// NewMessage builds an envelope carrying only a message.
func NewMessage(status int, message string) Envelope {
	return Envelope{StatusCode: status, Message: message}
}

// NewBody builds an envelope carrying a payload.
func NewBody(status int, body any) Envelope {
	return Envelope{StatusCode: status, Body: body}
}

// List is the paginated payload shape. LastKey is the opaque cursor for the
// next page; it is absent when the listing is exhausted.
type List struct {
	Count   int    `json:"count"`
	LastKey string `json:"lastkey,omitempty"`
	Data    any    `json:"data"`
}
