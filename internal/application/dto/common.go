package dto

// ErrorResponse is the error body of the API. The view controller surfaces
// Error to the user when present and falls back to a generic message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the acknowledgement body for mutations that return no
// entity (cart add/remove, delete).
type MessageResponse struct {
	Message string `json:"message"`
}
