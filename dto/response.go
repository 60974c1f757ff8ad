package dto

// Response is the envelope returned by every single-entity operation and
// every failure. Data is omitted on failures and on delete confirmations.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse is the envelope for collection reads. Count always carries
// the sequence length, including 0 for an empty result.
type ListResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Data    interface{} `json:"data"`
}

// Failure builds an error envelope with the given message.
func Failure(message string) Response {
	return Response{Success: false, Message: message}
}
