package postboard

// Response is the envelope every endpoint writes.
// Error is either a string or a list of strings.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Token   string `json:"token,omitempty"`
	Error   any    `json:"error,omitempty"`
}

// ListResponse is the success envelope for collection endpoints.
type ListResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

// OK wraps data in a success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Fail wraps an error payload in a failure envelope.
func Fail(payload any) Response {
	return Response{Success: false, Error: payload}
}

// EmptyData is the payload returned by operations that have nothing to report back.
var EmptyData = struct{}{}
