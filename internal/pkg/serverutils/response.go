package serverutils

// Response is the standard success envelope for every endpoint.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ErrorBody is the failure envelope produced by the error handler middleware.
type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
