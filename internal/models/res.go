package models

type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(data interface{}, message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Message: message,
	}
}

func ErrorResponse(message string) ApiResponse {
	return ApiResponse{
		Success: false,
		Message: message,
	}
}

// InternalErrorResponse keeps the client-facing message generic while
// attaching the underlying error for diagnostics.
func InternalErrorResponse(message, detail string) ApiResponse {
	return ApiResponse{
		Success: false,
		Message: message,
		Error:   detail,
	}
}
