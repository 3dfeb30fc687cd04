package response

// Body is the standard API envelope: successes carry {message, data},
// errors carry {message} only.
type Body struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success wraps a payload with its human-readable message.
func Success(message string, data interface{}) Body {
	return Body{Message: message, Data: data}
}

// Error wraps an error message without a data payload.
func Error(message string) Body {
	return Body{Message: message}
}
