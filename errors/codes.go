package errors

// ErrorCode identifies an application error class in responses and logs.
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL           ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT   ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD    ErrorCode = 1002
	ErrorCode_MISSING_MEDIA_FILE ErrorCode = 1003

	// AI pipeline
	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 2000
	ErrorCode_AI_CHAT_FAILED          ErrorCode = 2003

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 3000
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_MISSING_MEDIA_FILE:         "MISSING_MEDIA_FILE",
	ErrorCode_AI_TRANSCRIPTION_FAILED:    "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_CHAT_FAILED:             "AI_CHAT_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
