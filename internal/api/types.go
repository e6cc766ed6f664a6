package api

// ChatRequest represents the request payload for /api/chat
type ChatRequest struct {
	Message string `json:"message"`
	Lang    string `json:"lang"`
}

// ChatResponse represents a successful chat reply
type ChatResponse struct {
	Reply string `json:"reply"`
}

// TTSRequest represents the request payload for /api/tts
type TTSRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}
