package api

// ChatRequest is the body of a POST /chat call.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the success body returned by the chat backend.
type ChatResponse struct {
	Response string `json:"response"`
}
