package dto

import "encoding/json"

// ChatRequest is the raw chat payload. Messages stays raw so a non-array
// value can be told apart from an empty one.
type ChatRequest struct {
	Messages json.RawMessage `json:"messages"`
}

// ChatMessage is one transcript entry sent by the browser.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatReply is the success body.
type ChatReply struct {
	Message string `json:"message"`
}

// ChatError is the failure body.
type ChatError struct {
	Error string `json:"error"`
}
