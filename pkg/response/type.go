package response

// Resp is the standard JSON error body. Success responses emit the resource
// payload directly; only failures use this envelope.
type Resp struct {
	Error string `json:"error"`
}
