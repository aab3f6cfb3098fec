package health

// MessageResponse is the fixed acknowledgement record both probes return.
type MessageResponse struct {
	Message string `json:"message"`
}
