package handlers

// SpokeRequest is the body of POST /spokes.
type SpokeRequest struct {
	Name   string `json:"name"`
	IP     string `json:"ip"`
	Port   int    `json:"port"`
	APIKey string `json:"api_key"`
}

// SpokeResponse is one registered spoke.
type SpokeResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	IP     string `json:"ip"`
	Port   int    `json:"port"`
	APIKey string `json:"api_key"`
}

// MessageResponse acknowledges a write.
type MessageResponse struct {
	Message string `json:"message"`
}

// OfflineResponse is returned by the status proxy when the spoke cannot be reached.
type OfflineResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}
