package domain

// ProbeResult is a spoke's answer to GET /status.
type ProbeResult struct {
	StatusCode int
	Body       []byte
}

// OK reports a 2xx answer.
func (r ProbeResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
