package scenario

// Config holds the addresses and keys of the running agent and hub.
type Config struct {
	SpokeURL    string
	SpokeAPIKey string
	// HubURL is optional; hub scenarios fail with ErrHubNotConfigured without it.
	HubURL    string
	HubAPIKey string
}
