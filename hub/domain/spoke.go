package domain

import (
	"net"
	"strconv"
	"strings"

	"lgsmfleet/apierr"
)

// Spoke is a registered agent host.
type Spoke struct {
	ID     int64
	Name   string
	IP     string
	Port   int
	APIKey string
}

// BaseURL is the spoke API root, e.g. http://10.0.0.5:49950.
func (s Spoke) BaseURL() string {
	return "http://" + net.JoinHostPort(s.IP, strconv.Itoa(s.Port))
}

// Validate checks the fields a registration must carry.
func (s Spoke) Validate() error {
	switch {
	case strings.TrimSpace(s.Name) == "":
		return apierr.NewBadParameterError("name is required", nil)
	case strings.TrimSpace(s.IP) == "":
		return apierr.NewBadParameterError("ip is required", nil)
	case s.Port < 1 || s.Port > 65535:
		return apierr.NewBadParameterError("port must be between 1 and 65535", nil)
	case s.APIKey == "":
		return apierr.NewBadParameterError("api_key is required", nil)
	}
	return nil
}

// SettingDiscordWebhook holds the webhook URL alerts are posted to.
const SettingDiscordWebhook = "discord_webhook"
