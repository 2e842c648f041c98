package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent identifies requests made by the users API client.
const UserAgent = "users-api-client"

// HTTPClient embeds *resty.Client, so callers use the resty request API
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a JSON client bound to baseURL. A zero timeout means
// no client side limit. Every call builds its own transport.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
