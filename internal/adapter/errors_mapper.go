package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// envelope mirrors models.Envelope with the data left undecoded.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// decodeEnvelope parses the response body and maps unsuccessful envelopes
// to the package sentinels.
func decodeEnvelope(resp *resty.Response) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return envelope{}, fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), body)
	}

	if env.Success && resp.IsSuccess() {
		return env, nil
	}

	message := messageOf(env)
	switch resp.StatusCode() {
	case http.StatusNotFound:
		return envelope{}, fmt.Errorf("%w: %s", ErrNotFound, message)
	default:
		return envelope{}, fmt.Errorf("%w: http %d: %s", ErrRequestFailed, resp.StatusCode(), message)
	}
}

func messageOf(env envelope) string {
	var message string
	if err := json.Unmarshal(env.Data, &message); err != nil {
		return string(env.Data)
	}
	return message
}
