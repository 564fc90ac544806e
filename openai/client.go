package openai

import (
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client wraps the OpenAI client for the non-scheduling answer path.
type Client struct {
	client *openai.Client
}

// NewClient creates an OpenAI client wrapper with the specified API key and
// HTTP client. The HTTP client allows for custom timeouts and proxies.
func NewClient(apiKey string, httpClient http.Client) Client {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&httpClient),
	)

	return Client{
		client: &client,
	}
}
