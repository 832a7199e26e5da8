package client

import (
	"time"

	"github.com/KlienGumapac/freedomewall/pkg/config"
	"github.com/KlienGumapac/freedomewall/pkg/logger"
	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
)

// UserAgent is sent on every request
const UserAgent = "wallctl/0.1.0"

var httpClient *resty.Client

// Init builds the HTTP client from the loaded config
func Init() {
	Configure(config.GetString("api.base_url"), time.Duration(config.GetInt("api.timeout"))*time.Second)
}

// Configure builds the HTTP client for baseURL. Any auth token is dropped.
func Configure(baseURL string, timeout time.Duration) {
	httpClient = resty.New()
	httpClient.SetBaseURL(baseURL)
	httpClient.SetTimeout(timeout)
	httpClient.SetHeader("User-Agent", UserAgent)
	httpClient.SetHeader("Accept", "application/json")
	httpClient.JSONMarshal = jsoniter.Marshal
	httpClient.JSONUnmarshal = jsoniter.Unmarshal

	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL)
		return nil
	})

	httpClient.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response",
			"status", resp.StatusCode(),
			"url", resp.Request.URL,
			"duration", resp.Time(),
		)
		return nil
	})
}

// GetClient returns the HTTP client
func GetClient() *resty.Client {
	if httpClient == nil {
		Init()
	}
	return httpClient
}

// SetAuthToken sends token as a bearer credential on every request
func SetAuthToken(token string) {
	GetClient().SetAuthToken(token)
}

// ClearAuthToken rebuilds the client without credentials
func ClearAuthToken() {
	c := GetClient()
	Configure(c.BaseURL, c.GetClient().Timeout)
}
