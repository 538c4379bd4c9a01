// README: OpenWeatherMap client with a fail-safe contract.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const defaultBaseURL = "https://api.openweathermap.org"

// Client fetches current conditions from OpenWeatherMap. Every failure mode
// (missing key, network error, bad status, malformed body) degrades to
// Unavailable(); Current never returns an error.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
}

type currentResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

func (c *Client) Current(ctx context.Context, lat, lng float64) Summary {
	if c.apiKey == "" {
		return Unavailable()
	}

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lng))
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/data/2.5/weather?"+q.Encode(), nil)
	if err != nil {
		return Unavailable()
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Unavailable()
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Unavailable()
	}

	var body currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Unavailable()
	}
	if len(body.Weather) == 0 {
		return Unavailable()
	}

	cond := body.Weather[0]
	return Summary{
		Main:        cond.Main,
		Description: cond.Description,
		TempC:       body.Main.Temp,
		IsBad:       badConditions[cond.Main],
	}
}
