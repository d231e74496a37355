package aladhan

import (
	"fmt"
	"time"

	"github.com/sporadisk/prayercal/client"
)

// Client talks to the AlAdhan calendar API (https://aladhan.com/prayer-times-api).
// No authentication is required; every request carries the full calculation
// configuration as query parameters.
type Client struct {
	// Configuration
	Endpoint  string
	Address   string
	Year      int
	FajrAngle float64
	IshaAngle float64
	HanafiAsr bool

	// Retry behavior. Tries is the total attempt budget per month,
	// RetryPause the base of the linear backoff between attempts.
	Tries      int
	RetryPause time.Duration

	// State
	HttpClient *client.HttpClient
}

func (c *Client) Init() error {
	c.HttpClient = client.NewHttpClient(10 * time.Second)
	if c.Endpoint == "" {
		c.Endpoint = "http://api.aladhan.com/v1/"
	}
	if c.Tries == 0 {
		c.Tries = 5
	}
	if c.RetryPause == 0 {
		c.RetryPause = 5 * time.Second
	}
	if c.Address == "" {
		return fmt.Errorf("no address configured")
	}
	return nil
}

// baseParams builds the query parameters shared by every calendar request.
// Method 99 means "custom", with the Fajr and Isha angles supplied through
// methodSettings; the middle slot (Maghrib) is left at the API default.
func (c *Client) baseParams() map[string]string {
	school := "0"
	if c.HanafiAsr {
		school = "1"
	}

	return map[string]string{
		"address":        c.Address,
		"method":         "99",
		"methodSettings": fmt.Sprintf("%.1f,null,%.1f", c.FajrAngle, c.IshaAngle),
		"iso8601":        "true",
		"school":         school,
		"year":           fmt.Sprintf("%d", c.Year),
	}
}
