package aladhan

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// FetchError reports that a month's calendar could not be retrieved after
// the full retry budget. It is fatal for the run.
type FetchError struct {
	Month int
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("request for month %d failed: %s", e.Month, e.Err.Error())
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// CalendarByAddress fetches the configured year's calendar for one month
// (1..12), returning one Day per day of that month, in day order.
//
// Every failure is treated as retryable, with a linear backoff between
// attempts. Once the attempt budget is spent, the last error is wrapped in a
// *FetchError.
func (c *Client) CalendarByAddress(month int) ([]Day, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month out of range: %d", month)
	}

	var lastErr error
	for attempt := 0; attempt < c.Tries; attempt++ {
		if attempt > 0 {
			logrus.WithFields(logrus.Fields{
				"month":   month,
				"attempt": attempt + 1,
			}).WithError(lastErr).Warn("calendar request failed, retrying")

			time.Sleep(c.RetryPause * time.Duration(attempt-1))
		}

		days, err := c.fetchCalendar(month)
		if err == nil {
			return days, nil
		}
		lastErr = err
	}

	return nil, &FetchError{Month: month, Err: lastErr}
}

func (c *Client) fetchCalendar(month int) ([]Day, error) {
	params := c.baseParams()
	params["month"] = fmt.Sprintf("%d", month)

	resp, err := c.HttpClient.Get(c.Endpoint+"calendarByAddress", params)
	if err != nil {
		return nil, fmt.Errorf("calendarByAddress request: %w", err)
	}

	if resp.Code != 200 {
		return nil, fmt.Errorf("error: resp %d - %s", resp.Code, string(resp.Body))
	}

	var cr calendarResponse
	err = json.Unmarshal(resp.Body, &cr)
	if err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	// The API wraps its own status code in the JSON envelope as well.
	if cr.Code != 200 {
		return nil, fmt.Errorf("API error: code %d, status %q", cr.Code, cr.Status)
	}

	if len(cr.Data) == 0 {
		return nil, fmt.Errorf("API returned no days for month %d", month)
	}

	return cr.Data, nil
}
