// Package provider is the HTTP client for the remote times service: a
// three-level location hierarchy (region / locality / subarea) and monthly
// batches of daily prayer times per subarea.
package provider

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tvardar/vakitd/internal/model"
)

const requestTimeout = 5 * time.Second

// DayRecord is one day of a monthly batch as the provider serves it. Date is
// "dd.MM.yyyy", the six times are "HH:MM"; the lunar fields are optional
// descriptive strings.
type DayRecord struct {
	Date      string `json:"date"`
	Dawn      string `json:"dawn"`
	Sunrise   string `json:"sunrise"`
	Midday    string `json:"midday"`
	Afternoon string `json:"afternoon"`
	Sunset    string `json:"sunset"`
	Night     string `json:"night"`

	LunarDateLong  string `json:"lunarDateLong,omitempty"`
	LunarDateShort string `json:"lunarDateShort,omitempty"`
}

// Times returns the six clock strings in fixed period order.
func (r *DayRecord) Times() [model.PeriodCount]string {
	return [model.PeriodCount]string{r.Dawn, r.Sunrise, r.Midday, r.Afternoon, r.Sunset, r.Night}
}

// Validate checks that every required field is present.
func (r *DayRecord) Validate() error {
	if r.Date == "" {
		return fmt.Errorf("record missing date")
	}
	for i, t := range r.Times() {
		if t == "" {
			return fmt.Errorf("record %s missing %s time", r.Date, model.PrayerPeriod(i))
		}
	}
	return nil
}

// Client talks to one provider base URL with a bounded per-request timeout.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Regions fetches the top level of the location hierarchy.
func (c *Client) Regions() ([]model.Region, error) {
	var out []model.Region
	if err := c.getJSON("/regions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Localities fetches the localities of a region.
func (c *Client) Localities(regionID string) ([]model.Locality, error) {
	var out []model.Locality
	if err := c.getJSON("/regions/"+regionID+"/localities", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Subareas fetches the subareas of a locality.
func (c *Client) Subareas(localityID string) ([]model.Subarea, error) {
	var out []model.Subarea
	if err := c.getJSON("/localities/"+localityID+"/subareas", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MonthlyTimes fetches the batch of daily records for a subarea; the
// provider returns up to 30 days starting from the current date.
func (c *Client) MonthlyTimes(subareaID string) ([]DayRecord, error) {
	var out []DayRecord
	if err := c.getJSON("/times/"+subareaID, &out); err != nil {
		return nil, err
	}
	for i := range out {
		if err := out[i].Validate(); err != nil {
			return nil, fmt.Errorf("malformed provider response: %w", err)
		}
	}
	return out, nil
}

func (c *Client) getJSON(path string, out any) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("provider request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("provider request %s: status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("provider response %s: %w", path, err)
	}
	return nil
}
