// Package weather fetches a short forecast from WeatherAPI. Failures
// degrade to "no forecast"; nothing here is fatal to the planner.
package weather

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var baseURL = "https://api.weatherapi.com/v1/forecast.json"

// DayForecast is one day of the forecast, reduced to what the planner shows.
type DayForecast struct {
	Label    string // "Today", "Tomorrow", "Day +2"
	Date     string
	AvgTempC int
	Icon     string
}

// Client queries WeatherAPI for a configured city.
type Client struct {
	city       string
	apiKey     string
	httpClient *http.Client
}

func NewClient(city, apiKey string) *Client {
	return &Client{
		city:       city,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type forecastResponse struct {
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				AvgTempC  float64 `json:"avgtemp_c"`
				Condition struct {
					Text string `json:"text"`
				} `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

// Forecast returns up to days of forecast for the configured city.
func (c *Client) Forecast(days int) ([]DayForecast, error) {
	if c.city == "" || c.apiKey == "" {
		return nil, fmt.Errorf("weather: city and api key required")
	}

	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("q", c.city)
	q.Set("days", fmt.Sprint(days))
	q.Set("aqi", "no")
	q.Set("alerts", "no")

	resp, err := c.httpClient.Get(baseURL + "?" + q.Encode())
	if err != nil {
		return nil, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather request: status %s", resp.Status)
	}

	var parsed forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	out := make([]DayForecast, 0, days)
	for i, fd := range parsed.Forecast.ForecastDay {
		if i >= days {
			break
		}
		out = append(out, DayForecast{
			Label:    dayLabel(i),
			Date:     fd.Date,
			AvgTempC: int(math.Round(fd.Day.AvgTempC)),
			Icon:     ConditionIcon(fd.Day.Condition.Text),
		})
	}
	return out, nil
}

func dayLabel(i int) string {
	switch i {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("Day +%d", i)
	}
}

// ConditionIcon classifies a condition text into a weather glyph.
func ConditionIcon(condition string) string {
	c := strings.ToLower(condition)
	switch {
	case strings.Contains(c, "rain"):
		return "🌧️"
	case strings.Contains(c, "snow"):
		return "❄️"
	case strings.Contains(c, "sun"), strings.Contains(c, "clear"):
		return "☀️"
	default:
		return "☁️"
	}
}
