package model

// Profile holds the user's display name and optional avatar image
// (a data URL, as stored by older versions).
type Profile struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// WeatherSettings configures the forecast collaborator.
type WeatherSettings struct {
	City   string `json:"city"`
	APIKey string `json:"apiKey"`
}
