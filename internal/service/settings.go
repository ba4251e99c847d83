package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"dayplanner/internal/model"
	"dayplanner/internal/repository"
)

// Theme palette names known to the presentation layer.
var knownThemes = map[string]bool{
	"green":  true,
	"blue":   true,
	"purple": true,
	"light":  true,
	"dark":   true,
}

const defaultTheme = "green"

// SettingsService is the form-to-storage plumbing for profile, theme,
// background image and weather settings. Each blob lives under its own
// record key; anything missing or unparsable degrades to a default.
type SettingsService struct {
	records *repository.RecordRepository
}

func NewSettingsService(records *repository.RecordRepository) *SettingsService {
	return &SettingsService{records: records}
}

// Profile returns the stored profile, or the default one.
func (s *SettingsService) Profile(ctx context.Context) model.Profile {
	fallback := model.Profile{Name: "Username"}
	raw, ok, err := s.records.Load(ctx, repository.KeyProfile)
	if err != nil || !ok {
		return fallback
	}
	var p model.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		log.Printf("[warn] stored profile unparsable: %v", err)
		return fallback
	}
	if p.Name == "" {
		p.Name = fallback.Name
	}
	return p
}

func (s *SettingsService) SaveProfile(ctx context.Context, p model.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return s.records.Save(ctx, repository.KeyProfile, string(data))
}

// Theme returns the stored palette name, falling back to the default for
// missing or unknown values.
func (s *SettingsService) Theme(ctx context.Context) string {
	raw, ok, err := s.records.Load(ctx, repository.KeyTheme)
	if err != nil || !ok || !knownThemes[raw] {
		return defaultTheme
	}
	return raw
}

func (s *SettingsService) SaveTheme(ctx context.Context, name string) error {
	if !knownThemes[name] {
		name = defaultTheme
	}
	return s.records.Save(ctx, repository.KeyTheme, name)
}

// Background returns the stored background image reference, empty when unset.
func (s *SettingsService) Background(ctx context.Context) string {
	raw, _, err := s.records.Load(ctx, repository.KeyBackground)
	if err != nil {
		return ""
	}
	return raw
}

// SaveBackground stores the image reference; an empty value removes it.
func (s *SettingsService) SaveBackground(ctx context.Context, image string) error {
	if image == "" {
		return s.records.Remove(ctx, repository.KeyBackground)
	}
	return s.records.Save(ctx, repository.KeyBackground, image)
}

// Weather returns the stored weather settings, zero-valued when unset.
func (s *SettingsService) Weather(ctx context.Context) model.WeatherSettings {
	raw, ok, err := s.records.Load(ctx, repository.KeyWeather)
	if err != nil || !ok {
		return model.WeatherSettings{}
	}
	var w model.WeatherSettings
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		log.Printf("[warn] stored weather settings unparsable: %v", err)
		return model.WeatherSettings{}
	}
	return w
}

func (s *SettingsService) SaveWeather(ctx context.Context, w model.WeatherSettings) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshal weather settings: %w", err)
	}
	return s.records.Save(ctx, repository.KeyWeather, string(data))
}
