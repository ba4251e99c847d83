package service

import (
	"context"
	"testing"

	"dayplanner/internal/model"
	"dayplanner/internal/repository"
)

func testSettings(t *testing.T) *SettingsService {
	t.Helper()
	db, err := repository.NewDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return NewSettingsService(repository.NewRecordRepository(db))
}

func TestProfileDefaultsAndRoundTrip(t *testing.T) {
	svc := testSettings(t)
	ctx := context.Background()

	if got := svc.Profile(ctx); got.Name != "Username" {
		t.Errorf("default profile name = %q", got.Name)
	}

	if err := svc.SaveProfile(ctx, model.Profile{Name: "Ada", Image: "img"}); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	got := svc.Profile(ctx)
	if got.Name != "Ada" || got.Image != "img" {
		t.Errorf("profile = %+v", got)
	}
}

func TestThemeValidation(t *testing.T) {
	svc := testSettings(t)
	ctx := context.Background()

	if got := svc.Theme(ctx); got != "green" {
		t.Errorf("default theme = %q", got)
	}

	if err := svc.SaveTheme(ctx, "dark"); err != nil {
		t.Fatalf("save theme: %v", err)
	}
	if got := svc.Theme(ctx); got != "dark" {
		t.Errorf("theme = %q, want dark", got)
	}

	// Unknown palettes fall back to the default.
	if err := svc.SaveTheme(ctx, "chartreuse"); err != nil {
		t.Fatalf("save theme: %v", err)
	}
	if got := svc.Theme(ctx); got != "green" {
		t.Errorf("theme after bogus save = %q, want green", got)
	}
}

func TestBackgroundSetAndClear(t *testing.T) {
	svc := testSettings(t)
	ctx := context.Background()

	if err := svc.SaveBackground(ctx, "image-bytes"); err != nil {
		t.Fatalf("save background: %v", err)
	}
	if got := svc.Background(ctx); got != "image-bytes" {
		t.Errorf("background = %q", got)
	}

	if err := svc.SaveBackground(ctx, ""); err != nil {
		t.Fatalf("clear background: %v", err)
	}
	if got := svc.Background(ctx); got != "" {
		t.Errorf("background after clear = %q", got)
	}
}

func TestWeatherSettingsRoundTrip(t *testing.T) {
	svc := testSettings(t)
	ctx := context.Background()

	if got := svc.Weather(ctx); got != (model.WeatherSettings{}) {
		t.Errorf("default weather settings = %+v", got)
	}

	want := model.WeatherSettings{City: "Hamburg", APIKey: "k"}
	if err := svc.SaveWeather(ctx, want); err != nil {
		t.Fatalf("save weather: %v", err)
	}
	if got := svc.Weather(ctx); got != want {
		t.Errorf("weather settings = %+v", got)
	}
}
