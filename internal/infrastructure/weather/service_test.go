package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/doeshing/iris-go/internal/domain"
)

func newTestService(endpoint string, env map[string]string) *Service {
	s := NewService(domain.WeatherSettings{
		Endpoint:    endpoint,
		KeyEnvVar:   "OPENWEATHER_API_KEY",
		DefaultCity: "Taipei",
	}, nil)
	s.getenv = func(key string) string { return env[key] }
	return s
}

func TestWeatherFormatsConditions(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"q":     r.URL.Query().Get("q"),
			"appid": r.URL.Query().Get("appid"),
			"units": r.URL.Query().Get("units"),
		}
		w.Write([]byte(`{"main":{"temp":21.5,"feels_like":20.1,"humidity":64},"weather":[{"description":"scattered clouds"}]}`))
	}))
	defer srv.Close()

	s := newTestService(srv.URL, map[string]string{"OPENWEATHER_API_KEY": "wk-1"})

	got := s.Weather(context.Background(), "Tokyo")

	want := "The weather in Tokyo is scattered clouds with a temperature of 21.5 degrees Celsius. It feels like 20.1 degrees with 64 percent humidity."
	if got != want {
		t.Errorf("Weather() = %q, want %q", got, want)
	}
	if gotQuery["q"] != "Tokyo" || gotQuery["appid"] != "wk-1" || gotQuery["units"] != "metric" {
		t.Errorf("query params = %v", gotQuery)
	}
}

func TestWeatherMissingKey(t *testing.T) {
	s := newTestService("http://unused.invalid", nil)

	got := s.Weather(context.Background(), "Tokyo")

	if got != missingKeyReply {
		t.Errorf("Weather() = %q", got)
	}
}

func TestWeatherUnknownCity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s := newTestService(srv.URL, map[string]string{"OPENWEATHER_API_KEY": "wk-1"})

	got := s.Weather(context.Background(), "Atlantis")

	if got != "I couldn't find weather information for Atlantis" {
		t.Errorf("Weather() = %q", got)
	}
}

func TestWeatherMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"weather":[]}`))
	}))
	defer srv.Close()

	s := newTestService(srv.URL, map[string]string{"OPENWEATHER_API_KEY": "wk-1"})

	got := s.Weather(context.Background(), "Tokyo")

	if got != "I had trouble parsing the weather data." {
		t.Errorf("Weather() = %q", got)
	}
}

func TestCurrentWeatherUsesDefaultCity(t *testing.T) {
	var gotCity string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCity = r.URL.Query().Get("q")
		w.Write([]byte(`{"main":{"temp":18,"feels_like":17,"humidity":70},"weather":[{"description":"light rain"}]}`))
	}))
	defer srv.Close()

	s := newTestService(srv.URL, map[string]string{"OPENWEATHER_API_KEY": "wk-1"})

	s.CurrentWeather(context.Background())

	if gotCity != "Taipei" {
		t.Errorf("default city = %q, want Taipei", gotCity)
	}
}
