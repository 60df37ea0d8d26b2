// Package weather answers weather questions through the OpenWeatherMap
// current-conditions API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/doeshing/iris-go/internal/domain"
	"github.com/doeshing/iris-go/internal/ports"
)

const defaultEndpoint = "https://api.openweathermap.org/data/2.5/weather"
const missingKeyReply = "I need an OpenWeatherMap API key to check the weather. Please configure it in your config file."

type apiResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// Service fetches current conditions and phrases them for speech output.
type Service struct {
	settings domain.WeatherSettings
	client   *http.Client
	getenv   func(string) string
	log      ports.Logger
}

func NewService(settings domain.WeatherSettings, log ports.Logger) *Service {
	return &Service{
		settings: settings,
		client: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: domain.ConnectTimeout}).DialContext,
			},
		},
		getenv: os.Getenv,
		log:    log,
	}
}

// CurrentWeather reports conditions for the configured default city.
func (s *Service) CurrentWeather(ctx context.Context) string {
	city := s.settings.DefaultCity
	if city == "" {
		city = "London"
	}
	return s.Weather(ctx, city)
}

// Weather reports conditions for a city in metric units.
func (s *Service) Weather(ctx context.Context, city string) string {
	key := s.apiKey()
	if key == "" {
		return missingKeyReply
	}

	endpoint := s.settings.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", key)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return "I encountered an error while fetching weather data: " + err.Error()
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "I encountered an error while fetching weather data: " + err.Error()
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "I couldn't find weather information for " + city
	}

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil || len(parsed.Weather) == 0 {
		return "I had trouble parsing the weather data."
	}

	return fmt.Sprintf(
		"The weather in %s is %s with a temperature of %.1f degrees Celsius. It feels like %.1f degrees with %d percent humidity.",
		city, parsed.Weather[0].Description, parsed.Main.Temp, parsed.Main.FeelsLike, parsed.Main.Humidity,
	)
}

func (s *Service) apiKey() string {
	if s.settings.KeyEnvVar != "" {
		if v := s.getenv(s.settings.KeyEnvVar); v != "" {
			return v
		}
	}
	return s.getenv("OPENWEATHER_API_KEY")
}

var _ ports.WeatherService = (*Service)(nil)
