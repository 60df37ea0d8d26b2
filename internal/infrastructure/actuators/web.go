package actuators

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/doeshing/iris-go/internal/ports"
)

// Web opens search and media destinations in the configured browser.
type Web struct {
	browser string
	spawn   Spawner
	log     ports.Logger
}

func NewWeb(browser string, log ports.Logger) *Web {
	if browser == "" {
		browser = "firefox"
	}
	return &Web{
		browser: browser,
		spawn:   ShellSpawner(),
		log:     log,
	}
}

func (w *Web) SearchGoogle(query string) string {
	target := "https://www.google.com/search?q=" + url.QueryEscape(query)
	if err := w.open(target); err != nil {
		return "I couldn't perform the Google search: " + err.Error()
	}
	return "Searching Google for " + query
}

func (w *Web) PlayYouTube(query string) string {
	target := "https://www.youtube.com/results?search_query=" + url.QueryEscape(query)
	if err := w.open(target); err != nil {
		return "I couldn't open YouTube: " + err.Error()
	}
	return "Searching YouTube for " + query
}

// SearchWikipedia opens the article page directly. Wikipedia titles use
// underscores where the query had spaces.
func (w *Web) SearchWikipedia(query string) string {
	title := strings.ReplaceAll(url.QueryEscape(query), "+", "_")
	target := "https://en.wikipedia.org/wiki/" + title
	if err := w.open(target); err != nil {
		return "I couldn't open Wikipedia: " + err.Error()
	}
	return "Opening Wikipedia article for " + query
}

func (w *Web) open(target string) error {
	return w.spawn(fmt.Sprintf("%s '%s'", w.browser, target))
}

var _ ports.WebActuator = (*Web)(nil)
