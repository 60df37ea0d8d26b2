package router

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/iris-go/internal/domain"
)

type stubSystem struct {
	opened      []string
	volumes     []string
	powers      []string
	screenshots int
}

func (s *stubSystem) OpenApplication(name string) string {
	s.opened = append(s.opened, name)
	return "Opening " + name
}
func (s *stubSystem) SetVolume(direction string) string {
	s.volumes = append(s.volumes, direction)
	return "Volume " + direction
}
func (s *stubSystem) PowerCommand(action string) string {
	s.powers = append(s.powers, action)
	return "Power " + action
}
func (s *stubSystem) TakeScreenshot(path string) string {
	s.screenshots++
	return "Screenshot saved"
}
func (s *stubSystem) MinimizeWindow() string { return "Window minimized" }
func (s *stubSystem) MaximizeWindow() string { return "Window maximized" }
func (s *stubSystem) CloseWindow() string    { return "Window closed" }

type stubAuto struct {
	navigated []string
	typed     []string
	pressed   []string
	terminal  []string
}

func (a *stubAuto) NavigateToURL(url string) string {
	a.navigated = append(a.navigated, url)
	return "Navigating to " + url
}
func (a *stubAuto) TypeText(text string) string {
	a.typed = append(a.typed, text)
	return "Typed: " + text
}
func (a *stubAuto) PressKey(key string) string {
	a.pressed = append(a.pressed, key)
	return "Pressed " + key
}
func (a *stubAuto) ExecuteInTerminal(command string) string {
	a.terminal = append(a.terminal, command)
	return "Ran: " + command
}
func (a *stubAuto) SearchInBrowser(query string) string { return "Searched: " + query }

type stubWeb struct {
	google  []string
	youtube []string
	wiki    []string
}

func (w *stubWeb) SearchGoogle(query string) string {
	w.google = append(w.google, query)
	return "Searching Google for " + query
}
func (w *stubWeb) PlayYouTube(query string) string {
	w.youtube = append(w.youtube, query)
	return "Playing " + query
}
func (w *stubWeb) SearchWikipedia(query string) string {
	w.wiki = append(w.wiki, query)
	return "Wikipedia: " + query
}

type stubWeather struct{ cities []string }

func (w *stubWeather) CurrentWeather(ctx context.Context) string {
	w.cities = append(w.cities, "")
	return "Default city weather"
}
func (w *stubWeather) Weather(ctx context.Context, city string) string {
	w.cities = append(w.cities, city)
	return "Weather in " + city
}

type stubToolkit struct {
	nmapTargets []string
	nmapModes   []string
	hydra       []string
}

func (t *stubToolkit) NmapScan(target, mode string) string {
	t.nmapTargets = append(t.nmapTargets, target)
	t.nmapModes = append(t.nmapModes, mode)
	return "nmap done"
}
func (t *stubToolkit) GeneratePayload(platform, kind, lhost, lport string) string {
	return strings.Join([]string{platform, kind, lhost, lport}, " ")
}
func (t *stubToolkit) CrackPassword(hashFile, wordlist string) string {
	return hashFile + " " + wordlist
}
func (t *stubToolkit) CaptureAndAnalyze(iface string, durationSeconds int) string {
	return "captured"
}
func (t *stubToolkit) NetworkReport(iface string) string { return "report " + iface }
func (t *stubToolkit) DirBuster(url string) string       { return "dirs " + url }
func (t *stubToolkit) SQLMap(url string) string          { return "sqlmap " + url }
func (t *stubToolkit) Hydra(target, service, wordlist string) string {
	t.hydra = append(t.hydra, service+" "+target)
	return "hydra done"
}

type stubInspector struct{}

func (stubInspector) AnalyzeFile(path string) string { return "analyzed " + path }
func (stubInspector) CheckLink(url string) string    { return "checked " + url }

type stubAI struct {
	queries []string
	reply   string
}

func (a *stubAI) ProcessQuery(ctx context.Context, query string) string {
	a.queries = append(a.queries, query)
	if a.reply != "" {
		return a.reply
	}
	return "ai answer"
}
func (a *stubAI) SetManualMode(manual bool, backend domain.Provider) {}
func (a *stubAI) Mode() domain.AIMode                                { return domain.AIMode{} }
func (a *stubAI) CurrentBackend(ctx context.Context) domain.Provider {
	return domain.ProviderOllama
}
func (a *stubAI) AddToHistory(message string) {}
func (a *stubAI) History() []string           { return nil }
func (a *stubAI) ClearHistory()               {}

type stubPlanner struct {
	complex  bool
	executed []string
}

func (p *stubPlanner) IsComplex(utterance string) bool { return p.complex }
func (p *stubPlanner) Execute(ctx context.Context, utterance string) string {
	p.executed = append(p.executed, utterance)
	return "plan executed"
}

type fixture struct {
	router    *Router
	system    *stubSystem
	auto      *stubAuto
	web       *stubWeb
	weather   *stubWeather
	toolkit   *stubToolkit
	ai        *stubAI
	planner   *stubPlanner
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		system:  &stubSystem{},
		auto:    &stubAuto{},
		web:     &stubWeb{},
		weather: &stubWeather{},
		toolkit: &stubToolkit{},
		ai:      &stubAI{},
		planner: &stubPlanner{},
	}
	f.router = New(Deps{
		System:    f.system,
		Auto:      f.auto,
		Web:       f.web,
		Weather:   f.weather,
		Toolkit:   f.toolkit,
		Inspector: stubInspector{},
		AI:        f.ai,
	})
	f.router.AttachPlanner(f.planner)
	f.router.now = func() time.Time {
		return time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)
	}
	return f
}

func TestRouteTimeSkipsAI(t *testing.T) {
	f := newFixture(t)

	got := f.router.Route(context.Background(), "what time is it")

	if want := "The time is 2:30 PM"; got != want {
		t.Errorf("Route() = %q, want %q", got, want)
	}
	if len(f.ai.queries) != 0 {
		t.Errorf("AI backend was consulted for a time query: %v", f.ai.queries)
	}
}

func TestRouteDate(t *testing.T) {
	f := newFixture(t)

	got := f.router.Route(context.Background(), "what's the date today")

	if want := "Today is Friday, March 15, 2024"; got != want {
		t.Errorf("Route() = %q, want %q", got, want)
	}
}

func TestRouteTimeBeatsDate(t *testing.T) {
	f := newFixture(t)

	got := f.router.Route(context.Background(), "what's the date and time")

	if !strings.HasPrefix(got, "The time is") {
		t.Errorf("time should match before date, got %q", got)
	}
}

func TestRouteOpenStripsKeyword(t *testing.T) {
	f := newFixture(t)

	f.router.Route(context.Background(), "open firefox")

	if diff := cmp.Diff([]string{"firefox"}, f.system.opened); diff != "" {
		t.Errorf("opened apps mismatch (-want +got):\n%s", diff)
	}
}

func TestRouteComplexGoesToPlanner(t *testing.T) {
	f := newFixture(t)
	f.planner.complex = true

	got := f.router.Route(context.Background(), "open whatsapp web in firefox and send a message")

	if got != "plan executed" {
		t.Errorf("Route() = %q, want plan execution", got)
	}
	if len(f.planner.executed) != 1 {
		t.Fatalf("planner executed %d times, want 1", len(f.planner.executed))
	}
	if len(f.system.opened) != 0 {
		t.Errorf("open handler ran despite complex match: %v", f.system.opened)
	}
}

func TestRouteEmptyInput(t *testing.T) {
	f := newFixture(t)

	for _, input := range []string{"", "   ", "\t\n"} {
		if got := f.router.Route(context.Background(), input); got != domain.EmptyInputReply {
			t.Errorf("Route(%q) = %q, want empty-input reply", input, got)
		}
	}
	if len(f.ai.queries) != 0 {
		t.Errorf("AI backend was consulted for empty input")
	}
}

func TestRouteExitSentinel(t *testing.T) {
	f := newFixture(t)

	for _, input := range []string{"goodbye", "quit", "bye iris"} {
		if got := f.router.Route(context.Background(), input); got != domain.ExitSentinel {
			t.Errorf("Route(%q) = %q, want exit sentinel", input, got)
		}
	}
}

func TestRouteVolume(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		input string
		want  string
	}{
		{"volume up", "up"},
		{"increase the volume", "up"},
		{"turn the volume down", "down"},
		{"volume mute", "mute"},
	}
	for _, tt := range tests {
		f.router.Route(context.Background(), tt.input)
	}
	if diff := cmp.Diff([]string{"up", "up", "down", "mute"}, f.system.volumes); diff != "" {
		t.Errorf("volume directions mismatch (-want +got):\n%s", diff)
	}

	if got := f.router.Route(context.Background(), "volume sideways"); got != "I didn't understand that volume command" {
		t.Errorf("unrecognized volume direction: got %q", got)
	}
}

func TestRoutePower(t *testing.T) {
	f := newFixture(t)

	f.router.Route(context.Background(), "shutdown the computer")
	f.router.Route(context.Background(), "restart now")
	f.router.Route(context.Background(), "go to sleep")

	if diff := cmp.Diff([]string{"shutdown", "restart", "sleep"}, f.system.powers); diff != "" {
		t.Errorf("power actions mismatch (-want +got):\n%s", diff)
	}
}

func TestRouteWebSearches(t *testing.T) {
	f := newFixture(t)

	f.router.Route(context.Background(), "search google for golang generics")
	f.router.Route(context.Background(), "play lofi beats")
	f.router.Route(context.Background(), "alan turing wikipedia")

	if diff := cmp.Diff([]string{"golang generics"}, f.web.google); diff != "" {
		t.Errorf("google query mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"lofi beats"}, f.web.youtube); diff != "" {
		t.Errorf("youtube query mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"alan turing"}, f.web.wiki); diff != "" {
		t.Errorf("wikipedia query mismatch (-want +got):\n%s", diff)
	}
}

func TestRouteNavigation(t *testing.T) {
	f := newFixture(t)

	f.router.Route(context.Background(), "navigate to github.com")

	if diff := cmp.Diff([]string{"github.com"}, f.auto.navigated); diff != "" {
		t.Errorf("navigation targets mismatch (-want +got):\n%s", diff)
	}
}

func TestRouteKeyPressAliases(t *testing.T) {
	f := newFixture(t)

	f.router.Route(context.Background(), "press enter")
	f.router.Route(context.Background(), "press the escape key")
	f.router.Route(context.Background(), "press f5")

	if diff := cmp.Diff([]string{"Return", "Escape", "f5"}, f.auto.pressed); diff != "" {
		t.Errorf("pressed keys mismatch (-want +got):\n%s", diff)
	}
}

func TestRouteSecurityQueryWrapsPrompt(t *testing.T) {
	f := newFixture(t)
	f.ai.reply = "nmap -sV target"

	got := f.router.Route(context.Background(), "how do i scan for vulnerability")

	if !strings.HasPrefix(got, "SECURITY COMMANDS:\n\n") {
		t.Errorf("missing security banner: %q", got)
	}
	if len(f.ai.queries) != 1 {
		t.Fatalf("AI queries = %d, want 1", len(f.ai.queries))
	}
	if !strings.Contains(f.ai.queries[0], "Kali Linux security expert") {
		t.Errorf("security prompt not applied: %q", f.ai.queries[0])
	}
	if !strings.Contains(f.ai.queries[0], "how do i scan for vulnerability") {
		t.Errorf("original utterance missing from prompt: %q", f.ai.queries[0])
	}
}

func TestRouteNmapScan(t *testing.T) {
	f := newFixture(t)

	f.router.Route(context.Background(), "scan network 192.168.1.0/24")
	f.router.Route(context.Background(), "scan network 10.0.0.1 full")

	if diff := cmp.Diff([]string{"192.168.1.0/24", "10.0.0.1 full"}, f.toolkit.nmapTargets); diff != "" {
		t.Errorf("nmap targets mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"quick", "full"}, f.toolkit.nmapModes); diff != "" {
		t.Errorf("nmap modes mismatch (-want +got):\n%s", diff)
	}

	got := f.router.Route(context.Background(), "scan network")
	if !strings.Contains(got, "specify a target") {
		t.Errorf("missing target prompt: %q", got)
	}
}

func TestRouteUnmatchedFallsThroughToAI(t *testing.T) {
	f := newFixture(t)

	got := f.router.Route(context.Background(), "Tell me a joke about compilers")

	if got != "ai answer" {
		t.Errorf("Route() = %q, want AI fallback", got)
	}
	if diff := cmp.Diff([]string{"tell me a joke about compilers"}, f.ai.queries); diff != "" {
		t.Errorf("AI received wrong query (-want +got):\n%s", diff)
	}
}

func TestClassify(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		input string
		want  domain.Category
	}{
		{"what time is it", domain.CategoryTime},
		{"open spotify", domain.CategoryOpenApp},
		{"weather in taipei", domain.CategoryWeather},
		{"take a screenshot", domain.CategoryScreenshot},
		{"capture packets on eth0", domain.CategoryNetAnalysis},
		// "crack" is a security keyword, so the generic route shadows the
		// dedicated cracking route.
		{"crack password /tmp/h.txt", domain.CategorySecurity},
		{"", domain.CategoryDefaultAI},
		{"explain quantum tunneling", domain.CategoryDefaultAI},
	}
	for _, tt := range tests {
		if got := f.router.Classify(tt.input); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParsePayloadArgs(t *testing.T) {
	platform, kind, lhost, lport := parsePayloadArgs("create payload for windows reverse shell 192.168.1.5 9001")
	if platform != "windows" || kind != "reverse" || lhost != "192.168.1.5" || lport != "9001" {
		t.Errorf("got (%s, %s, %s, %s)", platform, kind, lhost, lport)
	}

	platform, kind, lhost, lport = parsePayloadArgs("generate payload")
	if platform != "windows" || kind != "reverse" || lhost != "127.0.0.1" || lport != "4444" {
		t.Errorf("defaults: got (%s, %s, %s, %s)", platform, kind, lhost, lport)
	}
}

func TestParseCaptureArgs(t *testing.T) {
	iface, dur := parseCaptureArgs("capture packets on wlan0 for 60")
	if iface != "wlan0" || dur != 60 {
		t.Errorf("got (%s, %d), want (wlan0, 60)", iface, dur)
	}

	iface, dur = parseCaptureArgs("capture packets")
	if iface != "" || dur != 15 {
		t.Errorf("defaults: got (%s, %d)", iface, dur)
	}
}

func TestParseBruteForceArgs(t *testing.T) {
	service, target, wordlist := parseBruteForceArgs("brute force ftp on 10.0.0.5 with rockyou")
	if service != "ftp" || target != "10.0.0.5" || wordlist != "/usr/share/wordlists/rockyou.txt" {
		t.Errorf("got (%s, %s, %s)", service, target, wordlist)
	}

	service, target, wordlist = parseBruteForceArgs("brute force")
	if service != "ssh" || target != "127.0.0.1" || wordlist != "" {
		t.Errorf("defaults: got (%s, %s, %s)", service, target, wordlist)
	}
}
