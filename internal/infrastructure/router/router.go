// Package router classifies normalized utterances and dispatches them to
// actuators, the planner, or the AI backend. Categories are evaluated as an
// ordered list of predicates: the first match wins, with no scoring and no
// longest-match preference. The order is a behavioral contract; reordering
// routes changes what users get.
package router

import (
	"context"
	"strings"
	"time"

	"github.com/doeshing/iris-go/internal/domain"
	"github.com/doeshing/iris-go/internal/ports"
)

// Router walks the route table and invokes the first matching handler.
type Router struct {
	system    ports.SystemActuator
	auto      ports.AutomationActuator
	web       ports.WebActuator
	weather   ports.WeatherService
	toolkit   ports.SecurityToolkit
	inspector ports.FileInspector
	aiProc    ports.AIProcessor
	planner   ports.Planner
	log       ports.Logger

	now    func() time.Time
	routes []route
}

// route pairs a category with its predicate and handler. The table is data
// so ordering can be asserted in tests.
type route struct {
	category domain.Category
	match    func(string) bool
	handle   func(ctx context.Context, utterance string) string
}

// Deps carries the router's collaborators.
type Deps struct {
	System    ports.SystemActuator
	Auto      ports.AutomationActuator
	Web       ports.WebActuator
	Weather   ports.WeatherService
	Toolkit   ports.SecurityToolkit
	Inspector ports.FileInspector
	AI        ports.AIProcessor
	Logger    ports.Logger
}

// New builds a Router. The planner participates in routing but also routes
// plan steps back here, so it is attached after construction.
func New(deps Deps) *Router {
	r := &Router{
		system:    deps.System,
		auto:      deps.Auto,
		web:       deps.Web,
		weather:   deps.Weather,
		toolkit:   deps.Toolkit,
		inspector: deps.Inspector,
		aiProc:    deps.AI,
		log:       deps.Logger,
		now:       time.Now,
	}
	r.routes = r.buildRoutes()
	return r
}

// AttachPlanner wires the complex-command planner. Must be called before the
// first Route; the complex route is a no-op without it.
func (r *Router) AttachPlanner(p ports.Planner) {
	r.planner = p
}

// Route normalizes the utterance and walks the priority list. Empty input
// short-circuits before any predicate runs, and unmatched input falls
// through to the AI backend; there is no "unknown command" terminal state.
func (r *Router) Route(ctx context.Context, utterance string) string {
	normalized := strings.ToLower(strings.TrimSpace(utterance))
	if normalized == "" {
		return domain.EmptyInputReply
	}

	for _, rt := range r.routes {
		if rt.match(normalized) {
			if r.log != nil {
				r.log.Debug("routed command", map[string]interface{}{"category": string(rt.category)})
			}
			return rt.handle(ctx, normalized)
		}
	}
	return r.aiProc.ProcessQuery(ctx, normalized)
}

// Classify reports which category an utterance resolves to without running
// its handler. Blank input maps to the default AI category.
func (r *Router) Classify(utterance string) domain.Category {
	normalized := strings.ToLower(strings.TrimSpace(utterance))
	if normalized == "" {
		return domain.CategoryDefaultAI
	}
	for _, rt := range r.routes {
		if rt.match(normalized) {
			return rt.category
		}
	}
	return domain.CategoryDefaultAI
}

// securityKeywords trigger LLM-generated terminal guidance. Checked after
// the explicit automation routes but before the dedicated tool routes, so a
// bare "nmap" question reaches the LLM instead of the scanner wrapper.
var securityKeywords = []string{
	"hack", "crack", "exploit", "penetration", "pentest",
	"wifi password", "network scan", "port scan", "vulnerability",
	"sql injection", "xss", "brute force", "password crack",
	"metasploit", "nmap", "wireshark", "burp", "hydra",
	"aircrack", "sqlmap", "john", "ettercap",
}

// netAnalysisKeywords route to packet capture and analysis.
var netAnalysisKeywords = []string{
	"capture packets", "unwanted packets", "packet analysis", "wire shark",
	"network report", "analyze network", "check network", "unauthorized access",
	"network security", "scan my network", "http traffic", "analyze http",
	"extract credentials", "find credentials", "analyze dns", "dns analysis",
	"follow tcp", "tcp stream", "sensitive data", "data leak",
	"ssl certificate", "tls certificate", "extract files", "http objects",
	"bug bounty", "bugbounty", "pentest network", "network pentest",
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// stripAll removes trigger substrings in order. Order matters: later strips
// operate on the residue of earlier ones.
func stripAll(s string, subs ...string) string {
	for _, sub := range subs {
		s = strings.ReplaceAll(s, sub, "")
	}
	return strings.TrimSpace(s)
}

func (r *Router) buildRoutes() []route {
	return []route{
		{domain.CategoryComplex, r.isComplex, r.handleComplex},
		{domain.CategoryTime, func(s string) bool { return strings.Contains(s, "time") }, r.handleTime},
		{domain.CategoryDate, func(s string) bool { return strings.Contains(s, "date") }, r.handleDate},
		{domain.CategoryOpenApp, func(s string) bool { return strings.Contains(s, "open") }, r.handleOpen},
		{domain.CategoryVolume, func(s string) bool { return strings.Contains(s, "volume") }, r.handleVolume},
		{domain.CategoryPower, func(s string) bool {
			return containsAny(s, "shutdown", "restart", "sleep")
		}, r.handlePower},
		{domain.CategoryGoogle, func(s string) bool {
			return containsAny(s, "search google", "google")
		}, r.handleGoogleSearch},
		{domain.CategoryYouTube, func(s string) bool {
			return containsAny(s, "youtube", "play")
		}, r.handleYouTube},
		{domain.CategoryWikipedia, func(s string) bool { return strings.Contains(s, "wikipedia") }, r.handleWikipedia},
		{domain.CategoryWeather, func(s string) bool { return strings.Contains(s, "weather") }, r.handleWeather},
		{domain.CategoryNavigate, func(s string) bool {
			return containsAny(s, "go to", "navigate to")
		}, r.handleNavigation},
		{domain.CategoryType, func(s string) bool { return strings.Contains(s, "type") }, r.handleTyping},
		{domain.CategoryPress, func(s string) bool { return strings.Contains(s, "press") }, r.handleKeyPress},
		{domain.CategoryTerminal, func(s string) bool {
			return strings.Contains(s, "run") && strings.Contains(s, "terminal")
		}, r.handleTerminal},
		{domain.CategorySecurity, func(s string) bool {
			return containsAny(s, securityKeywords...)
		}, r.handleSecurityQuery},
		{domain.CategoryMinimize, func(s string) bool { return strings.Contains(s, "minimize") },
			func(ctx context.Context, s string) string { return r.system.MinimizeWindow() }},
		{domain.CategoryMaximize, func(s string) bool { return strings.Contains(s, "maximize") },
			func(ctx context.Context, s string) string { return r.system.MaximizeWindow() }},
		{domain.CategoryCloseWindow, func(s string) bool {
			return containsAny(s, "close window", "close this")
		}, func(ctx context.Context, s string) string { return r.system.CloseWindow() }},
		{domain.CategoryScreenshot, func(s string) bool {
			return containsAny(s, "screenshot", "take a picture")
		}, func(ctx context.Context, s string) string { return r.system.TakeScreenshot("") }},
		{domain.CategoryFileAnalysis, func(s string) bool {
			return containsAny(s, "analyze file", "scan file")
		}, r.handleFileAnalysis},
		{domain.CategoryLinkCheck, func(s string) bool {
			return containsAny(s, "check link", "check url")
		}, r.handleLinkCheck},
		{domain.CategoryNmap, func(s string) bool {
			return containsAny(s, "scan network", "nmap scan", "check open ports", "check ports")
		}, r.handleNmapScan},
		{domain.CategoryPayload, func(s string) bool {
			return containsAny(s, "create payload", "generate payload")
		}, r.handlePayload},
		{domain.CategoryCrack, func(s string) bool { return strings.Contains(s, "crack password") }, r.handleCrack},
		{domain.CategoryNetAnalysis, func(s string) bool {
			return containsAny(s, netAnalysisKeywords...)
		}, r.handleNetAnalysis},
		{domain.CategoryDirEnum, func(s string) bool {
			return containsAny(s, "enumerate directories", "directory scan")
		}, r.handleDirEnum},
		{domain.CategorySQLInjection, func(s string) bool {
			return containsAny(s, "test sql injection", "sqlmap")
		}, r.handleSQLInjection},
		{domain.CategoryBruteForce, func(s string) bool { return strings.Contains(s, "brute force") }, r.handleBruteForce},
		{domain.CategoryExit, func(s string) bool {
			return containsAny(s, "exit", "quit", "goodbye", "bye")
		}, func(ctx context.Context, s string) string { return domain.ExitSentinel }},
	}
}

func (r *Router) isComplex(s string) bool {
	if r.planner == nil {
		return false
	}
	return r.planner.IsComplex(s)
}

func (r *Router) handleComplex(ctx context.Context, s string) string {
	return r.planner.Execute(ctx, s)
}

func (r *Router) handleTime(ctx context.Context, s string) string {
	return "The time is " + r.now().Format(domain.ClockFormat)
}

func (r *Router) handleDate(ctx context.Context, s string) string {
	return "Today is " + r.now().Format(domain.DateFormat)
}

func (r *Router) handleOpen(ctx context.Context, s string) string {
	return r.system.OpenApplication(stripAll(s, "open"))
}

func (r *Router) handleVolume(ctx context.Context, s string) string {
	switch {
	case containsAny(s, "up", "increase"):
		return r.system.SetVolume("up")
	case containsAny(s, "down", "decrease"):
		return r.system.SetVolume("down")
	case strings.Contains(s, "mute"):
		return r.system.SetVolume("mute")
	}
	return "I didn't understand that volume command"
}

func (r *Router) handlePower(ctx context.Context, s string) string {
	switch {
	case strings.Contains(s, "shutdown"):
		return r.system.PowerCommand("shutdown")
	case containsAny(s, "restart", "reboot"):
		return r.system.PowerCommand("restart")
	case containsAny(s, "sleep", "suspend"):
		return r.system.PowerCommand("sleep")
	}
	return "I didn't understand that power command"
}

func (r *Router) handleGoogleSearch(ctx context.Context, s string) string {
	return r.web.SearchGoogle(stripAll(s, "search google for", "google", "search for"))
}

func (r *Router) handleYouTube(ctx context.Context, s string) string {
	return r.web.PlayYouTube(stripAll(s, "youtube", "play", "on youtube"))
}

func (r *Router) handleWikipedia(ctx context.Context, s string) string {
	return r.web.SearchWikipedia(stripAll(s, "wikipedia", "search wikipedia for", "on wikipedia"))
}

func (r *Router) handleWeather(ctx context.Context, s string) string {
	city := stripAll(s, "weather", "in", "what's the", "what is the")
	if city == "" {
		return r.weather.CurrentWeather(ctx)
	}
	return r.weather.Weather(ctx, city)
}

func (r *Router) handleNavigation(ctx context.Context, s string) string {
	return r.auto.NavigateToURL(stripAll(s, "go to", "navigate to", "open"))
}

func (r *Router) handleTyping(ctx context.Context, s string) string {
	return r.auto.TypeText(stripAll(s, "type"))
}

// keyAliases normalizes spoken key names to X11 keysyms.
var keyAliases = []struct {
	spoken string
	keysym string
}{
	{"enter", "Return"},
	{"return", "Return"},
	{"escape", "Escape"},
	{"esc", "Escape"},
	{"tab", "Tab"},
	{"space", "space"},
	{"backspace", "BackSpace"},
	{"delete", "Delete"},
}

func (r *Router) handleKeyPress(ctx context.Context, s string) string {
	key := stripAll(s, "press", "key")
	for _, alias := range keyAliases {
		if strings.Contains(key, alias.spoken) {
			key = alias.keysym
			break
		}
	}
	return r.auto.PressKey(key)
}

func (r *Router) handleTerminal(ctx context.Context, s string) string {
	return r.auto.ExecuteInTerminal(stripAll(s, "run", "in terminal", "terminal"))
}

func (r *Router) handleSecurityQuery(ctx context.Context, s string) string {
	prompt := "You are a Kali Linux security expert. The user asked: '" + s + "'. " +
		"Provide the terminal command(s) to accomplish this task with brief explanations. " +
		"Format: Command followed by brief explanation. " +
		"Keep it concise and practical for Kali Linux."
	return "SECURITY COMMANDS:\n\n" + r.aiProc.ProcessQuery(ctx, prompt)
}

func (r *Router) handleFileAnalysis(ctx context.Context, s string) string {
	path := stripAll(s, "analyze file", "scan file")
	if path == "" {
		return "Please specify a file path. Example: analyze file /path/to/file"
	}
	return r.inspector.AnalyzeFile(path)
}

func (r *Router) handleLinkCheck(ctx context.Context, s string) string {
	url := stripAll(s, "check link", "check url")
	if url == "" {
		return "Please specify a URL. Example: check link https://example.com"
	}
	return r.inspector.CheckLink(ensureScheme(url))
}

func (r *Router) handleNmapScan(ctx context.Context, s string) string {
	target := stripAll(s, "scan network", "nmap scan", "check open ports", "check ports")
	if target == "" {
		return "Please specify a target. Example: scan network 192.168.1.0/24"
	}
	mode := "quick"
	switch {
	case strings.Contains(s, "full"):
		mode = "full"
	case strings.Contains(s, "os"):
		mode = "os"
	}
	return r.toolkit.NmapScan(target, mode)
}

func (r *Router) handlePayload(ctx context.Context, s string) string {
	platform, kind, lhost, lport := parsePayloadArgs(s)
	return r.toolkit.GeneratePayload(platform, kind, lhost, lport)
}

func (r *Router) handleCrack(ctx context.Context, s string) string {
	hashFile, wordlist := parseCrackArgs(s)
	if hashFile == "" {
		return "Please specify a hash file. Example: crack password /tmp/hashes.txt with rockyou"
	}
	return r.toolkit.CrackPassword(hashFile, wordlist)
}

func (r *Router) handleNetAnalysis(ctx context.Context, s string) string {
	iface, duration := parseCaptureArgs(s)
	if containsAny(s, "network report", "network status") {
		return r.toolkit.NetworkReport(iface)
	}
	return r.toolkit.CaptureAndAnalyze(iface, duration)
}

func (r *Router) handleDirEnum(ctx context.Context, s string) string {
	url := stripAll(s, "enumerate directories on", "enumerate directories", "directory scan")
	if url == "" {
		return "Please specify a URL. Example: enumerate directories on https://example.com"
	}
	return r.toolkit.DirBuster(ensureScheme(url))
}

func (r *Router) handleSQLInjection(ctx context.Context, s string) string {
	url := stripAll(s, "test sql injection on", "test sql injection", "sqlmap")
	if url == "" {
		return "Please specify a URL. Example: test sql injection on https://example.com/login?id=1"
	}
	return r.toolkit.SQLMap(ensureScheme(url))
}

func (r *Router) handleBruteForce(ctx context.Context, s string) string {
	service, target, wordlist := parseBruteForceArgs(s)
	return r.toolkit.Hydra(target, service, wordlist)
}

func ensureScheme(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "https://" + url
}

var _ ports.CommandRouter = (*Router)(nil)
