package domain

// Category identifies a router-recognized command class. Categories are
// mutually exclusive by priority order: the first matching predicate wins
// even when several could match.
type Category string

const (
	CategoryComplex      Category = "complex"
	CategoryTime         Category = "time"
	CategoryDate         Category = "date"
	CategoryOpenApp      Category = "open_app"
	CategoryVolume       Category = "volume"
	CategoryPower        Category = "power"
	CategoryGoogle       Category = "google_search"
	CategoryYouTube      Category = "youtube"
	CategoryWikipedia    Category = "wikipedia"
	CategoryWeather      Category = "weather"
	CategoryNavigate     Category = "navigate"
	CategoryType         Category = "type_text"
	CategoryPress        Category = "press_key"
	CategoryTerminal     Category = "terminal"
	CategorySecurity     Category = "security_query"
	CategoryMinimize     Category = "minimize"
	CategoryMaximize     Category = "maximize"
	CategoryCloseWindow  Category = "close_window"
	CategoryScreenshot   Category = "screenshot"
	CategoryFileAnalysis Category = "file_analysis"
	CategoryLinkCheck    Category = "link_check"
	CategoryNmap         Category = "nmap_scan"
	CategoryPayload      Category = "payload"
	CategoryCrack        Category = "password_crack"
	CategoryNetAnalysis  Category = "network_analysis"
	CategoryDirEnum      Category = "directory_enum"
	CategorySQLInjection Category = "sql_injection"
	CategoryBruteForce   Category = "brute_force"
	CategoryExit         Category = "exit"
	CategoryDefaultAI    Category = "default_ai"
)

// ClassifiedCommand pairs the winning category with the residual argument
// string after trigger substrings have been stripped.
type ClassifiedCommand struct {
	Category Category
	Args     string
}

// ExitSentinel is the response value meaning "terminate the session".
const ExitSentinel = "exit"

// EmptyInputReply is returned when the utterance is blank; no predicate runs.
const EmptyInputReply = "I didn't catch that. Could you please repeat?"
