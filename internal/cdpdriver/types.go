package cdpdriver

// TabInfo describes one CDP target of type "page" (or otherwise) as returned
// by enumerate_page_tabs.
type TabInfo struct {
	TargetID string
	Title    string
	URL      string
	Type     string
}

// DriverResult is the uniform success/failure envelope most Command Facade
// verbs return when they have no richer payload.
type DriverResult struct {
	Success     bool
	Message     string
	ErrorDetail string
}

// NavigateResult is returned by navigate, navigate_back and navigate_forward.
type NavigateResult struct {
	Success   bool
	FrameID   string
	ErrorText string
}

// CaptureScreenshotResult is returned by capture_screenshot.
type CaptureScreenshotResult struct {
	Success     bool
	ImageBase64 string
	MimeType    string
	ErrorDetail string
}

// NavigationHistoryEntry is one entry of Page.getNavigationHistory.
type NavigationHistoryEntry struct {
	ID    int
	URL   string
	Title string
}

// NavigationHistoryResult is returned by get_navigation_history.
type NavigationHistoryResult struct {
	Success      bool
	CurrentIndex int
	Entries      []NavigationHistoryEntry
	ErrorDetail  string
}

// ConsoleLevel is one of the five ranks the console ring records, ordered
// weakest to strongest for min-level filtering.
type ConsoleLevel string

const (
	LevelDebug   ConsoleLevel = "debug"
	LevelLog     ConsoleLevel = "log"
	LevelInfo    ConsoleLevel = "info"
	LevelWarning ConsoleLevel = "warning"
	LevelError   ConsoleLevel = "error"
)

var consoleLevelRank = map[ConsoleLevel]int{
	LevelDebug:   0,
	LevelLog:     1,
	LevelInfo:    2,
	LevelWarning: 3,
	LevelError:   4,
}

// ConsoleEntry is one console ring entry; Text is always sanitized UTF-8.
type ConsoleEntry struct {
	TimestampMs int64
	Level       ConsoleLevel
	Text        string
}

// TimeScopeType discriminates the TimeScope union.
type TimeScopeType int

const (
	TimeScopeNone TimeScopeType = iota
	TimeScopeLastDuration
	TimeScopeRange
	TimeScopeFromOnwards
	TimeScopeUntil
)

// DurationUnit is the unit a LastDuration time scope is expressed in.
type DurationUnit string

const (
	UnitMilliseconds DurationUnit = "milliseconds"
	UnitSeconds      DurationUnit = "seconds"
	UnitMinutes      DurationUnit = "minutes"
)

// TimeScope selects which console entries a query considers by timestamp.
type TimeScope struct {
	Type             TimeScopeType
	LastDurationValue int64
	LastDurationUnit  DurationUnit
	FromMs           int64
	ToMs             int64
}

// SortOrder controls get_console_messages ordering.
type SortOrder string

const (
	OrderNewestFirst SortOrder = "newest_first"
	OrderOldestFirst SortOrder = "oldest_first"
)

// CountScope bounds and orders a console query's results.
type CountScope struct {
	MaxEntries int
	Order      SortOrder
}

// LevelScopeType discriminates the LevelScope union.
type LevelScopeType int

const (
	LevelScopeMinLevel LevelScopeType = iota
	LevelScopeOnly
)

// LevelScope selects which console entries a query considers by level.
type LevelScope struct {
	Type   LevelScopeType
	Level  ConsoleLevel
	Levels []ConsoleLevel
}

// GetConsoleMessagesOptions bundles the three independent filters a console
// query applies.
type GetConsoleMessagesOptions struct {
	TimeScope  TimeScope
	CountScope CountScope
	LevelScope LevelScope
}

// TimeSyncInfo reports the offset between the page's clock and ours.
type TimeSyncInfo struct {
	BrowserNowMs int64
	ServerNowMs  int64
	OffsetMs     int64
	RoundTripMs  int64
}

// ConsoleMessagesResult is returned by get_console_messages.
type ConsoleMessagesResult struct {
	Success       bool
	Lines         []string
	ErrorDetail   string
	Truncated     bool
	ReturnedCount int
	TotalMatching int
	TimeSync      TimeSyncInfo
}

// NetworkRequestEntry is one entry of the network request map.
type NetworkRequestEntry struct {
	RequestID  string
	URL        string
	Method     string
	StatusCode int
	StatusText string
}

// GetNetworkRequestsResult is returned by get_network_requests.
type GetNetworkRequestsResult struct {
	Success     bool
	Requests    []NetworkRequestEntry
	ErrorDetail string
}

// DialogType enumerates the kinds of javascript dialog CDP reports.
type DialogType string

const (
	DialogAlert          DialogType = "alert"
	DialogConfirm        DialogType = "confirm"
	DialogPrompt         DialogType = "prompt"
	DialogBeforeUnload   DialogType = "beforeunload"
)

// PendingDialog is the connection's pending-dialog slot contents.
type PendingDialog struct {
	Type    DialogType
	Message string
}

// GetDialogMessageResult is returned by get_dialog_message.
type GetDialogMessageResult struct {
	Success     bool
	Present     bool
	Type        DialogType
	Message     string
	ErrorDetail string
}

// InteractiveElement is one entry produced by list_interactive_elements.
type InteractiveElement struct {
	Selector    string
	Role        string
	Label       string
	Placeholder string
	Type        string
	Text        string
}

// ListInteractiveElementsResult is returned by list_interactive_elements.
type ListInteractiveElementsResult struct {
	Success     bool
	Elements    []InteractiveElement
	ErrorDetail string
}

// ScrollScopeType discriminates the ScrollScope union.
type ScrollScopeType int

const (
	ScrollScopePage ScrollScopeType = iota
	ScrollScopeElement
)

// ScrollScope selects what to scroll and by how much.
type ScrollScope struct {
	Type     ScrollScopeType
	Selector string
	DeltaX   float64
	DeltaY   float64
}

// FrameInfo is one entry produced by list_frames.
type FrameInfo struct {
	FrameID       string
	URL           string
	ParentFrameID string
}

// ListFramesResult is returned by list_frames.
type ListFramesResult struct {
	Success     bool
	Frames      []FrameInfo
	ErrorDetail string
}

// GetPageSourceResult is returned by get_page_source and get_outer_html.
type GetPageSourceResult struct {
	Success     bool
	HTML        string
	ErrorDetail string
}

// BoundingBoxResult is returned by get_element_bounding_box.
type BoundingBoxResult struct {
	Success     bool
	X           float64
	Y           float64
	Width       float64
	Height      float64
	ErrorDetail string
}

// StorageKind selects which Web Storage object a verb targets.
type StorageKind string

const (
	StorageLocal   StorageKind = "localStorage"
	StorageSession StorageKind = "sessionStorage"
)

// CookieResult is returned by get_cookies.
type CookieResult struct {
	Success     bool
	CookiesJSON string
	ErrorDetail string
}

// OpenBrowserOptions carries the one recognized launch flag from spec.md §4.A.
type OpenBrowserOptions struct {
	DisableTranslate bool
}
