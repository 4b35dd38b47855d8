package app

// Config holds runtime configuration for one run. Built once at startup
// from flags, environment, and optional config file, then passed down
// unchanged; the pipeline keeps no other state.
type Config struct {
	InputPath string
	OutputDir string

	// Extraction
	Attributes      []string
	NestedTags      []string
	HeaderSelectors []string
	Separator       string

	// Input handling
	Encoding string // forced source encoding label; empty means detect

	// Behavior
	DryRun  bool
	Verbose bool
	LogFile string
}

// Default extraction settings, shared by flag registration and the config
// file overlay so both agree on what "unset" looks like.
var (
	DefaultAttributes      = []string{"href", "title"}
	DefaultNestedTags      = []string{"a"}
	DefaultHeaderSelectors = []string{"h1", "h2", "h3", "h4", "h5", "h6", ".header"}
)

const DefaultSeparator = ":"
