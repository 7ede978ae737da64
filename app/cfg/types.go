package cfg

type Cfg struct {
	// Database configuration
	DBPath string

	// Application configuration
	Port               string
	AutomationEndpoint string
	ProfilePath        string
	APIAccessKey       string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
