package cfg

type Cfg struct {
	// Pipeline configuration
	ConfigPath string
	OutputDir  string
	FeedPath   string
	Date       string
	StaleDays  int
	FeedLimit  int

	// Fetch configuration
	WorkerCount int
	Timeout     int
	UserAgent   string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
