package config

// Default values.
const (
	DefaultStoreFile = ".today_tasks.json"
	DefaultRootDir   = "."
	DefaultPort      = 8000
)

// Config holds the full configuration for today.
type Config struct {
	// Paths
	StoreFile string `toml:"store_file"`
	RootDir   string `toml:"root_dir"`

	// Workflow server
	Port   int  `toml:"port"`
	NoOpen bool `toml:"no_open"`

	// Logging
	Debug bool `toml:"debug"`
}
