package domain

// Configuration keys.
const (
	KeyDBDirPath   = "db_dir_path"
	KeyLogsDirPath = "logs_dir_path"
)

// Config holds the directories used by the engine. Both are absolute paths.
type Config struct {
	DBDirPath   string `mapstructure:"db_dir_path"`
	LogsDirPath string `mapstructure:"logs_dir_path"`
}

// ConfigStore reads and writes the configuration file. Changes made through
// Set only take effect when the engine is created again.
type ConfigStore interface {
	// Load reads the configuration, creating the file with defaults if it
	// does not exist.
	Load() (Config, error)
	// Get returns the value of a single key.
	Get(key string) (string, error)
	// Set validates and stores a value.
	Set(key string, value string) error
}
