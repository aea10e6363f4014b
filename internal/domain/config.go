package domain

type Config struct {
	Version         string
	ConfigPath      string
	ProfilePath     string `yaml:"profilePath"`
	ServerSelection int    `yaml:"serverSelection"`
	RequestTimeout  int    `yaml:"requestTimeout"` // in seconds
	RetryAttempts   int    `yaml:"retryAttempts"`
	LogPath         string `yaml:"logPath"`
	LogLevel        string `yaml:"LogLevel"`
	LogMaxSize      int    `yaml:"logMaxSize"` // in megabytes
	LogMaxBackups   int    `yaml:"logMaxBackups"`
}
