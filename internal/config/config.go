package config

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"wpcomics/internal/domain"
	"wpcomics/internal/logger"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var configTemplate = `# config.yaml

# Profile Path
# Path to a yaml site profile. Leave empty to use the bundled TruyenQQ profile.
#
# Default: ""
#
profilePath: ""

# Server Selection
# Image server used for page images
# 1 loads images from the site itself, 2 routes them through the image proxy
#
# Default: 1
#
serverSelection: 1

# Request timeout in seconds
#
# Default: 120
#
requestTimeout: 120

# Retry attempts for failed page fetches
#
# Default: 3
#
retryAttempts: 3

# wpcomics logs file
# If not defined, logs to stderr
# Make sure to use forward slashes and include the filename with extension. e.g. "logs/wpcomics.log", "C:/wpcomics/logs/wpcomics.log"
#
# Optional
#
#logPath: ""

# Log level
#
# Default: "DEBUG"
#
# Options: "ERROR", "DEBUG", "INFO", "WARN", "TRACE"
#
logLevel: "DEBUG"

# Log Max Size
#
# Default: 50
#
# Max log size in megabytes
#
#logMaxSize: 50

# Log Max Backups
#
# Default: 3
#
# Max amount of old log files
#
#logMaxBackups: 3
`

func (c *AppConfig) writeConfig(configPath string, configFile string) error {
	cfgPath := filepath.Join(configPath, configFile)

	// check if configPath exists, if not create it
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		err := os.MkdirAll(configPath, os.ModePerm)
		if err != nil {
			log.Println(err)
			return err
		}
	}

	// check if config exists, if not create it
	if _, err := os.Stat(cfgPath); errors.Is(err, os.ErrNotExist) {
		f, err := os.Create(cfgPath)
		if err != nil {
			log.Printf("error creating file: %q", err)
			return err
		}
		defer f.Close()

		if _, err = f.WriteString(configTemplate); err != nil {
			log.Printf("error writing contents to file: %v %q", configPath, err)
			return err
		}

		return f.Sync()
	}

	return nil
}

type Config interface {
	UpdateConfig() error
	DynamicReload(log logger.Logger)
	Int(key string) (int, bool)
}

type AppConfig struct {
	Config *domain.Config
	m      *sync.Mutex
}

func New(configPath string, version string) *AppConfig {
	c := &AppConfig{
		m: new(sync.Mutex),
	}
	c.defaults()
	c.Config = &domain.Config{
		Version:    version,
		ConfigPath: configPath,
	}

	c.load(configPath)
	c.loadFromEnv()

	if c.Config.RequestTimeout <= 0 {
		c.Config.RequestTimeout = 120
	}
	if c.Config.RetryAttempts <= 0 {
		c.Config.RetryAttempts = 3
	}

	return c
}

func (c *AppConfig) defaults() {
	viper.Reset()

	viper.SetDefault("profilePath", "")
	viper.SetDefault("serverSelection", 1)
	viper.SetDefault("requestTimeout", 120)
	viper.SetDefault("retryAttempts", 3)
	viper.SetDefault("logPath", "")
	viper.SetDefault("logLevel", "DEBUG")
	viper.SetDefault("logMaxSize", 50)
	viper.SetDefault("logMaxBackups", 3)
}

func (c *AppConfig) loadFromEnv() {
	prefix := "WPCOMICS__"

	envs := os.Environ()
	for _, env := range envs {
		if strings.HasPrefix(env, prefix) {
			envPair := strings.SplitN(env, "=", 2)

			if envPair[1] != "" {
				switch envPair[0] {
				case prefix + "PROFILE_PATH":
					c.Config.ProfilePath = envPair[1]
				case prefix + "SERVER_SELECTION":
					if i, _ := strconv.ParseInt(envPair[1], 10, 32); i > 0 {
						c.Config.ServerSelection = int(i)
					}
				case prefix + "REQUEST_TIMEOUT":
					if i, _ := strconv.ParseInt(envPair[1], 10, 32); i > 0 {
						c.Config.RequestTimeout = int(i)
					}
				case prefix + "RETRY_ATTEMPTS":
					if i, _ := strconv.ParseInt(envPair[1], 10, 32); i > 0 {
						c.Config.RetryAttempts = int(i)
					}
				case prefix + "LOG_LEVEL":
					c.Config.LogLevel = envPair[1]
				case prefix + "LOG_PATH":
					c.Config.LogPath = envPair[1]
				case prefix + "LOG_MAX_SIZE":
					if i, _ := strconv.ParseInt(envPair[1], 10, 32); i > 0 {
						c.Config.LogMaxSize = int(i)
					}
				case prefix + "LOG_MAX_BACKUPS":
					if i, _ := strconv.ParseInt(envPair[1], 10, 32); i > 0 {
						c.Config.LogMaxBackups = int(i)
					}
				}
			}
		}
	}
}

func (c *AppConfig) load(configPath string) {
	viper.SetConfigType("yaml")

	if configPath != "" {
		// clean trailing slash from configPath
		configPath = path.Clean(configPath)

		// check if path and file exists
		// if not, create path and file
		if err := c.writeConfig(configPath, "config.yaml"); err != nil {
			log.Printf("write error: %q", err)
		}

		viper.SetConfigFile(path.Join(configPath, "config.yaml"))
	} else {
		viper.SetConfigName("config")

		// Search config in directories
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/wpcomics")
		viper.AddConfigPath("$HOME/.wpcomics")
	}

	// read config
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("config read error: %q", err)
	}

	if err := viper.Unmarshal(c.Config); err != nil {
		log.Fatalf("Could not unmarshal config file: %v: err %q", viper.ConfigFileUsed(), err)
	}
}

func (c *AppConfig) DynamicReload(log logger.Logger) {
	viper.WatchConfig()

	viper.OnConfigChange(func(_ fsnotify.Event) {
		c.m.Lock()
		defer c.m.Unlock()

		logLevel := viper.GetString("logLevel")
		c.Config.LogLevel = logLevel
		log.SetLogLevel(c.Config.LogLevel)

		logPath := viper.GetString("logPath")
		c.Config.LogPath = logPath

		c.Config.ServerSelection = viper.GetInt("serverSelection")

		log.Debug().Msg("config file reloaded!")
	})
}

// Int reads an integer user setting. serverSelection follows reloads and env overrides,
// other keys are read straight from the config file.
func (c *AppConfig) Int(key string) (int, bool) {
	c.m.Lock()
	defer c.m.Unlock()

	switch key {
	case "serverSelection":
		return c.Config.ServerSelection, c.Config.ServerSelection > 0
	case "requestTimeout":
		return c.Config.RequestTimeout, true
	case "retryAttempts":
		return c.Config.RetryAttempts, true
	}

	if !viper.IsSet(key) {
		return 0, false
	}

	return viper.GetInt(key), true
}

func (c *AppConfig) UpdateConfig() error {
	filePath := path.Join(c.Config.ConfigPath, "config.yaml")

	f, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("could not read config filePath: %s: %w", filePath, err)
	}

	lines := strings.Split(string(f), "\n")
	lines = c.processLines(lines)

	output := strings.Join(lines, "\n")
	if err := os.WriteFile(filePath, []byte(output), 0o644); err != nil {
		return fmt.Errorf("could not write config file: %s: %w", filePath, err)
	}

	return nil
}

func (c *AppConfig) processLines(lines []string) []string {
	// keep track of not found values to append at bottom
	var (
		foundLineLogLevel = false
		foundLineLogPath  = false
		foundLineServer   = false
	)

	for i, line := range lines {
		if !foundLineLogLevel && strings.Contains(line, "logLevel:") {
			lines[i] = fmt.Sprintf(`logLevel: "%s"`, c.Config.LogLevel)
			foundLineLogLevel = true
		}
		if !foundLineLogPath && strings.Contains(line, "logPath:") {
			if c.Config.LogPath == "" {
				lines[i] = `#logPath: ""`
			} else {
				lines[i] = fmt.Sprintf(`logPath: "%s"`, c.Config.LogPath)
			}
			foundLineLogPath = true
		}
		if !foundLineServer && strings.HasPrefix(strings.TrimSpace(line), "serverSelection:") {
			lines[i] = fmt.Sprintf("serverSelection: %d", c.Config.ServerSelection)
			foundLineServer = true
		}
	}

	if !foundLineLogLevel {
		lines = append(lines, "# Log level")
		lines = append(lines, "#")
		lines = append(lines, `# Default: "DEBUG"`)
		lines = append(lines, "#")
		lines = append(lines, `# Options: "ERROR", "DEBUG", "INFO", "WARN", "TRACE"`)
		lines = append(lines, "#")
		lines = append(lines, fmt.Sprintf(`logLevel: "%s"`, c.Config.LogLevel))
	}

	if !foundLineLogPath {
		lines = append(lines, "# Log Path")
		lines = append(lines, "#")
		lines = append(lines, "# Optional")
		lines = append(lines, "#")
		if c.Config.LogPath == "" {
			lines = append(lines, `#logPath: ""`)
		} else {
			lines = append(lines, fmt.Sprintf(`logPath: "%s"`, c.Config.LogPath))
		}
	}

	if !foundLineServer {
		lines = append(lines, "# Server Selection")
		lines = append(lines, "#")
		lines = append(lines, "# Default: 1")
		lines = append(lines, "#")
		lines = append(lines, fmt.Sprintf("serverSelection: %d", c.Config.ServerSelection))
	}

	return lines
}
