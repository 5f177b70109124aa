// Package config loads ~/.termsketchrc.
package config

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const FileName = ".termsketchrc"

type Config struct {
	FPS      int
	LogFile  string
	LogLevel slog.Level
	Intent   string
	Color    int
	// AllMotion reports pointer motion without a held button. Hover
	// markers need it; some terminals only support cell motion.
	AllMotion bool
}

func Default() *Config {
	return &Config{
		FPS:       60,
		LogLevel:  slog.LevelInfo,
		Intent:    "rect",
		AllMotion: true,
	}
}

// Load reads the rc file from the home directory. A missing file or home
// directory yields the defaults.
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}

	file, err := os.Open(filepath.Join(homeDir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	return Parse(file, homeDir)
}

// Parse reads key = value lines. Blank lines and lines starting with # are
// skipped, unknown keys are ignored.
func Parse(r io.Reader, homeDir string) (*Config, error) {
	config := Default()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "fps", "target_fps":
			fps, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: fps: %w", lineNo, err)
			}
			config.FPS = fps
		case "logfile", "log_file":
			if strings.HasPrefix(value, "~") {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			config.LogFile = value
		case "loglevel", "log_level":
			if err := config.LogLevel.UnmarshalText([]byte(value)); err != nil {
				return nil, fmt.Errorf("line %d: log level: %w", lineNo, err)
			}
		case "intent", "tool":
			config.Intent = strings.ToLower(value)
		case "color", "colour":
			c, err := strconv.Atoi(value)
			if err != nil || c < 0 || c > 9 {
				return nil, fmt.Errorf("line %d: color must be 0-9, got %q", lineNo, value)
			}
			config.Color = c
		case "mouse":
			config.AllMotion = strings.ToLower(value) != "cell"
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return config, nil
}
