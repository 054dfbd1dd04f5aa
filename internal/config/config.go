package config

import (
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/gostonefire/bidhashmap/internal/conf"
	"github.com/joho/godotenv"
	"os"
	"strconv"
	"strings"
)

// Config - Holds the bid table program configuration
//   - CSVPath is the CSV file the load command reads bids from
//   - SearchKey is the bid id used by find and remove when no key is supplied
//   - TableSize is the fixed number of buckets in the bid hash map
//   - LogLevel is one of debug, info, warn or error
//   - LogDevelopment switches to human readable log output
type Config struct {
	CSVPath        string `toml:"csv_path"`
	SearchKey      string `toml:"search_key"`
	TableSize      int64  `toml:"table_size"`
	LogLevel       string `toml:"log_level"`
	LogDevelopment bool   `toml:"log_development"`
}

// Default - Returns a Config populated with default values
func Default() *Config {
	return &Config{
		CSVPath:   conf.DefaultCSVPath,
		SearchKey: conf.DefaultSearchKey,
		TableSize: conf.DefaultTableSize,
		LogLevel:  conf.DefaultLogLevel,
	}
}

// Load - Returns a Config built in layers, later layers overriding earlier:
// defaults, the TOML file at tomlPath (skipped if empty), then environment variables where .env files are
// loaded first using godotenv (a missing .env file is not an error).
//   - tomlPath is an optional path to a TOML configuration file
//   - envFiles are optional .env files, if none are given ".env" in the working directory is tried
func Load(tomlPath string, envFiles ...string) (cfg *Config, err error) {
	cfg = Default()

	if tomlPath != "" {
		var md toml.MetaData
		md, err = toml.DecodeFile(tomlPath, cfg)
		if err != nil {
			err = fmt.Errorf("error while reading config file %s: %w", tomlPath, err)
			return
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			err = fmt.Errorf("unknown keys in config file %s: %v", tomlPath, undecoded)
			return
		}
	}

	err = loadEnvFiles(envFiles)
	if err != nil {
		return
	}

	err = cfg.applyEnv()
	if err != nil {
		return
	}

	err = cfg.Validate()

	return
}

// ApplyArgs - Overrides CSV path and search key with positional command line arguments, in that order.
// Empty or absent arguments leave the current values.
func (C *Config) ApplyArgs(args []string) {
	if len(args) > 0 && args[0] != "" {
		C.CSVPath = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		C.SearchKey = args[1]
	}
}

// Validate - Returns an error if the configuration can not be used
func (C *Config) Validate() error {
	if C.TableSize <= 0 {
		return fmt.Errorf("table size must be a positive value higher than 0 (zero), got %d", C.TableSize)
	}
	if strings.TrimSpace(C.CSVPath) == "" {
		return fmt.Errorf("csv path can not be empty")
	}
	if strings.TrimSpace(C.SearchKey) == "" {
		return fmt.Errorf("search key can not be empty")
	}

	return nil
}

// loadEnvFiles - Loads .env files into the process environment without overriding variables already set
func loadEnvFiles(envFiles []string) (err error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, f := range envFiles {
		err = godotenv.Load(f)
		if err != nil {
			if os.IsNotExist(err) {
				err = nil
				continue
			}
			err = fmt.Errorf("error while loading env file %s: %w", f, err)
			return
		}
	}

	return
}

// applyEnv - Overrides values with BIDTABLE_* environment variables that are set
func (C *Config) applyEnv() (err error) {
	if v := os.Getenv("BIDTABLE_CSV_PATH"); v != "" {
		C.CSVPath = v
	}
	if v := os.Getenv("BIDTABLE_SEARCH_KEY"); v != "" {
		C.SearchKey = v
	}
	if v := os.Getenv("BIDTABLE_TABLE_SIZE"); v != "" {
		C.TableSize, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			err = fmt.Errorf("invalid BIDTABLE_TABLE_SIZE %q: %w", v, err)
			return
		}
	}
	if v := os.Getenv("BIDTABLE_LOG_LEVEL"); v != "" {
		C.LogLevel = v
	}
	if v := os.Getenv("BIDTABLE_LOG_DEVELOPMENT"); v != "" {
		C.LogDevelopment, err = strconv.ParseBool(v)
		if err != nil {
			err = fmt.Errorf("invalid BIDTABLE_LOG_DEVELOPMENT %q: %w", v, err)
			return
		}
	}

	return
}
