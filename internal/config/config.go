package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

const DefaultPath = "configs/server.toml"

type Server struct {
	Host  string `toml:"host"`
	Port  int    `toml:"port"`
	Debug bool   `toml:"debug_mode"`
}

type Storage struct {
	SqliteFile string `toml:"sqlite_file"`
}

type Engine struct {
	Seed         int64 `toml:"seed"`
	SearchBudget int   `toml:"search_budget"`
}

type Log struct {
	Level string `toml:"level"`
}

type Config struct {
	Server  Server  `toml:"server"`
	Storage Storage `toml:"storage"`
	Engine  Engine  `toml:"engine"`
	Log     Log     `toml:"log"`
}

func defaults() Config {
	return Config{
		Server:  Server{Port: 3000},
		Storage: Storage{SqliteFile: "pairing.sqlite"},
		Log:     Log{Level: "info"},
	}
}

// New reads the file at path on top of the defaults. PAIRING_SQLITE_FILE and
// PAIRING_SEED override the file.
func New(path string) (Config, error) {
	cfg := defaults()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if file := os.Getenv("PAIRING_SQLITE_FILE"); file != "" {
		cfg.Storage.SqliteFile = file
	}
	if seed := os.Getenv("PAIRING_SEED"); seed != "" {
		v, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("PAIRING_SEED: %w", err)
		}
		cfg.Engine.Seed = v
	}
	return cfg, nil
}
