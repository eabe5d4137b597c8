// Package common holds the startup steps shared by every subcommand.
package common

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-extras/cobraflags"

	"rrcapi/config"
	"rrcapi/logging"
)

const EnvFileFlag = "env-file"

// NewFlags returns the flags every subcommand accepts. Each command gets its
// own map so flag state is not shared between commands.
func NewFlags() map[string]cobraflags.Flag {
	return map[string]cobraflags.Flag{
		EnvFileFlag: &cobraflags.StringFlag{
			Name:  EnvFileFlag,
			Value: ".env",
			Usage: "Dotenv file applied before reading the environment (ignored if missing)",
		},
	}
}

// Setup loads configuration and builds the logger. The logger is also
// installed as the slog default.
func Setup(flags map[string]cobraflags.Flag) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(flags[EnvFileFlag].GetString())
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("error loading config: %w", err)
	}
	logger, err := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, err
	}
	slog.SetDefault(logger)
	return cfg, logger, nil
}
