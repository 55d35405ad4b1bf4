package cli

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/goserg/pairingserver/internal/cache/mem"
	"github.com/goserg/pairingserver/internal/config"
	"github.com/goserg/pairingserver/internal/logger"
	"github.com/goserg/pairingserver/internal/metrics"
	"github.com/goserg/pairingserver/internal/service"
	"github.com/goserg/pairingserver/internal/storage/sqlite"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type env struct {
	cfg     config.Config
	log     *logrus.Logger
	storage *sqlite.Storage
	metrics *metrics.Metrics
	service *service.TournamentService
}

func loadConfig(cmd *cobra.Command) (config.Config, *logrus.Logger, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, nil, err
	}
	// a missing default file means built-in defaults
	if !cmd.Flags().Changed("config") {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}
	cfg, err := config.New(path)
	if err != nil {
		return config.Config{}, nil, err
	}

	l := logger.New(cfg.Log.Level)
	l.SetOutput(cmd.ErrOrStderr())
	if trace, _ := cmd.Flags().GetBool("trace"); trace {
		l.SetLevel(logrus.TraceLevel)
	}
	return cfg, l, nil
}

func open(cmd *cobra.Command) (*env, error) {
	cfg, l, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	st, err := sqlite.New(l, cfg.Storage.SqliteFile)
	if err != nil {
		return nil, err
	}
	m := metrics.New()
	return &env{
		cfg:     cfg,
		log:     l,
		storage: st,
		metrics: m,
		service: service.New(l, st, mem.New(), m, service.Config{
			Seed:         cfg.Engine.Seed,
			SearchBudget: cfg.Engine.SearchBudget,
		}),
	}, nil
}

func (e *env) Close() error {
	return e.storage.Close()
}

func parseTournamentID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, errors.New("invalid tournament id " + strconv.Quote(arg))
	}
	return id, nil
}
