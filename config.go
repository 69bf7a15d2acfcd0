package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/memmaker/targeter/engine/util"
)

const defaultColumns = 80

type Config struct {
	ScenarioFile  string
	LogLevel      util.LogLevel
	LogCategories util.LogCategory
	// Columns is the width output lines are cut to.
	Columns int
}

// LoadConfig reads the environment, after merging an optional .env file into it.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, errors.Wrap(err, "loading .env")
	}
	cfg := Config{
		ScenarioFile:  os.Getenv("TARGETVIEW_SCENARIO"),
		LogLevel:      util.LogLevelInfo,
		LogCategories: util.LogSystem | util.LogIO | util.LogScenario,
		Columns:       defaultColumns,
	}
	if cfg.ScenarioFile == "" {
		return cfg, errors.New("TARGETVIEW_SCENARIO is not set")
	}
	if name := os.Getenv("TARGETVIEW_LOG_LEVEL"); name != "" {
		lvl, err := util.ParseLogLevel(name)
		if err != nil {
			return cfg, errors.Wrap(err, "TARGETVIEW_LOG_LEVEL")
		}
		cfg.LogLevel = lvl
	}
	if list := os.Getenv("TARGETVIEW_LOG_CATEGORIES"); list != "" {
		cats, err := util.ParseLogCategories(list)
		if err != nil {
			return cfg, errors.Wrap(err, "TARGETVIEW_LOG_CATEGORIES")
		}
		cfg.LogCategories = cats
	}
	if cols := os.Getenv("TARGETVIEW_COLUMNS"); cols != "" {
		n, err := strconv.Atoi(cols)
		if err != nil || n <= 0 {
			return cfg, errors.Errorf("TARGETVIEW_COLUMNS must be a positive number, got %q", cols)
		}
		cfg.Columns = n
	} else if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			cfg.Columns = width
		}
	}
	return cfg, nil
}

func (c Config) Apply() {
	util.GLOBAL_LOG_LEVEL = c.LogLevel
	util.GLOBAL_LOG_CATEGORIES = c.LogCategories
}
