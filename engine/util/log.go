package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogGrid | LogIO | LogSystem

// Logger is the sink for every category. Tests swap its output.
var Logger = newLogger()

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

type LogCategory int

const (
	LogTargeting LogCategory = 1 << iota
	LogGrid
	LogSystem
	LogIO
	LogScenario
)

var levelNames = map[LogLevel]string{
	LogLevelError:   "error",
	LogLevelWarning: "warning",
	LogLevelDebug:   "debug",
	LogLevelInfo:    "info",
}

var categoryNames = map[LogCategory]string{
	LogTargeting: "targeting",
	LogGrid:      "grid",
	LogSystem:    "system",
	LogIO:        "io",
	LogScenario:  "scenario",
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

func SetLogOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// ParseLogLevel accepts the names used in the environment: error, warning, debug, info.
func ParseLogLevel(name string) (LogLevel, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for lvl, n := range levelNames {
		if n == name {
			return lvl, nil
		}
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}

// ParseLogCategories reads a comma separated list of category names. "all" enables everything.
func ParseLogCategories(list string) (LogCategory, error) {
	var result LogCategory
	for _, part := range strings.Split(list, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if part == "all" {
			for cat := range categoryNames {
				result |= cat
			}
			continue
		}
		found := false
		for cat, n := range categoryNames {
			if n == part {
				result |= cat
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown log category %q", part)
		}
	}
	return result, nil
}

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	entry := Logger.WithField("category", categoryNames[cat])
	switch lvl {
	case LogLevelError:
		entry.Error(txt)
	case LogLevelWarning:
		entry.Warn(txt)
	case LogLevelDebug:
		entry.Debug(txt)
	default:
		entry.Info(txt)
	}
}

func LogTargetDebug(txt string) {
	log(LogTargeting, LogLevelDebug, txt)
}

func LogTargetInfo(txt string) {
	log(LogTargeting, LogLevelInfo, txt)
}

func LogGridInfo(txt string) {
	log(LogGrid, LogLevelInfo, txt)
}

func LogGridDebug(txt string) {
	log(LogGrid, LogLevelDebug, txt)
}

func LogGridError(txt string) {
	log(LogGrid, LogLevelError, txt)
}

func LogSystemInfo(txt string) {
	log(LogSystem, LogLevelInfo, txt)
}

func LogSystemWarning(txt string) {
	log(LogSystem, LogLevelWarning, txt)
}

func LogSystemError(txt string) {
	log(LogSystem, LogLevelError, txt)
}

func LogIOInfo(txt string) {
	log(LogIO, LogLevelInfo, txt)
}

func LogIOError(txt string) {
	log(LogIO, LogLevelError, txt)
}

func LogScenarioInfo(txt string) {
	log(LogScenario, LogLevelInfo, txt)
}

func LogScenarioError(txt string) {
	log(LogScenario, LogLevelError, txt)
}
