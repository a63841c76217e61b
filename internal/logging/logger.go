// ABOUTME: logrus setup for the liftlog CLI and MCP server.
// ABOUTME: Logs go to stderr, a rotating lumberjack file, or both.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Params configures Setup.
type Params struct {
	Level string
	// File is the log file path. Empty means stderr only.
	File string
	// ToStderr also writes to stderr when File is set.
	ToStderr bool
	JSON     bool
}

// Setup builds a logger from params. Stdout is left alone because the MCP
// transport owns it.
func Setup(params Params) *logrus.Logger {
	log := logrus.New()
	if params.JSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	log.SetLevel(GetLevel(params.Level))

	if params.File == "" {
		log.SetOutput(os.Stderr)
		return log
	}

	file := params.File
	if !strings.HasSuffix(file, ".log") {
		file += ".log"
	}

	rotating := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		Compress:   true,
	}

	if params.ToStderr {
		log.SetOutput(io.MultiWriter(os.Stderr, rotating))
	} else {
		log.SetOutput(rotating)
	}
	return log
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// GetLevel maps a level name to a logrus level. Unknown names mean info.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}
