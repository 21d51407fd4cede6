// Package logger is the process-wide structured log. Output goes to a rotated
// file under the config dir because the TUI owns stdout and stderr.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/pickadate/internal/constants"
)

// Logger is nil until Init runs; the helpers below are no-ops until then.
var Logger *log.Logger

var sink *lumberjack.Logger

// Config holds logger configuration
type Config struct {
	Debug     bool
	ConfigDir string
	// Stderr mirrors output to stderr in debug mode. Leave it off for play.
	Stderr bool
}

// Path is the log file location for a config dir.
func Path(configDir string) string {
	return filepath.Join(configDir, "logs", constants.AppName+".log")
}

// Init replaces the global logger. Warnings and above are kept unless Debug
// is set.
func Init(cfg Config) error {
	file := Path(cfg.ConfigDir)
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return err
	}

	Close()
	sink = &lumberjack.Logger{
		Filename:   file,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
		Compress:   true,
	}

	opts := log.Options{
		ReportTimestamp: true,
		Level:           log.WarnLevel,
		Prefix:          constants.AppName,
	}
	var w io.Writer = sink
	if cfg.Debug {
		opts.Level = log.DebugLevel
		opts.ReportCaller = true
		if cfg.Stderr {
			w = io.MultiWriter(os.Stderr, sink)
		}
	}

	Logger = log.NewWithOptions(w, opts)
	return nil
}

// Close releases the log file. Logging after Close reopens it.
func Close() {
	if sink != nil {
		_ = sink.Close()
	}
}

func Debug(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
