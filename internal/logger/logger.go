package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	User *UserLogger // Clean messages for users (stdout) with emojis
	Op   *OpLogger   // Detailed operational logs (stderr) without emojis
)

// init ensures loggers are never nil even before Setup runs
func init() {
	Setup(false, false, false)
}

// Setup configures both log streams from the CLI flags. The LOG_MODE and
// LOG_FORMAT environment variables override the flags when set.
func Setup(verbose bool, jsonLogs bool, quiet bool) {
	switch os.Getenv("LOG_MODE") {
	case "quiet":
		quiet = true
		verbose = false
	case "verbose", "debug":
		verbose = true
		quiet = false
	}

	switch os.Getenv("LOG_FORMAT") {
	case "json":
		jsonLogs = true
	case "text":
		jsonLogs = false
	}

	level := logrus.InfoLevel
	if verbose {
		level = logrus.DebugLevel
	}
	if quiet {
		level = logrus.ErrorLevel
	}

	user := logrus.New()
	user.SetOutput(os.Stdout)
	user.SetLevel(level)

	op := logrus.New()
	op.SetOutput(os.Stderr)
	op.SetLevel(level)

	if jsonLogs {
		user.SetFormatter(&logrus.JSONFormatter{})
		op.SetFormatter(&logrus.JSONFormatter{})
	} else {
		user.SetFormatter(&UserFormatter{})
		op.SetFormatter(NewOpFormatter(os.Stderr))
	}

	User = &UserLogger{logger: user}
	Op = &OpLogger{logger: op}
}

// SetOutput redirects both streams. Used by tests to capture output.
func SetOutput(userOut, opOut io.Writer) {
	User.logger.SetOutput(userOut)
	Op.logger.SetOutput(opOut)
}

type UserLogger struct {
	logger *logrus.Logger
}

type OpLogger struct {
	logger *logrus.Logger
}

// UserLogger methods with emojis built-in

func (u *UserLogger) Info(msg string) {
	u.logger.Info(msg)
}

func (u *UserLogger) Infof(format string, args ...interface{}) {
	u.logger.Infof(format, args...)
}

func (u *UserLogger) Error(msg string) {
	u.logger.WithField("emoji", "❌").Error(msg)
}

func (u *UserLogger) Errorf(format string, args ...interface{}) {
	u.logger.WithField("emoji", "❌").Errorf(format, args...)
}

func (u *UserLogger) Warnf(format string, args ...interface{}) {
	u.logger.WithField("emoji", "⚠️").Warnf(format, args...)
}

// Starting announces the beginning of a task
func (u *UserLogger) Starting(msg string) {
	u.logger.WithField("emoji", "🚀").Info(msg)
}

func (u *UserLogger) Startingf(format string, args ...interface{}) {
	u.logger.WithField("emoji", "🚀").Infof(format, args...)
}

// Success reports a task that finished with exit code 0
func (u *UserLogger) Success(msg string) {
	u.logger.WithField("emoji", "✅").Info(msg)
}

func (u *UserLogger) Successf(format string, args ...interface{}) {
	u.logger.WithField("emoji", "✅").Infof(format, args...)
}

// Package reports dependency-management activity
func (u *UserLogger) Packagef(format string, args ...interface{}) {
	u.logger.WithField("emoji", "📦").Infof(format, args...)
}

// Cleanup reports removal of generated workspace state
func (u *UserLogger) Cleanupf(format string, args ...interface{}) {
	u.logger.WithField("emoji", "🧹").Infof(format, args...)
}

// OpLogger methods without emojis - clean operational logs

func (o *OpLogger) Info(msg string) {
	o.logger.Info(msg)
}

func (o *OpLogger) Infof(format string, args ...interface{}) {
	o.logger.Infof(format, args...)
}

func (o *OpLogger) Error(msg string) {
	o.logger.Error(msg)
}

func (o *OpLogger) Errorf(format string, args ...interface{}) {
	o.logger.Errorf(format, args...)
}

func (o *OpLogger) Warnf(format string, args ...interface{}) {
	o.logger.Warnf(format, args...)
}

func (o *OpLogger) Debug(msg string) {
	o.logger.Debug(msg)
}

func (o *OpLogger) Debugf(format string, args ...interface{}) {
	o.logger.Debugf(format, args...)
}

func (o *OpLogger) WithFields(fields map[string]interface{}) *logrus.Entry {
	return o.logger.WithFields(fields)
}
