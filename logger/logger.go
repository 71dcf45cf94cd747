// Copyright 2025 Maruf Hossain
// This file is part of the Monte-Carlo-Estimator toolkit.
//
// mcpi is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mcpi is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with mcpi. If not, see <http://www.gnu.org/licenses/>.

package logger

//go:generate mockgen -source logger.go -destination logger_mock.go -package logger

import (
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

// defaultLogFormat is the format for all loggers created by NewLogger.
const defaultLogFormat = "%{color}%{time:01-02|15:04:05.000} %{module} %{level:.4s}%{color:reset}: %{message}"

// LogLevelFlag controls the verbosity of all loggers in the app.
var LogLevelFlag = cli.StringFlag{
	Name:    "log",
	Aliases: []string{"l"},
	Usage:   "level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\")",
	Value:   "info",
}

// Logger is the leveled logger used across the toolkit.
type Logger interface {
	Critical(args ...interface{})
	Criticalf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
	Notice(args ...interface{})
	Noticef(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	IsEnabledFor(level logging.Level) bool
}

// NewLogger creates a new logger with the given level and module name.
// An unknown level falls back to INFO.
func NewLogger(level string, module string) Logger {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}

	backend := logging.NewLogBackend(os.Stdout, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(defaultLogFormat))

	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)

	return logging.MustGetLogger(module)
}

// ParseTime decomposes an elapsed duration into hours, minutes and seconds
// for progress messages.
func ParseTime(elapsed time.Duration) (hours, minutes, seconds uint32) {
	seconds = uint32(elapsed.Seconds())
	hours = seconds / 3600
	seconds -= hours * 3600
	minutes = seconds / 60
	seconds -= minutes * 60
	return hours, minutes, seconds
}
