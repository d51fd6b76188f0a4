//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerSettings_Validate(t *testing.T) {
	tests := []struct {
		name      string
		settings  LoggerSettings
		shouldErr bool
	}{
		{"ValidConsole", LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole}, false},
		{"ValidFile", LoggerSettings{LogLevel: LogLevelDebug, LogType: LogTypeFile, FilePath: "app.log", MaxSize: 10, MaxBackups: 3, MaxAge: 7}, false},
		{"MissingLevel", LoggerSettings{LogType: LogTypeConsole}, true},
		{"UnknownLevel", LoggerSettings{LogLevel: "verbose", LogType: LogTypeConsole}, true},
		{"UnknownType", LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"}, true},
		{"FileWithoutPath", LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile, MaxSize: 10, MaxBackups: 3, MaxAge: 7}, true},
		{"FileMaxSizeOutOfRange", LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile, FilePath: "app.log", MaxSize: 500, MaxBackups: 3, MaxAge: 7}, true},
		{"FileMaxBackupsOutOfRange", LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile, FilePath: "app.log", MaxSize: 10, MaxBackups: 0, MaxAge: 7}, true},
		{"FileMaxAgeOutOfRange", LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile, FilePath: "app.log", MaxSize: 10, MaxBackups: 3, MaxAge: 4000}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}
