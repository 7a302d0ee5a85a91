// Package config exposes the environment-driven configuration of the
// campus application, plus the embedded name and version identifiers.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

// sessionSecret is generated once per process when no secret is configured,
// so sessions survive across requests but not across restarts.
var sessionSecret string

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("CAMPUS_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("CAMPUS_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("CAMPUS_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("CAMPUS_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 4000
	}
	return port
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("CAMPUS_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "data"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("CAMPUS_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "log"
	}
	return logFolderPath
}

// GetSessionSecret returns the key used to sign session cookies. An
// unconfigured secret falls back to a random per-process value.
func GetSessionSecret() string {
	if secret := os.Getenv("CAMPUS_SESSION_SECRET"); secret != "" {
		return secret
	}
	if sessionSecret == "" {
		sessionSecret = uuid.NewString()
	}
	return sessionSecret
}
