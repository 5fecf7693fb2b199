package config

import (
	"strings"

	logxi "github.com/mgutz/logxi/v1"
)

var logLevels = map[string]int{
	"trace": logxi.LevelTrace,
	"debug": logxi.LevelDebug,
	"info":  logxi.LevelInfo,
	"warn":  logxi.LevelWarn,
	"error": logxi.LevelError,
}

// LogxiLevel maps Level to a logxi level; Debug forces LevelDebug
// Unknown names fall back to LevelInfo
func (l LogConfig) LogxiLevel() int {
	if l.Debug {
		return logxi.LevelDebug
	}
	if lvl, ok := logLevels[strings.ToLower(l.Level)]; ok {
		return lvl
	}
	return logxi.LevelInfo
}
