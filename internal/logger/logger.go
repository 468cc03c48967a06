package logger

import (
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

var (
	once   sync.Once
	logger *log.Logger
	mu     sync.RWMutex
	level  = LevelInfo
)

func Init() {
	once.Do(func() {
		logger = log.New(os.Stdout, "WEATHER_LOG: ", log.LstdFlags|log.Lshortfile)
	})
}

// SetOutput redirects every subsequent log line to w.
func SetOutput(w io.Writer) {
	Init()
	logger.SetOutput(w)
}

// SetLevel accepts "debug", "info" or "error"; anything else keeps info.
func SetLevel(name string) {
	mu.Lock()
	defer mu.Unlock()
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		level = LevelDebug
	case "error":
		level = LevelError
	default:
		level = LevelInfo
	}
}

func enabled(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return l >= level
}

func output(l Level, prefix, message string, v ...interface{}) {
	if !enabled(l) {
		return
	}
	if logger == nil {
		Init()
	}
	logger.Printf(prefix+message, v...)
}

func Info(message string, v ...interface{}) {
	output(LevelInfo, "INFO: ", message, v...)
}

func Error(message string, v ...interface{}) {
	output(LevelError, "ERROR: ", message, v...)
}

func Debug(message string, v ...interface{}) {
	output(LevelDebug, "DEBUG: ", message, v...)
}
