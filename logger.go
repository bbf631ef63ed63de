package ren

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggerMutex sync.RWMutex
	logger      = newDefaultLogger()
)

// newDefaultLogger discards everything below warnings so that a library
// user gets no output unless something is wrong.
func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetLogger replaces the logger used by ren and its backends.
// Passing nil restores the default logger.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newDefaultLogger()
	}
	loggerMutex.Lock()
	logger = l
	loggerMutex.Unlock()
}

// Logger returns the current logger.
func Logger() *logrus.Logger {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()
	return logger
}

// fatalf reports an unrecoverable resource failure and panics.
func fatalf(resource string, format string, args ...interface{}) {
	Logger().WithField("resource", resource).Panicf(format, args...)
}
