// Package logger provides a commontypes.Logger backed by logrus.
package logger

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/smartcontractkit/libocr/commontypes"
)

var _ commontypes.Logger = &Logger{}

type Logger struct {
	logger *logrus.Logger
}

// New wraps the given logrus logger.
func New(logger *logrus.Logger) *Logger {
	return &Logger{logger}
}

// Discard returns a logger that drops all messages.
func Discard() *Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return New(logger)
}

func (l *Logger) Trace(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Trace(msg)
}

func (l *Logger) Debug(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *Logger) Info(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l *Logger) Warn(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Warn(msg)
}

func (l *Logger) Error(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Error(msg)
}

// Critical is logged at error level, logrus has no separate level for it.
func (l *Logger) Critical(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Error("CRITICAL: " + msg)
}
