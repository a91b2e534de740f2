package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

const timeFormat = "2006-01-02 15:04:05"

type logger struct {
	*logrus.Logger
}

func newLogger(level logrus.Level) logger {
	l := logrus.New()
	l.Out = os.Stderr
	l.Level = level
	l.Formatter = &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timeFormat,
	}
	return logger{l}
}

// Logf logs the progress of commands, shown only when verbose.
func (l logger) Logf(format string, a ...interface{}) {
	l.Debugf(format, a...)
}
