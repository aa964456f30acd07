// Copyright 2016 The Chihaya Authors. All rights reserved.
// Use of this source code is governed by the BSD 2-Clause license,
// which can be found in the LICENSE file.

// Package log adds a thin wrapper around logrus to improve non-debug logging
// performance.
package log

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

var (
	l     = logrus.New()
	debug = false
)

// SetDebug controls debug logging.
func SetDebug(to bool) {
	debug = to
	if to {
		l.Level = logrus.DebugLevel
	}
}

// SetFormatter sets the formatter.
func SetFormatter(to logrus.Formatter) {
	l.Formatter = to
}

// SetOutput sets the output.
func SetOutput(to io.Writer) {
	l.Out = to
}

// Fields is a map of logging fields.
type Fields map[string]interface{}

// Err returns Fields describing an error.
func Err(e error) Fields {
	return Fields{
		"error": e.Error(),
		"type":  fmt.Sprintf("%T", e),
	}
}

func entry(fields Fields) *logrus.Entry {
	if len(fields) == 0 {
		return logrus.NewEntry(l)
	}
	return l.WithFields(logrus.Fields(fields))
}

// Debug logs at the debug level if debug logging is enabled.
func Debug(msg string, fields Fields) {
	if debug {
		entry(fields).Debug(msg)
	}
}

// Info logs at the info level.
func Info(msg string, fields Fields) {
	entry(fields).Info(msg)
}

// Warn logs at the warning level.
func Warn(msg string, fields Fields) {
	entry(fields).Warn(msg)
}

// Error logs at the error level.
func Error(msg string, fields Fields) {
	entry(fields).Error(msg)
}

// Fatal logs at the fatal level and exits with a status code != 0.
func Fatal(msg string, fields Fields) {
	entry(fields).Fatal(msg)
}
