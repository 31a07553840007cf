// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package logger

import (
	"sync/atomic"

	"github.com/sassoftware/viya-pdf-tables/tracer"
)

// LogLevel represents log severity
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	ErrorLevel LogLevel = "error"
)

// LogFunc is a single logger function that handles all levels
type LogFunc func(level LogLevel, msg string, keyvals ...interface{})

func nop(LogLevel, string, ...interface{}) {}

var current atomic.Pointer[LogFunc]

func init() {
	f := LogFunc(nop)
	current.Store(&f)
}

// SetLogger sets the global logger function. Documents may be processed
// concurrently, so f must be safe for concurrent use. A nil f is ignored.
func SetLogger(f LogFunc) {
	if f != nil {
		current.Store(&f)
	}
}

// Reset restores the silent default logger.
func Reset() {
	f := LogFunc(nop)
	current.Store(&f)
}

func log(level LogLevel, msg string, keyvals []interface{}) {
	(*current.Load())(level, msg, keyvals...)
}

// Debug logs a message at debug level
// If the last keyvals element is a bool and true, it is treated as trace flag
func Debug(msg string, keyvals ...interface{}) {
	trace := false
	if len(keyvals) > 0 {
		if b, ok := keyvals[len(keyvals)-1].(bool); ok {
			trace = b
			keyvals = keyvals[:len(keyvals)-1]
		}
	}
	log(DebugLevel, msg, keyvals)

	if trace {
		tracer.Log(msg)
	}
}

// Info logs a message at info level
func Info(msg string, keyvals ...interface{}) {
	log(InfoLevel, msg, keyvals)
}

// Error logs a message at error level
func Error(msg string, keyvals ...interface{}) {
	log(ErrorLevel, msg, keyvals)
}
