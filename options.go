// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package skiptrie

import (
	"fmt"
	"log"
	"os"
)

// Logger defines an interface for writing log messages.
type Logger interface {
	Infof(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

type defaultLogger struct{}

// DefaultLogger logs to the Go stdlib log package.
var DefaultLogger defaultLogger

var _ Logger = DefaultLogger

func (defaultLogger) Infof(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
}

func (defaultLogger) Fatalf(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
	os.Exit(1)
}

// Options holds the optional parameters for a Tree.
type Options struct {
	// Logger is used for diagnostic output. The library never logs on the
	// operation hot paths; the logger is used only to report a failed
	// invariant-build validation after a mutation. Defaults to DefaultLogger.
	Logger Logger
}

// EnsureDefaults ensures that default values are filled in for any options
// that were not specified, returning the updated options.
func (o *Options) EnsureDefaults() *Options {
	if o == nil {
		o = &Options{}
	}
	if o.Logger == nil {
		o.Logger = DefaultLogger
	}
	return o
}
