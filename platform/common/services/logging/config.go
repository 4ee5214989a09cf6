/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"io"
	"sync"

	"github.com/hyperledger/fabric-lib-go/common/flogging"
)

const (
	DefaultFormat = "%{color}%{time:2006-01-02 15:04:05.000 MST} [%{module}] %{shortfunc} -> %{level:.4s} %{id:03x}%{color:reset} %{message}"
	DefaultSpec   = "info"
)

type Config struct {
	// Format is the log record format specifier. If the spec is the string
	// "json", log records will be formatted as JSON.
	//
	// If Format is not provided, DefaultFormat is used.
	Format string
	// Spec determines the log levels that are enabled, e.g.
	// "locator=debug:info".
	//
	// If Spec is not provided, loggers will be enabled at the INFO level.
	Spec string
	// Writer is the sink for encoded and formatted log records.
	//
	// If a Writer is not provided, os.Stderr will be used as the log sink.
	Writer io.Writer
}

var (
	current      = Config{Format: DefaultFormat, Spec: DefaultSpec}
	currentMutex sync.RWMutex
)

func Init(c Config) {
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Spec == "" {
		c.Spec = DefaultSpec
	}
	flogging.Init(flogging.Config{
		Format:  c.Format,
		LogSpec: c.Spec,
		Writer:  c.Writer,
	})

	currentMutex.Lock()
	defer currentMutex.Unlock()
	current = c
}

// Current returns the configuration passed to the last Init call
func Current() Config {
	currentMutex.RLock()
	defer currentMutex.RUnlock()
	return current
}
