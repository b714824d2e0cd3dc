// SPDX-License-Identifier: MIT
// Package: topolab/config
//
// logger.go - the process logger, built once from configuration.

package config

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger writing to out at the configured level and
// format. It is created once in main and passed down explicitly.
func (c *Config) NewLogger(out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return l, nil
}
