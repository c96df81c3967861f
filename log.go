package main

import (
	"os"

	"github.com/coreos/pkg/capnslog"
)

func setupLogging(level capnslog.LogLevel) {
	capnslog.SetFormatter(capnslog.NewPrettyFormatter(os.Stderr, false))
	capnslog.SetGlobalLogLevel(level)
}
