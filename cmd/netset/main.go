// Command netset inspects the built-in network sets: the networks they
// register, their aliases and the default cookie path of every variant.
package main

import (
	"os"

	"go.uber.org/zap"
)

// logLevel is raised to debug by --debug or the debug config key.
var logLevel = zap.NewAtomicLevelAt(zap.InfoLevel)

func init() {
	c := zap.Config{
		Level:            logLevel,
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

func main() {
	defer func() { _ = zap.L().Sync() }()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
