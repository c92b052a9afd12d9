package main

import (
	"fmt"

	"github.com/huespec/huespec/pkg/collector"
	mcpserver "github.com/huespec/huespec/pkg/mcp"
	"github.com/huespec/huespec/pkg/mcplog"
)

func runServe(args []string) error {
	var callLogPath, logLevel string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--call-log":
			if i+1 >= len(args) {
				return fmt.Errorf("--call-log requires a value")
			}
			i++
			callLogPath = args[i]
		case "--log-level":
			if i+1 >= len(args) {
				return fmt.Errorf("--log-level requires a value")
			}
			i++
			logLevel = args[i]
		default:
			return fmt.Errorf("unknown flag: %s", args[i])
		}
	}

	cfg, err := loadProjectConfig(".")
	if err != nil {
		return err
	}

	logger := newLogger(logLevel)

	calls, err := mcplog.NewLogger(callLogPath)
	if err != nil {
		return err
	}
	if calls != nil {
		defer calls.Close()
	}

	col := collector.New(logger)
	defer col.Close()

	srv, err := mcpserver.NewServer(col, cfg.options(), calls, logger)
	if err != nil {
		return err
	}

	logger.Info("mcp server starting", "version", version)
	return srv.ServeStdio()
}
