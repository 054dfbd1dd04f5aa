package main

import (
	"fmt"
	"github.com/gostonefire/bidhashmap"
	"github.com/gostonefire/bidhashmap/internal/config"
	"github.com/gostonefire/bidhashmap/internal/logging"
	"github.com/gostonefire/bidhashmap/internal/menu"
	"go.uber.org/zap"
	"io"
	"os"
)

// Usage: bidtable [csvPath [searchKey]]
// A TOML config file can be given through BIDTABLE_CONFIG.
func main() {
	os.Exit(run(os.Args[1:], os.Getenv("BIDTABLE_CONFIG"), os.Stdin, os.Stdout, os.Stderr))
}

// run - Builds the bid table and runs the menu, returning the process exit code
func run(args []string, configPath string, in io.Reader, out, errOut io.Writer) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		_, _ = fmt.Fprintf(errOut, "configuration error: %s\n", err)
		return 1
	}
	cfg.ApplyArgs(args)

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		_, _ = fmt.Fprintf(errOut, "logging error: %s\n", err)
		return 1
	}
	defer func(logger *zap.Logger) { _ = logger.Sync() }(logger)

	bhm, info, err := bidhashmap.NewBidHashMap(cfg.TableSize, nil)
	if err != nil {
		logger.Error("failed to create bid hash map", zap.Error(err))
		return 1
	}
	logger.Debug("bid hash map created",
		zap.Int64("buckets", info.NumberOfBuckets),
		zap.String("csvPath", cfg.CSVPath),
		zap.String("searchKey", cfg.SearchKey))

	d := menu.NewDispatcher(bhm, out, logger, cfg.CSVPath, cfg.SearchKey)
	if err = d.Run(in); err != nil {
		logger.Error("reading input failed", zap.Error(err))
		return 1
	}

	stat := bhm.Stat(false)
	logger.Debug("bid hash map at exit",
		zap.Int64("records", stat.Records),
		zap.Int64("usedBuckets", stat.UsedBuckets),
		zap.Int64("longestChain", stat.LongestChain),
		zap.Float64("loadFactor", stat.LoadFactor))

	return 0
}
