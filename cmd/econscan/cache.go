package main

import (
	"github.com/spf13/cobra"

	"github.com/pointbreak71/econscan/internal/fetchcache"
)

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or maintain the HTTP fetch cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show fetch cache statistics",
	RunE:  runCacheStats,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every cached response",
	RunE:  runCacheClear,
}

func openCache() *fetchcache.Cache {
	cfg := mustLoadConfig()
	cache, err := fetchcache.Open(cfg.Enrichment.CachePath)
	if err != nil {
		exitWithError(ExitError, "opening fetch cache: %v", err)
	}
	return cache
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	cache := openCache()
	defer cache.Close()

	stats, err := cache.Stats()
	if err != nil {
		exitWithError(ExitError, "reading cache stats: %v", err)
	}
	return outputJSON(stats)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	cache := openCache()
	defer cache.Close()

	if err := cache.Clear(); err != nil {
		exitWithError(ExitError, "clearing cache: %v", err)
	}
	return nil
}
