package main

import (
	"os"
	"strconv"
	"strings"
)

const (
	defaultEntriesPath = "/data/entries.bin"
	defaultResultPath  = "/public/result.bin"
	defaultHealthPort  = "3001"
	defaultNumWinners  = 1
)

// Config is the runtime configuration for a single raffle run, read
// from environment variables: every field has a hardcoded default,
// overridable by a PLINKO_RAFFLE_-prefixed variable.
type Config struct {
	EntriesPath string
	ResultPath  string
	SeedHex     string
	NumWinners  uint64
	HealthPort  string
	IPFSAPI     string
	IPFSGateway string
}

func LoadConfig() Config {
	cfg := Config{
		EntriesPath: defaultEntriesPath,
		ResultPath:  defaultResultPath,
		NumWinners:  defaultNumWinners,
		HealthPort:  defaultHealthPort,
	}

	if v := firstNonEmpty(os.Getenv("PLINKO_RAFFLE_ENTRIES_PATH")); v != "" {
		cfg.EntriesPath = v
	}
	if v := firstNonEmpty(os.Getenv("PLINKO_RAFFLE_RESULT_PATH")); v != "" {
		cfg.ResultPath = v
	}
	if v := firstNonEmpty(os.Getenv("PLINKO_RAFFLE_SEED")); v != "" {
		cfg.SeedHex = v
	}
	if v := firstNonEmpty(os.Getenv("PLINKO_RAFFLE_HEALTH_PORT")); v != "" {
		cfg.HealthPort = v
	}
	if v := firstNonEmpty(os.Getenv("PLINKO_RAFFLE_IPFS_API")); v != "" {
		cfg.IPFSAPI = v
	}
	if v := firstNonEmpty(os.Getenv("PLINKO_RAFFLE_IPFS_GATEWAY")); v != "" {
		cfg.IPFSGateway = v
	}
	if v := firstNonEmpty(os.Getenv("PLINKO_RAFFLE_NUM_WINNERS")); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil && n > 0 {
			cfg.NumWinners = n
		}
	}

	cfg.EntriesPath = strings.TrimSpace(cfg.EntriesPath)
	cfg.ResultPath = strings.TrimSpace(cfg.ResultPath)
	cfg.HealthPort = strings.TrimSpace(cfg.HealthPort)

	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			return trimmed
		}
	}
	return ""
}
