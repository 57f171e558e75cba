// Command plinko-raffle runs a single verifiable weighted raffle: it
// loads an entry list, draws winners under a caller-supplied seed,
// writes the public (commit_root, seed, winners_root) fixture, and
// optionally pins that fixture to IPFS. It is the ambient harness
// around the pure internal/raffle core — not the zero-knowledge
// proving pipeline that consumes the same core inside a guest
// program.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"plinko-raffle/internal/metrics"
	"plinko-raffle/internal/publish"
	"plinko-raffle/internal/raffle"
	"plinko-raffle/internal/wire"
)

var metricsCollector metrics.Collector

func main() {
	log.Println("========================================")
	log.Println("Plinko Raffle")
	log.Println("========================================")

	cfg := LoadConfig()
	log.Printf("Configuration: entries=%s, result=%s, num_winners=%d, health_port=%s\n",
		cfg.EntriesPath, cfg.ResultPath, cfg.NumWinners, cfg.HealthPort)

	go startHealthServer(cfg)

	entries, err := wire.ReadEntries(cfg.EntriesPath)
	if err != nil {
		log.Fatalf("Failed to read entries: %v", err)
	}
	log.Printf("Loaded %d entries spanning domain [0, %d)\n", len(entries), entries.Domain())

	seed, err := parseSeed(cfg.SeedHex)
	if err != nil {
		log.Fatalf("Invalid seed: %v", err)
	}

	start := time.Now()
	result, err := raffle.RunRaffle(seed, entries, cfg.NumWinners)
	duration := time.Since(start)
	if err != nil {
		log.Fatalf("Raffle failed: %v", err)
	}
	metricsCollector.RecordDraw(len(result.Winners), duration)

	log.Printf("Drew %d winners in %v\n", len(result.Winners), duration)
	for i, addr := range result.Winners {
		log.Printf("  winner[%d] = %s\n", i, addr.Hex())
	}
	log.Printf("commit_root  = 0x%x\n", result.CommitRoot)
	log.Printf("winners_root = 0x%x\n", result.WinnersRoot)

	if err := wire.WriteResult(cfg.ResultPath, result); err != nil {
		log.Fatalf("Failed to write result: %v", err)
	}
	log.Printf("Wrote result fixture to %s\n", cfg.ResultPath)

	manifestPath := cfg.ResultPath + ".manifest.json"
	if err := writeManifest(manifestPath, result, cfg.ResultPath); err != nil {
		log.Printf("Failed to write manifest: %v\n", err)
	} else {
		log.Printf("Wrote manifest to %s\n", manifestPath)
	}

	publisher, err := publish.New(cfg.IPFSAPI, cfg.IPFSGateway)
	if err != nil {
		log.Printf("IPFS publisher unavailable, skipping publish: %v\n", err)
	} else if publisher != nil {
		cid, err := publisher.PublishFile(cfg.ResultPath)
		if err != nil {
			log.Printf("Failed to publish result to IPFS: %v\n", err)
		} else {
			log.Printf("Published result: cid=%s url=%s\n", cid, publisher.GatewayURL(cid))
		}
	}

	log.Println("========================================")
	log.Println("Done")
}

// parseSeed accepts a 0x-prefixed or bare hex string up to 32 bytes,
// left-padding with zeros; an empty string yields the all-zero seed.
func parseSeed(seedHex string) (raffle.Seed, error) {
	var seed raffle.Seed

	trimmed := strings.TrimPrefix(strings.TrimSpace(seedHex), "0x")
	if trimmed == "" {
		return seed, nil
	}

	decoded, err := hex.DecodeString(trimmed)
	if err != nil {
		return seed, fmt.Errorf("decode seed hex: %w", err)
	}
	if len(decoded) > len(seed) {
		return seed, fmt.Errorf("seed too long: %d bytes, max %d", len(decoded), len(seed))
	}

	copy(seed[len(seed)-len(decoded):], decoded)
	return seed, nil
}

func startHealthServer(cfg Config) {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat(cfg.EntriesPath); os.IsNotExist(err) {
			http.Error(w, "entries not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"healthy","service":"plinko-raffle"}`)
	})

	mux.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(metricsCollector.Snapshot())
	})

	log.Printf("Health check server listening on :%s\n", cfg.HealthPort)
	if err := http.ListenAndServe(":"+cfg.HealthPort, mux); err != nil {
		log.Printf("Health server error: %v\n", err)
	}
}
