package main

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"plinko-raffle/internal/raffle"
)

// Manifest is a human-readable JSON summary written alongside the
// binary result fixture.
type Manifest struct {
	GeneratedAt time.Time `json:"generated_at"`
	NumWinners  int       `json:"num_winners"`
	CommitRoot  string    `json:"commit_root"`
	Seed        string    `json:"seed"`
	WinnersRoot string    `json:"winners_root"`
	Winners     []string  `json:"winners"`
	ResultFile  string    `json:"result_file"`
}

func writeManifest(path string, result raffle.Result, resultFile string) error {
	winners := make([]string, len(result.Winners))
	for i, addr := range result.Winners {
		winners[i] = addr.Hex()
	}

	manifest := Manifest{
		GeneratedAt: time.Now().UTC(),
		NumWinners:  len(result.Winners),
		CommitRoot:  "0x" + hex.EncodeToString(result.CommitRoot[:]),
		Seed:        "0x" + hex.EncodeToString(result.Seed[:]),
		WinnersRoot: "0x" + hex.EncodeToString(result.WinnersRoot[:]),
		Winners:     winners,
		ResultFile:  resultFile,
	}

	return writeJSONAtomic(path, manifest)
}

func writeJSONAtomic(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}
