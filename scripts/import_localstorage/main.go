// Command import_localstorage converts a browser localStorage dump from the
// legacy timetable app into the file-store layout this service reads.
//
// The dump is a single JSON object keyed by the localStorage entry names,
// each value holding the already-parsed blob:
//
//	{
//	  "teachingAssignments": [ ... ],
//	  "mtsSchedule": { ... },
//	  "maSchedule": { ... }
//	}
//
// Usage:
//
//	go run ./scripts/import_localstorage -in export.json -out ./data
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var knownKeys = []string{"teachingAssignments", "mtsSchedule", "maSchedule"}

func main() {
	in := flag.String("in", "", "path to the localStorage JSON dump")
	out := flag.String("out", "./data", "file-store directory to write into")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	raw, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("read dump: %v", err)
	}

	var dump map[string]json.RawMessage
	if err := json.Unmarshal(raw, &dump); err != nil {
		log.Fatalf("parse dump: %v", err)
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("create store directory: %v", err)
	}

	imported := 0
	for _, key := range knownKeys {
		blob, ok := dump[key]
		if !ok {
			fmt.Printf("skip %-20s (not in dump)\n", key)
			continue
		}
		path := filepath.Join(*out, key+".json")
		if err := os.WriteFile(path, blob, 0o644); err != nil {
			log.Fatalf("write %s: %v", key, err)
		}
		fmt.Printf("wrote %-20s -> %s (%d bytes)\n", key, path, len(blob))
		imported++
	}

	for key := range dump {
		known := false
		for _, k := range knownKeys {
			if k == key {
				known = true
				break
			}
		}
		if !known {
			fmt.Printf("skip %-20s (unrecognized key)\n", key)
		}
	}

	if imported == 0 {
		log.Fatal("nothing imported: dump contains none of the known keys")
	}
}
