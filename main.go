package main

import (
	"log"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/analysis/singlechecker"

	"bizobj/bizcheck"
)

const configFileName = "bizcheck.json"

// defaultConfigPath picks up bizcheck.json from the working directory so a
// project can commit its settings; -config still wins.
func defaultConfigPath() string {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("could not get working dir: %v", err)
	}
	path := filepath.Join(wd, configFileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bizcheck: ")
	err := bizcheck.Analyzer.Flags.Set("config", defaultConfigPath())
	if err != nil {
		log.Fatalf("error setting the default config: %v", err)
	}
	singlechecker.Main(bizcheck.Analyzer)
}
