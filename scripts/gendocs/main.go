// Package main provides a generator that extracts CLI, configuration and catalog metadata
// from logviews source code and generates markdown documentation.
//
// Usage:
//
//	go run ./scripts/gendocs -gen=cli -outdir=docs/cli
//	go run ./scripts/gendocs -gen=schema -outdir=docs/concepts
//	go run ./scripts/gendocs -gen=catalog -outdir=docs/reference
//	go run ./scripts/gendocs -gen=all
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
)

var (
	genFlag    = flag.String("gen", "all", "what to generate: cli, schema, catalog, all")
	outDirFlag = flag.String("outdir", "", "output directory (defaults based on gen type)")
)

// generators maps each -gen value to its generator and default output directory.
var generators = map[string]struct {
	dir string
	run func(outDir string) error
}{
	"cli":     {dir: "cli", run: generateCLIDocs},
	"schema":  {dir: "concepts", run: generateSchemaDocs},
	"catalog": {dir: "reference", run: generateCatalogDocs},
}

func main() {
	flag.Parse()

	validGenFlags := map[string]bool{"cli": true, "schema": true, "catalog": true, "all": true}
	if !validGenFlags[*genFlag] {
		log.Fatalf("unknown -gen value: %s (use: cli, schema, catalog, all)", *genFlag)
	}

	// Find project root (where go.mod is)
	projectRoot, err := findProjectRoot()
	if err != nil {
		log.Fatalf("failed to find project root: %v", err)
	}

	log.Printf("Project root: %s", projectRoot)

	if *genFlag != "all" {
		g := generators[*genFlag]
		outDir := *outDirFlag
		if outDir == "" {
			outDir = filepath.Join(projectRoot, "docs", g.dir)
		}
		if err := g.run(outDir); err != nil {
			log.Fatalf("failed to generate %s docs: %v", *genFlag, err)
		}
		log.Println("Done!")
		return
	}

	for _, name := range []string{"cli", "schema", "catalog"} {
		g := generators[name]
		if err := g.run(filepath.Join(projectRoot, "docs", g.dir)); err != nil {
			log.Fatalf("failed to generate %s docs: %v", name, err)
		}
	}

	log.Println("Done!")
}

// findProjectRoot walks up from current directory to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
