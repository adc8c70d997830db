// Command heroconv converts a narrative hero write-up into a roster document.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"neonknights/pkg/loader"
	"neonknights/pkg/parser"
	"neonknights/pkg/shared/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var in, out, catalogPath string
	flag.StringVar(&in, "in", filepath.Join(cfg.AssetsDir, "metahumans.txt"), "narrative text file")
	flag.StringVar(&out, "out", cfg.RosterPath, "roster document (.json, .db or .sqlite)")
	flag.StringVar(&catalogPath, "catalog", cfg.CatalogPath, "YAML stats/gender catalog (default: built-in)")
	flag.Parse()

	catalog := parser.DefaultCatalog()
	if catalogPath != "" {
		catalog, err = parser.LoadCatalog(catalogPath)
		if err != nil {
			log.Fatalf("catalog: %v", err)
		}
	}

	fmt.Printf("Parsing %s...\n", in)
	heroes, err := parser.New(catalog).ParseFile(in)
	if err != nil {
		log.Fatalf("read %s: %v", in, err)
	}
	if len(heroes) == 0 {
		log.Fatalf("no heroes found in %s", in)
	}

	l := loader.New(loader.WithDescription("Neon Knights Hero Data - Generated from " + filepath.Base(in)))
	for _, h := range heroes {
		if err := l.AddTemplate(h); err != nil {
			log.Printf("Skipping %q: %v", h.Name, err)
		}
	}
	if err := l.Save(out); err != nil {
		log.Fatalf("save: %v", err)
	}

	fmt.Printf("Converted %d heroes to %s\n", l.Len(), out)
	for _, h := range heroes {
		fmt.Printf("  - %s (%s)\n", h.Name, h.Gender)
	}
}
