// Command arenagen writes an arena file with one spawner per roster hero.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"neonknights/pkg/loader"
	"neonknights/pkg/shared/config"
	"neonknights/pkg/shared/world"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var out, rosterPath string
	var width, height float64
	var extra int
	var seed int64
	flag.StringVar(&out, "out", cfg.ArenaPath, "arena file to write")
	flag.StringVar(&rosterPath, "roster", cfg.RosterPath, "roster document naming the heroes")
	flag.Float64Var(&width, "w", config.ScreenWidth, "arena width")
	flag.Float64Var(&height, "h", config.ScreenHeight, "arena height")
	flag.IntVar(&extra, "random", 2, "extra random-hero spawners")
	flag.Int64Var(&seed, "seed", cfg.RNGSeed, "placement seed (0 = clock)")
	flag.Parse()

	l := loader.New()
	l.Load(rosterPath)

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	def := world.ArenaDefinition{Width: width, Height: height}
	place := func() (float64, float64) {
		maxX := width - config.SpriteWidth
		maxY := height - config.SpriteHeight
		return rng.Float64() * maxX, rng.Float64() * maxY
	}

	for _, name := range l.Names() {
		x, y := place()
		def.Spawners = append(def.Spawners, world.SpawnerDef{X: x, Y: y, Hero: name})
	}
	genders := []string{"", "male", "female"}
	for i := 0; i < extra; i++ {
		x, y := place()
		def.Spawners = append(def.Spawners, world.SpawnerDef{X: x, Y: y, Gender: genders[i%len(genders)]})
	}

	file, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	if dir := filepath.Dir(out); dir != "." {
		os.MkdirAll(dir, 0755)
	}
	if err := os.WriteFile(out, file, 0644); err != nil {
		log.Fatalf("write %s: %v", out, err)
	}
	fmt.Printf("Generated %s with %d spawners\n", out, len(def.Spawners))
}
