// Command roster prints the loaded roster and can add a demo hero.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"neonknights/pkg/characters"
	"neonknights/pkg/loader"
	"neonknights/pkg/shared/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var path, savePath string
	var add bool
	flag.StringVar(&path, "roster", cfg.RosterPath, "roster document to load")
	flag.BoolVar(&add, "add", false, "add the Cyber Ninja demo hero")
	flag.StringVar(&savePath, "save", "", "write the roster here after changes")
	flag.Parse()

	l := loader.New(loader.WithSeed(cfg.RNGSeed))
	if err := l.Load(path); err != nil {
		os.Exit(1)
	}

	fmt.Printf("Available heroes (%d):\n", l.Len())
	for i, name := range l.Names() {
		t, _ := l.Template(name)
		fmt.Printf("  %d. %s (%s)\n", i+1, name, t.Gender)
	}

	fmt.Println("\nHeroes by gender:")
	for _, g := range []characters.Gender{characters.Male, characters.Female} {
		var names []string
		for _, t := range l.ByGender(g) {
			names = append(names, t.Name)
		}
		fmt.Printf("  %s (%d): %s\n", g, len(names), strings.Join(names, ", "))
	}

	fmt.Println("\nStats summary:")
	summary := l.StatsSummary()
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  NAME\tGENDER\tHP\tSPEED\tSTR\tENERGY\tTOTAL")
	for _, name := range l.Names() {
		s := summary[name]
		fmt.Fprintf(tw, "  %s\t%s\t%d\t%d\t%d\t%d\t%d\n", name, s.Gender, s.HP, s.Speed, s.Strength, s.Energy, s.TotalPower)
	}
	tw.Flush()

	if h, ok := l.SpawnRandom(0, 0, ""); ok {
		info := h.Info()
		fmt.Printf("\nRandom spawn: %s [%s] body %s, hp %.0f, energy %.0f\n", info.Name, info.ID, info.Body, info.HP, info.Energy)
	}

	if add {
		t, err := loader.NewTemplate(
			"Cyber Ninja",
			"A stealthy warrior enhanced with cybernetic implants.",
			characters.HeroAttacks{
				ShortAttack: "Katana slashes and throwing stars.",
				LongAttack:  "Cyber shuriken barrage.",
				Special:     "Shadow clone technique.",
				SuperPower:  "Digital phantom mode - becomes untouchable.",
			},
			map[string]int{"hp": 85, "speed": 95, "strength": 65, "energy": 90},
			"male",
		)
		if err != nil {
			log.Fatalf("template: %v", err)
		}
		if err := l.AddTemplate(t); err != nil {
			log.Fatalf("add: %v", err)
		}
		fmt.Printf("\nAdded %s (sprite %s); roster now has %d heroes\n", t.Name, t.SpritePath(), l.Len())
	}

	if savePath != "" {
		if err := l.Save(savePath); err != nil {
			os.Exit(1)
		}
	}
}
