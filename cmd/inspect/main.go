// Command inspect connects to an arena server and prints its snapshots.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"neonknights/pkg/network"
	"neonknights/pkg/shared/config"
	protocol "neonknights/pkg/shared/network"
)

func main() {
	var addr string
	var every time.Duration
	flag.StringVar(&addr, "addr", "127.0.0.1"+config.ServerPortTCP, "arena server address")
	flag.DurationVar(&every, "every", time.Second, "print interval")
	flag.Parse()

	protocol.RegisterGobTypes()
	insp, err := network.Connect(addr)
	if err != nil {
		log.Fatalf("connect %s: %v", addr, err)
	}
	defer insp.Close()

	arena := insp.GetArena()
	roster := insp.GetRoster()
	fmt.Printf("Arena %.0fx%.0f, roster of %d\n", arena.Width, arena.Height, len(roster.Summary))
	names := make([]string, 0, len(roster.Summary))
	for name := range roster.Summary {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s := roster.Summary[name]
		fmt.Printf("  %-16s %-6s total %d\n", name, s.Gender, s.TotalPower)
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-insp.Done():
			return
		case <-ticker.C:
			state := insp.GetState()
			fmt.Printf("tick %d\n", state.Tick)
			for _, h := range state.Heroes {
				fmt.Printf("  %-16s %-7s f%d (%6.1f,%6.1f) hp %5.1f/%-5.1f en %5.1f/%-5.1f\n",
					h.Name, h.State, h.Frame, h.X, h.Y, h.HP, h.MaxHP, h.Energy, h.MaxEnergy)
			}
		}
	}
}
