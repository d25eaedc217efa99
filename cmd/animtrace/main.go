// Command animtrace runs an animation set headlessly and prints the state of
// every animation after each clock tick.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/automoto/marquee/assets/animations"
	"github.com/automoto/marquee/shared/animset"
)

func main() {
	configPath := flag.String("config", "", "Animation YAML file (empty = built-in title screen)")
	steps := flag.Int("steps", 120, "Number of clock ticks to run")
	dt := flag.Duration("dt", 50*time.Millisecond, "Wall time between ticks")
	scale := flag.Float64("scale", 1, "Clock time scale")
	seed := flag.Int64("seed", 1, "Random seed for group selection")
	flag.Parse()

	set, err := loadSet(*configPath)
	if err != nil {
		log.Fatalf("Failed to load animations: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if err := run(out, set, *steps, *dt, *scale, *seed); err != nil {
		log.Fatalf("Trace failed: %v", err)
	}
}

func loadSet(path string) (*animset.Set, error) {
	if path == "" {
		return animset.Default()
	}
	return animset.LoadFile(path)
}

// run drives set through steps ticks of a synthetic clock and writes one line
// per animation per tick.
func run(w io.Writer, set *animset.Set, steps int, dt time.Duration, scale float64, seed int64) error {
	tl, err := set.Build(rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	clock := animations.NewClock(time.Unix(0, 0), scale, tl.Update)
	names := append(tl.Sync.Names(), standalone(set)...)

	var elapsed float64
	for tick := 0; tick <= steps; tick++ {
		if tick > 0 {
			elapsed += clock.Advance(dt)
		}
		for _, name := range names {
			frame, _ := tl.Frame(name)
			if _, err := fmt.Fprintln(w, formatTick(tick, elapsed, name, frame, tl.Instances[name].State())); err != nil {
				return err
			}
		}
	}
	return nil
}

func standalone(set *animset.Set) []string {
	var names []string
	for _, name := range set.Names() {
		if name != set.Driver && set.Animations[name].Follows == "" {
			names = append(names, name)
		}
	}
	return names
}

func formatTick(tick int, elapsed float64, name string, frame animations.FrameData, st animations.State) string {
	flash, paused := "-", "-"
	if frame.Effects.Flash {
		flash = "F"
	}
	if st.Paused {
		paused = "P"
	}
	return fmt.Sprintf("%5d %8.3fs %-8s %-7s %4d %s%s %-10s (%d,%d)",
		tick, elapsed, name, st.Phase, st.FrameIndex, flash, paused,
		frame.Metadata.GroupID, frame.Coords.X, frame.Coords.Y)
}
