// Trace samples one avatar's cycle over a time range and prints a table.
// Useful for eyeballing determinism: the same elapsed value always prints
// the same row, no matter what was sampled before it.
//
//	go run ./cmd/trace -entity research -from 0 -to 26 -step 0.5
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ambientworks/go-officeanim/pkg/animate"
	"github.com/ambientworks/go-officeanim/pkg/scene"
)

func main() {
	var (
		sceneName = flag.String("scene", "office", "embedded scene name")
		sceneFile = flag.String("scene-file", "", "scene YAML file (overrides -scene)")
		entity    = flag.String("entity", "", "entity name (default: first in scene)")
		from      = flag.Float64("from", 0, "start of elapsed range (seconds)")
		to        = flag.Float64("to", 30, "end of elapsed range (seconds)")
		step      = flag.Float64("step", 0.5, "sample step (seconds)")
	)
	flag.Parse()

	if *step <= 0 || *to < *from {
		fmt.Fprintln(os.Stderr, "❌ need step > 0 and to >= from")
		os.Exit(1)
	}

	var (
		scn *scene.Scene
		err error
	)
	if *sceneFile != "" {
		scn, err = scene.LoadFromFile(*sceneFile)
	} else {
		scn, err = scene.LoadEmbedded(*sceneName)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ failed to load scene: %v\n", err)
		os.Exit(1)
	}

	target := scn.Entities[0]
	if *entity != "" {
		target = nil
		for _, e := range scn.Entities {
			if e.Name() == *entity {
				target = e
				break
			}
		}
		if target == nil {
			fmt.Fprintf(os.Stderr, "❌ no entity %q in scene %q\n", *entity, scn.Name)
			os.Exit(1)
		}
	}

	cfg := target.Config()
	fmt.Printf("🚶 %s — cycle %.1fs (forward %.1fs, dwell %.1fs, offset %.1fs)\n\n",
		target.Name(), cfg.CycleSeconds(), cfg.ForwardSeconds, cfg.DwellSeconds, cfg.OffsetSeconds)

	fmt.Printf("%8s  %-11s  %6s  %24s  %7s  %7s  %s\n",
		"elapsed", "phase", "t", "position", "bob", "roll", "dialog")

	for elapsed := *from; elapsed <= *to+1e-9; elapsed += *step {
		ps := animate.PhaseAt(elapsed, cfg.OffsetSeconds, cfg)
		pose, dialog := target.At(elapsed)

		visible := ""
		if dialog.Visible {
			visible = "💬 " + dialog.Label
		}

		fmt.Printf("%8.2f  %-11s  %6.3f  (%6.2f, %5.2f, %6.2f)  %+7.3f  %+7.3f  %s\n",
			elapsed, ps.Phase, ps.LocalT,
			pose.Position.X(), pose.Position.Y(), pose.Position.Z(),
			pose.VerticalOffset, pose.Roll, visible)
	}
}
