package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/memmaker/targeter/engine/geom"
	"github.com/memmaker/targeter/engine/util"
	"github.com/memmaker/targeter/game"
)

var affGlyphs = map[game.AffType]rune{
	game.AffTracer:   ',',
	game.AffMaybe:    ':',
	game.AffYes:      '*',
	game.AffLanding:  '^',
	game.AffMultiple: '&',
}

// runPreview sets every aim of the scenario in turn and prints the affected cells over the map.
func runPreview(scenario *Scenario, columns int, out io.Writer) error {
	world, player, err := scenario.BuildWorld()
	if err != nil {
		return err
	}
	tg, err := scenario.BuildTargeter(player, world)
	if err != nil {
		return err
	}
	util.LogScenarioInfo(fmt.Sprintf("[Preview] %s targeter at %s, %d aims", scenario.Targeter.Kind, tg.Origin().ToString(), len(scenario.Aims)))

	for _, aimSpec := range scenario.Aims {
		aim := aimSpec.Int2()
		status := "valid"
		if !tg.SetAim(aim) {
			status = "rejected"
		} else if ok, reason := tg.ValidAim(aim); !ok {
			status = reason
		}
		if _, err := fmt.Fprintf(out, "aim %s: %s\n", aim.ToString(), status); err != nil {
			return err
		}
		rendered := world.Render(func(p geom.Int2) (rune, bool) {
			r, ok := affGlyphs[tg.IsAffected(p)]
			return r, ok
		})
		for _, line := range strings.Split(strings.TrimSuffix(rendered, "\n"), "\n") {
			if _, err := fmt.Fprintln(out, cutLine(line, columns)); err != nil {
				return err
			}
		}
	}
	return nil
}

func cutLine(line string, columns int) string {
	runes := []rune(line)
	if columns <= 0 || len(runes) <= columns {
		return line
	}
	return string(runes[:columns])
}
