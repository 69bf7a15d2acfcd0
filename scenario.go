package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/memmaker/targeter/engine/geom"
	"github.com/memmaker/targeter/engine/grid"
	"github.com/memmaker/targeter/engine/util"
	"github.com/memmaker/targeter/game"
)

// Scenario is a map, the units on it, one targeter and the aims to preview.
type Scenario struct {
	Map      []string     `json:"map"`
	MapFile  string       `json:"map_file"`
	Units    []UnitSpec   `json:"units"`
	Targeter TargeterSpec `json:"targeter"`
	Aims     []PointSpec  `json:"aims"`
}

type PointSpec struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

func (p PointSpec) Int2() geom.Int2 {
	return geom.Int2{X: p.X, Y: p.Y}
}

type UnitSpec struct {
	Name     string      `json:"name"`
	Pos      PointSpec   `json:"pos"`
	Player   bool        `json:"player"`
	Attitude string      `json:"attitude"`
	Traits   game.Traits `json:"traits"`
}

type TargeterSpec struct {
	Kind         string     `json:"kind"`
	Range        int        `json:"range"`
	RangeMin     int        `json:"range_min"`
	RangeMax     int        `json:"range_max"`
	MinExplosion int        `json:"min_explosion"`
	MaxExplosion int        `json:"max_explosion"`
	Pierce       bool       `json:"pierce"`
	Bounces      int        `json:"bounces"`
	Flavour      string     `json:"flavour"`
	WallsOK      bool       `json:"walls_ok"`
	Beams        int        `json:"beams"`
	UsesClouds   bool       `json:"uses_clouds"`
	CountMin     int        `json:"count_min"`
	CountMax     int        `json:"count_max"`
	LOS          string     `json:"los"`
	Prev         *PointSpec `json:"prev"`
}

var attitudes = map[string]game.Attitude{
	"":         game.AttHostile,
	"hostile":  game.AttHostile,
	"neutral":  game.AttNeutral,
	"friendly": game.AttFriendly,
}

func LoadScenario(filename string) (*Scenario, error) {
	var s Scenario
	if err := util.ReadJsonFile(filename, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// BuildWorld creates the map and places the units. The player unit is returned as the agent.
func (s *Scenario) BuildWorld() (*game.MapWorld, *game.Unit, error) {
	var m *grid.Map
	var err error
	switch {
	case s.MapFile != "" && !util.DoesFileExist(s.MapFile):
		err = errors.Errorf("map file %s does not exist", s.MapFile)
	case s.MapFile != "":
		m, err = grid.LoadFromFile(s.MapFile)
	case len(s.Map) > 0:
		m, err = grid.ParseASCII(strings.Join(s.Map, "\n"))
	default:
		err = errors.New("scenario has neither map nor map_file")
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "building map")
	}
	world := game.NewMapWorld(m)

	var player *game.Unit
	for i, spec := range s.Units {
		id := uint64(i + 1)
		var u *game.Unit
		if spec.Player {
			if player != nil {
				return nil, nil, errors.Errorf("unit %q: only one player allowed", spec.Name)
			}
			u = game.NewPlayer(id, spec.Name)
			player = u
		} else {
			att, ok := attitudes[strings.ToLower(spec.Attitude)]
			if !ok {
				return nil, nil, errors.Errorf("unit %q: unknown attitude %q", spec.Name, spec.Attitude)
			}
			u = game.NewMonster(id, spec.Name, att, spec.Traits)
		}
		if !world.PlaceUnit(u, spec.Pos.Int2()) {
			return nil, nil, errors.Errorf("unit %q cannot be placed at %s", spec.Name, spec.Pos.Int2().ToString())
		}
	}
	if player == nil {
		return nil, nil, errors.New("scenario has no player unit")
	}
	util.LogScenarioInfo(fmt.Sprintf("[Scenario] %dx%d map, %d units", m.Width(), m.Height(), len(s.Units)))
	return world, player, nil
}

// BuildTargeter creates the targeter the scenario names. Invalid parameters are reported as errors.
func (s *Scenario) BuildTargeter(agent game.Actor, world game.World) (tg game.Targeter, err error) {
	spec := s.Targeter
	defer func() {
		if r := recover(); r != nil {
			tg = nil
			err = errors.Errorf("targeter %q: %v", spec.Kind, r)
		}
	}()
	flavour := game.FlavourMagic
	if spec.Flavour != "" {
		f, ok := game.ParseFlavour(spec.Flavour)
		if !ok {
			return nil, errors.Errorf("unknown flavour %q", spec.Flavour)
		}
		flavour = f
	}
	switch spec.Kind {
	case "view":
		return game.NewViewTargeter(agent, world), nil
	case "beam":
		return game.NewBeamTargeter(agent, world, game.BeamConfig{
			Range:        spec.Range,
			Flavour:      flavour,
			Pierce:       spec.Pierce,
			MinExplosion: spec.MinExplosion,
			MaxExplosion: spec.MaxExplosion,
			Bounces:      spec.Bounces,
		}), nil
	case "unravelling":
		return game.NewUnravellingTargeter(agent, world, spec.Range), nil
	case "monster_sequence":
		return game.NewMonsterSequenceTargeter(agent, world, spec.Range), nil
	case "dig":
		return game.NewDigTargeter(agent, world, spec.Range), nil
	case "smite":
		return game.NewSmiteTargeter(agent, world, game.SmiteConfig{
			Range:        spec.Range,
			MinExplosion: spec.MinExplosion,
			MaxExplosion: spec.MaxExplosion,
			WallsOK:      spec.WallsOK,
		}), nil
	case "fragment":
		return game.NewFragmentTargeter(agent, world, spec.Range), nil
	case "transference":
		return game.NewTransferenceTargeter(agent, world, spec.MaxExplosion), nil
	case "walljump":
		return game.NewWallJumpTargeter(agent, world), nil
	case "passwall":
		return game.NewPasswallTargeter(agent, world, spec.Range), nil
	case "cone":
		return game.NewConeTargeter(agent, world, spec.Range), nil
	case "shotgun":
		return game.NewShotgunTargeter(agent, world, spec.Beams, spec.Range, spec.UsesClouds), nil
	case "thunderbolt":
		var prev *geom.Int2
		if spec.Prev != nil {
			p := spec.Prev.Int2()
			prev = &p
		}
		return game.NewThunderboltTargeter(agent, world, spec.Range, prev), nil
	case "cloud":
		return game.NewCloudTargeter(agent, world, spec.Range, spec.CountMin, spec.CountMax), nil
	case "reach":
		return game.NewReachTargeter(agent, world, spec.Range), nil
	case "cleave":
		if len(s.Aims) == 0 {
			return nil, errors.New("cleave needs an aim")
		}
		return game.NewCleaveTargeter(agent, world, s.Aims[0].Int2()), nil
	case "shadow_step":
		return game.NewShadowStepTargeter(agent, world, spec.Range), nil
	case "splash":
		return game.NewSplashTargeter(agent, world, spec.Range), nil
	case "radius":
		mode := grid.LOSDefault
		switch spec.LOS {
		case "", "default":
		case "notrans":
			mode = grid.LOSNoTrans
		default:
			return nil, errors.Errorf("unknown los mode %q", spec.LOS)
		}
		return game.NewRadiusTargeter(agent, world, mode, spec.Range, spec.RangeMax, spec.RangeMin), nil
	case "overgrow":
		return game.NewOvergrowTargeter(agent, world), nil
	}
	return nil, errors.Errorf("unknown targeter kind %q", spec.Kind)
}
