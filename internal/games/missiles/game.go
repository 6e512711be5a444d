// Package missiles implements a ground-defense game: threats fall from the
// top of the field toward cities and launchers on the ground line, and the
// player fires interceptors that detonate into expanding blasts.
//
// The simulation runs in a virtual field measured in abstract units
// (default 800x600) so that speeds, radii, and scoring are independent of
// terminal size; rendering scales field coordinates to screen cells and
// input scales cells back to field coordinates.
package missiles

import (
	"math"

	"github.com/vovakirdan/tui-defense/internal/config"
	"github.com/vovakirdan/tui-defense/internal/core"
)

// Launcher positions as fractions of field width.
var launcherFractions = []float64{0.125, 0.5, 0.875}

// City positions as fractions of field width: two clusters of three,
// flanking the center launcher.
var cityFractions = []float64{0.25, 0.3125, 0.375, 0.625, 0.6875, 0.75}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the defense game logic.
type Game struct {
	// Entity collections, owned exclusively by the game and mutated only
	// during Step. Update passes rebuild them snapshot-and-filter style.
	launchers    []*Launcher
	targets      []*Target
	interceptors []*Missile
	threats      []*Missile
	blasts       []*Blast

	// Last known pointer position in screen cells (crosshair)
	pointer core.Pointer

	// Game state
	score    int
	level    int
	gameOver bool
	paused   bool

	tickCount     int
	spawnTimer    int // Ticks accumulated toward the next threat spawn
	spawnInterval int // Current ticks between spawns (ramps down per level)
	quota         int // Threats that must spawn before the level can complete
	spawned       int // Threats spawned so far this level

	// Level-transition flash cue
	flashTimer int
	flashColor core.Color

	// Cosmetic colors, re-rolled each level
	threatColor      core.Color
	interceptorColor core.Color

	rng *core.RNG

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.DefenseConfig

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new defense game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "missiles"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Missile Defense"
}

// Reset initializes or restarts the game to level-1 starting conditions.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDefense(configPath)
	if err != nil {
		cfg = config.DefaultDefenseConfig()
	}
	g.cfg = cfg

	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.rng = core.NewRNG(runtime.Seed)

	g.score = 0
	g.level = 1
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.spawnTimer = 0
	g.spawnInterval = cfg.Spawning.InitialInterval
	g.spawned = 0
	g.flashTimer = 0
	g.pointer = core.Pointer{}

	groundY := g.groundY()

	g.launchers = make([]*Launcher, 0, len(launcherFractions))
	for i, f := range launcherFractions {
		g.launchers = append(g.launchers, &Launcher{
			Pos:    core.Vec2{X: f * cfg.Field.Width, Y: groundY},
			Side:   Side(i),
			Active: true,
			Ammo:   cfg.Launchers.StartingAmmo,
		})
	}

	g.targets = make([]*Target, 0, len(cityFractions))
	for _, f := range cityFractions {
		g.targets = append(g.targets, &Target{
			Pos:    core.Vec2{X: f * cfg.Field.Width, Y: groundY},
			Active: true,
		})
	}

	g.interceptors = make([]*Missile, 0, 16)
	g.threats = make([]*Missile, 0, 16)
	g.blasts = make([]*Blast, 0, 16)

	g.quota = g.totalAmmo()

	g.threatColor = core.ColorBrightRed
	g.interceptorColor = core.ColorBrightGreen
	for _, t := range g.targets {
		t.Color = g.randomColor()
	}
}

// groundY returns the y-coordinate of the ground line in field units.
func (g *Game) groundY() float64 {
	return g.cfg.Field.Height - g.cfg.Field.GroundMargin
}

// totalAmmo sums ammo across all launchers.
func (g *Game) totalAmmo() int {
	total := 0
	for _, l := range g.launchers {
		total += l.Ammo
	}
	return total
}

// anyTargetActive reports whether at least one city still stands.
func (g *Game) anyTargetActive() bool {
	for _, t := range g.targets {
		if t.Active {
			return true
		}
	}
	return false
}

func (g *Game) randomColor() core.Color {
	return core.BrightPalette[g.rng.Intn(len(core.BrightPalette))]
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Restart is only valid from game over
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	// Track the crosshair even while paused
	if in.Pointer.Valid {
		g.pointer = in.Pointer
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	var events []core.Event

	// Fire requests: each button maps to one launcher
	for _, f := range in.Fires {
		g.handleFire(f, &events)
	}

	// Flash cue winds down
	if g.flashTimer > 0 {
		g.flashTimer--
	}

	// Spawn throttle: one threat per elapsed interval, up to the quota
	g.spawnTimer++
	if g.spawnTimer >= g.spawnInterval && g.spawned < g.quota {
		if g.spawnThreat() {
			g.spawned++
		}
		g.spawnTimer = 0
	}

	g.updateInterceptors(&events)
	g.updateThreats(&events)
	g.updateBlasts()

	// Level completes only once the full quota has spawned and cleared,
	// and never when every city is gone (that path is game over)
	if len(g.threats) == 0 && g.spawned >= g.quota && g.anyTargetActive() {
		g.completeLevel()
		events = append(events, core.EventLevelComplete)
	}

	if !g.anyTargetActive() {
		g.gameOver = true
		events = append(events, core.EventGameOver)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// handleFire maps a pointer button press to a launcher and fires it.
// Out-of-range coordinates are clamped into the field rather than rejected.
func (g *Game) handleFire(f core.FireEvent, events *[]core.Event) {
	var idx int
	switch f.Button {
	case core.ButtonLeft:
		idx = 0
	case core.ButtonMiddle:
		idx = 1
	case core.ButtonRight:
		idx = 2
	default:
		return
	}
	if idx >= len(g.launchers) {
		return
	}

	target := core.Vec2{X: g.fieldX(f.X), Y: g.fieldY(f.Y)}
	m := g.launchers[idx].Fire(target, g.cfg.Physics.InterceptorSpeed, g.interceptorColor)
	if m == nil {
		return
	}
	g.interceptors = append(g.interceptors, m)
	*events = append(*events, core.EventLaunch)
}

// spawnThreat spawns one threat at a random x on the top edge, aimed at a
// uniformly random active city or launcher. Returns false when nothing is
// left to target.
func (g *Game) spawnThreat() bool {
	candidates := make([]core.Vec2, 0, len(g.targets)+len(g.launchers))
	for _, t := range g.targets {
		if t.Active {
			candidates = append(candidates, t.Pos)
		}
	}
	for _, l := range g.launchers {
		if l.Active {
			candidates = append(candidates, l.Pos)
		}
	}
	if len(candidates) == 0 {
		return false
	}

	x := g.rng.Range(g.cfg.Spawning.EdgeMargin, g.cfg.Field.Width-g.cfg.Spawning.EdgeMargin)
	target := candidates[g.rng.Intn(len(candidates))]
	g.threats = append(g.threats, NewMissile(
		KindThreat,
		core.Vec2{X: x, Y: 0},
		target,
		g.cfg.Physics.ThreatSpeed,
		g.threatColor,
	))
	return true
}

// updateInterceptors advances player missiles. Arrival spawns a blast at
// the target point; leaving the field removes the missile without one.
func (g *Game) updateInterceptors(events *[]core.Event) {
	kept := make([]*Missile, 0, len(g.interceptors))
	for _, m := range g.interceptors {
		m.Advance()

		if m.Arrived() {
			g.blasts = append(g.blasts, g.newBlast(m.Target))
			*events = append(*events, core.EventDetonation)
			continue
		}
		if m.Pos.Y < 0 || m.Pos.X < 0 || m.Pos.X > g.cfg.Field.Width {
			continue
		}
		kept = append(kept, m)
	}
	g.interceptors = kept
}

// updateThreats advances enemy missiles and resolves collisions. Blast
// containment is checked before ground contact; a threat destroyed mid-air
// scores, a threat reaching the ground does not.
func (g *Game) updateThreats(events *[]core.Event) {
	kept := make([]*Missile, 0, len(g.threats))
	groundY := g.groundY()

	for _, t := range g.threats {
		t.Advance()

		destroyed := false
		for _, b := range g.blasts {
			if b.Contains(t.Pos) {
				g.score += g.cfg.Scoring.ThreatReward
				*events = append(*events, core.EventThreatKilled)
				destroyed = true
				break
			}
		}
		if destroyed {
			continue
		}

		if t.Pos.Y >= groundY {
			g.resolveGroundImpact(t, events)
			continue
		}

		kept = append(kept, t)
	}
	g.threats = kept
}

// resolveGroundImpact handles a threat reaching the ground line: the first
// active city within the hit radius is destroyed, else the first active
// launcher. At most one structure falls per impact.
func (g *Game) resolveGroundImpact(t *Missile, events *[]core.Event) {
	hr := g.cfg.Launchers.HitRadius

	for _, tgt := range g.targets {
		if tgt.Active && math.Abs(tgt.Pos.X-t.Pos.X) < hr {
			tgt.Active = false
			g.blasts = append(g.blasts, g.newBlast(tgt.Pos))
			*events = append(*events, core.EventGroundImpact)
			return
		}
	}
	for _, l := range g.launchers {
		if l.Active && math.Abs(l.Pos.X-t.Pos.X) < hr {
			l.Active = false
			g.blasts = append(g.blasts, g.newBlast(l.Pos))
			*events = append(*events, core.EventGroundImpact)
			return
		}
	}
}

// updateBlasts advances every blast, dropping expired ones.
func (g *Game) updateBlasts() {
	kept := make([]*Blast, 0, len(g.blasts))
	for _, b := range g.blasts {
		if b.Advance() {
			kept = append(kept, b)
		}
	}
	g.blasts = kept
}

func (g *Game) newBlast(center core.Vec2) *Blast {
	return NewBlast(center, g.cfg.Blast.MaxRadius, g.cfg.Blast.GrowthRate, g.cfg.Blast.DurationTicks)
}

// completeLevel awards survival bonuses, regenerates launchers, and ramps
// up the difficulty for the next level.
func (g *Game) completeLevel() {
	for _, t := range g.targets {
		if t.Active {
			g.score += g.cfg.Scoring.TargetBonus
		}
	}

	// Destroyed launchers regenerate between levels; cities do not
	for _, l := range g.launchers {
		l.Active = true
		l.Ammo = g.cfg.Launchers.StartingAmmo
		g.score += g.cfg.Scoring.LauncherBonus
	}

	g.quota = g.totalAmmo()

	g.flashTimer = g.cfg.Flash.DurationTicks
	g.flashColor = g.randomColor()

	// Cosmetic re-roll; affects no logic
	g.threatColor = g.randomColor()
	g.interceptorColor = g.randomColor()
	for _, t := range g.targets {
		if t.Active {
			t.Color = g.randomColor()
		}
	}

	g.level++
	g.spawnInterval = core.Max(g.cfg.Spawning.MinInterval, g.spawnInterval-g.cfg.Spawning.IntervalStep)
	g.spawnTimer = 0
	g.spawned = 0
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
