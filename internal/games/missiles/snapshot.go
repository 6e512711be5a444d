package missiles

import (
	"github.com/vovakirdan/tui-defense/internal/core"
)

// Positions are stored as field units scaled by 1000 so the snapshot stays
// integer-only while preserving sub-unit precision.
const snapScale = 1000

// Snapshot contains the complete game state for replay and determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick          uint64
	Score         int
	Level         int
	GameOver      int
	Paused        int
	SpawnTimer    int
	SpawnInterval int
	Quota         int
	Spawned       int
	FlashTimer    int

	FlashColor       int
	ThreatColor      int
	InterceptorColor int

	// Each launcher is 2 ints: Active, Ammo (positions are fixed by layout)
	LauncherData []int

	// Each target is 2 ints: Active, Color
	TargetData []int

	// Each missile is 9 ints: StartX, StartY, TargetX, TargetY, PosX, PosY,
	// VelX, VelY, Color (positions and velocities scaled)
	InterceptorCount int
	InterceptorData  []int
	ThreatCount      int
	ThreatData       []int

	// Each blast is 5 ints: CenterX, CenterY, Radius (scaled), Growing, Life
	BlastCount int
	BlastData  []int

	RNGState uint64
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func colorFromInt(v int) core.Color {
	return core.Color(v) //#nosec G115 -- colors fit in uint8
}

func vecFromInts(x, y int) core.Vec2 {
	return core.Vec2{X: float64(x) / snapScale, Y: float64(y) / snapScale}
}

func packMissiles(missiles []*Missile) []int {
	data := make([]int, 0, len(missiles)*9)
	for _, m := range missiles {
		data = append(data,
			int(m.Start.X*snapScale), int(m.Start.Y*snapScale),
			int(m.Target.X*snapScale), int(m.Target.Y*snapScale),
			int(m.Pos.X*snapScale), int(m.Pos.Y*snapScale),
			int(m.Vel.X*snapScale), int(m.Vel.Y*snapScale),
			int(m.Color),
		)
	}
	return data
}

func unpackMissiles(kind Kind, count int, data []int, speed float64) []*Missile {
	missiles := make([]*Missile, 0, count)
	for i := 0; i < count; i++ {
		idx := i * 9
		if idx+8 >= len(data) {
			break
		}
		m := &Missile{
			Kind:   kind,
			Speed:  speed,
			Active: true,
		}
		m.Start.X = float64(data[idx]) / snapScale
		m.Start.Y = float64(data[idx+1]) / snapScale
		m.Target.X = float64(data[idx+2]) / snapScale
		m.Target.Y = float64(data[idx+3]) / snapScale
		m.Pos.X = float64(data[idx+4]) / snapScale
		m.Pos.Y = float64(data[idx+5]) / snapScale
		m.Vel.X = float64(data[idx+6]) / snapScale
		m.Vel.Y = float64(data[idx+7]) / snapScale
		m.Color = colorFromInt(data[idx+8])
		missiles = append(missiles, m)
	}
	return missiles
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	launcherData := make([]int, 0, len(g.launchers)*2)
	for _, l := range g.launchers {
		launcherData = append(launcherData, boolToInt(l.Active), l.Ammo)
	}

	targetData := make([]int, 0, len(g.targets)*2)
	for _, t := range g.targets {
		targetData = append(targetData, boolToInt(t.Active), int(t.Color))
	}

	blastData := make([]int, 0, len(g.blasts)*5)
	for _, b := range g.blasts {
		blastData = append(blastData,
			int(b.Center.X*snapScale), int(b.Center.Y*snapScale),
			int(b.Radius*snapScale), boolToInt(b.Growing), b.Life,
		)
	}

	return Snapshot{
		Tick:          uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:         g.score,
		Level:         g.level,
		GameOver:      boolToInt(g.gameOver),
		Paused:        boolToInt(g.paused),
		SpawnTimer:    g.spawnTimer,
		SpawnInterval: g.spawnInterval,
		Quota:         g.quota,
		Spawned:       g.spawned,
		FlashTimer:    g.flashTimer,

		FlashColor:       int(g.flashColor),
		ThreatColor:      int(g.threatColor),
		InterceptorColor: int(g.interceptorColor),

		LauncherData: launcherData,
		TargetData:   targetData,

		InterceptorCount: len(g.interceptors),
		InterceptorData:  packMissiles(g.interceptors),
		ThreatCount:      len(g.threats),
		ThreatData:       packMissiles(g.threats),

		BlastCount: len(g.blasts),
		BlastData:  blastData,

		RNGState: g.rng.State(),
	}
}

// ApplySnapshot restores game state from a snapshot. The game must already
// be Reset so layout and configuration are in place.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.score = snap.Score
	g.level = snap.Level
	g.gameOver = snap.GameOver == 1
	g.paused = snap.Paused == 1
	g.spawnTimer = snap.SpawnTimer
	g.spawnInterval = snap.SpawnInterval
	g.quota = snap.Quota
	g.spawned = snap.Spawned
	g.flashTimer = snap.FlashTimer

	g.flashColor = colorFromInt(snap.FlashColor)
	g.threatColor = colorFromInt(snap.ThreatColor)
	g.interceptorColor = colorFromInt(snap.InterceptorColor)

	for i, l := range g.launchers {
		idx := i * 2
		if idx+1 < len(snap.LauncherData) {
			l.Active = snap.LauncherData[idx] == 1
			l.Ammo = snap.LauncherData[idx+1]
		}
	}

	for i, t := range g.targets {
		idx := i * 2
		if idx+1 < len(snap.TargetData) {
			t.Active = snap.TargetData[idx] == 1
			t.Color = colorFromInt(snap.TargetData[idx+1])
		}
	}

	g.interceptors = unpackMissiles(KindInterceptor, snap.InterceptorCount, snap.InterceptorData, g.cfg.Physics.InterceptorSpeed)
	g.threats = unpackMissiles(KindThreat, snap.ThreatCount, snap.ThreatData, g.cfg.Physics.ThreatSpeed)

	g.blasts = make([]*Blast, 0, snap.BlastCount)
	for i := 0; i < snap.BlastCount; i++ {
		idx := i * 5
		if idx+4 >= len(snap.BlastData) {
			break
		}
		g.blasts = append(g.blasts, &Blast{
			Center: vecFromInts(snap.BlastData[idx], snap.BlastData[idx+1]),
			Radius: float64(snap.BlastData[idx+2]) / snapScale,
			MaxRadius: g.cfg.Blast.MaxRadius,
			Growth:    g.cfg.Blast.GrowthRate,
			Growing:   snap.BlastData[idx+3] == 1,
			Life:      snap.BlastData[idx+4],
		})
	}

	g.rng.SetState(snap.RNGState)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GameOver)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Paused)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnTimer)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnInterval)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Quota)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Spawned)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FlashTimer)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FlashColor)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ThreatColor)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.InterceptorColor) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.InterceptorCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ThreatCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlastCount)       //#nosec G115 -- hash computation

	for _, v := range snap.LauncherData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.TargetData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.InterceptorData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ThreatData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BlastData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
