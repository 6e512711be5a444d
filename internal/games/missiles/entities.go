package missiles

import (
	"github.com/vovakirdan/tui-defense/internal/core"
)

// Side identifies a launcher position and the fire button bound to it.
type Side int

const (
	SideLeft Side = iota
	SideCenter
	SideRight
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideCenter:
		return "center"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Kind tags a missile as player-fired or enemy-fired.
// One projectile record covers both; behavior differences (speed, color,
// arrival handling) dispatch on this tag.
type Kind int

const (
	KindInterceptor Kind = iota // Player projectile, detonates at its target point
	KindThreat                  // Enemy projectile, falls toward a ground structure
)

// Missile is a projectile in flight. The velocity direction is fixed at
// spawn (no homing); magnitude stays constant for the missile's lifetime.
type Missile struct {
	Kind   Kind
	Start  core.Vec2 // Launch point, kept for trail rendering
	Target core.Vec2
	Pos    core.Vec2
	Vel    core.Vec2
	Speed  float64
	Color  core.Color
	Active bool
}

// NewMissile creates a missile aimed from start to target at the given speed.
func NewMissile(kind Kind, start, target core.Vec2, speed float64, color core.Color) *Missile {
	return &Missile{
		Kind:   kind,
		Start:  start,
		Target: target,
		Pos:    start,
		Vel:    core.VelocityToward(start, target, speed),
		Speed:  speed,
		Color:  color,
		Active: true,
	}
}

// Advance moves the missile one tick along its fixed velocity.
func (m *Missile) Advance() {
	m.Pos = m.Pos.Add(m.Vel)
}

// Arrived reports whether the missile is within one tick's travel of its
// target point. The tolerance prevents fast missiles from stepping over
// their arrival tick.
func (m *Missile) Arrived() bool {
	return core.Reached(m.Pos, m.Target, m.Speed)
}

// Launcher is a firing base sitting on the ground line.
type Launcher struct {
	Pos    core.Vec2
	Side   Side
	Active bool
	Ammo   int
}

// Fire spawns an interceptor aimed at target, consuming one round.
// Returns nil without side effects if the launcher is destroyed or out of
// ammo; the ammo decrement and the spawn always happen together.
func (l *Launcher) Fire(target core.Vec2, speed float64, color core.Color) *Missile {
	if !l.Active || l.Ammo <= 0 {
		return nil
	}
	l.Ammo--
	return NewMissile(KindInterceptor, l.Pos, target, speed, color)
}

// Target is a ground city to protect. Destroyed permanently once struck;
// it does not regenerate between levels.
type Target struct {
	Pos    core.Vec2
	Active bool
	Color  core.Color
}

// Blast is an expanding area-of-effect circle that destroys threats on
// contact. Growth and lifetime run on independent clocks: the radius grows
// until it hits the maximum and freezes there, while the lifetime counter
// ticks down regardless.
type Blast struct {
	Center    core.Vec2
	Radius    float64
	MaxRadius float64
	Growth    float64
	Growing   bool
	Life      int
}

// NewBlast creates a blast centered at the given point.
func NewBlast(center core.Vec2, maxRadius, growth float64, life int) *Blast {
	return &Blast{
		Center:    center,
		MaxRadius: maxRadius,
		Growth:    growth,
		Growing:   true,
		Life:      life,
	}
}

// Advance progresses growth and lifetime by one tick.
// Returns false once the blast has expired.
func (b *Blast) Advance() bool {
	if b.Growing {
		b.Radius += b.Growth
		if b.Radius >= b.MaxRadius {
			b.Radius = b.MaxRadius
			b.Growing = false
		}
	}
	b.Life--
	return b.Life > 0
}

// Contains reports whether p lies inside the blast circle.
func (b *Blast) Contains(p core.Vec2) bool {
	return core.Dist(b.Center, p) <= b.Radius
}
