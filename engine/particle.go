package engine

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/neon-snake/constants"
)

// Particle is a short-lived point effect; Life doubles as render alpha
type Particle struct {
	Pos   Vec2
	Vel   Vec2
	Life  int
	Color colorful.Color
}

// Alive reports whether the particle still has lifetime left
func (p Particle) Alive() bool {
	return p.Life > 0
}

// ParticleSystem owns the active particle set.
// Order of the set is spawn order, so overflow trimming drops the oldest first.
type ParticleSystem struct {
	particles []Particle
	rng       *rand.Rand
	limit     int
}

// NewParticleSystem creates an empty set bounded to limit particles
func NewParticleSystem(rng *rand.Rand, limit int) *ParticleSystem {
	if limit <= 0 {
		limit = constants.MaxParticles
	}
	return &ParticleSystem{
		particles: make([]Particle, 0, constants.BurstCount*4),
		rng:       rng,
		limit:     limit,
	}
}

// SpawnBurst adds count particles at origin with random velocities in
// [-ParticleMaxSpeed, ParticleMaxSpeed] per axis
func (ps *ParticleSystem) SpawnBurst(origin Vec2, color colorful.Color, count int) {
	for i := 0; i < count; i++ {
		ps.particles = append(ps.particles, Particle{
			Pos:   origin,
			Vel:   Vec2{X: ps.spread(), Y: ps.spread()},
			Life:  constants.ParticleLife,
			Color: color,
		})
	}
	if excess := len(ps.particles) - ps.limit; excess > 0 {
		n := copy(ps.particles, ps.particles[excess:])
		ps.particles = ps.particles[:n]
	}
}

func (ps *ParticleSystem) spread() float64 {
	return (ps.rng.Float64()*2 - 1) * constants.ParticleMaxSpeed
}

// Update advances every particle one frame and drops the expired ones
func (ps *ParticleSystem) Update() {
	live := ps.particles[:0]
	for _, p := range ps.particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life -= constants.ParticleDecay
		if p.Alive() {
			live = append(live, p)
		}
	}
	// Zero the tail so dropped colors are not retained
	for i := len(live); i < len(ps.particles); i++ {
		ps.particles[i] = Particle{}
	}
	ps.particles = live
}

func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Snapshot returns a copy of the active set
func (ps *ParticleSystem) Snapshot() []Particle {
	out := make([]Particle, len(ps.particles))
	copy(out, ps.particles)
	return out
}
