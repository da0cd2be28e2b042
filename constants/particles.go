package constants

// Particle Burst
const (
	// BurstCount is the number of particles spawned when food is eaten
	BurstCount = 12

	// ParticleLife is the lifetime a particle starts with (doubles as alpha)
	ParticleLife = 255

	// ParticleDecay is subtracted from lifetime every frame
	ParticleDecay = 5

	// ParticleMaxSpeed bounds each velocity component (pixels per frame)
	ParticleMaxSpeed = 2.0

	// MaxParticles caps the active set; oldest particles are dropped first
	MaxParticles = 512
)

// Screen Shake
const (
	// ShakeFrames is how many frames the board shakes after eating
	ShakeFrames = 10

	// ShakeAmplitude is the max render offset per axis in pixels
	ShakeAmplitude = 4
)
