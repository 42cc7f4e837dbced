package particle

import (
	"image/color"
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/MarcBasas/constellations/internal/config"
	"github.com/MarcBasas/constellations/internal/render"
)

// minSpeed is the smallest velocity magnitude RescaleSpeed will divide by.
const minSpeed = 1e-9

// Rand is the random source used for spawning. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Particle is one moving, fading point.
type Particle struct {
	ID       uint64
	Pos      r2.Vec
	Vel      r2.Vec
	Radius   float64
	Born     time.Time
	Lifetime time.Duration
	FadeIn   time.Duration
	FadeOut  time.Duration
}

// Spawn places a particle uniformly inside width x height with a random
// heading of magnitude speed and a lifetime drawn from
// [config.MinLifetime, config.MaxLifetime].
func Spawn(id uint64, rng Rand, now time.Time, speed float64, width, height int) Particle {
	pos := r2.Vec{X: rng.Float64() * float64(width), Y: rng.Float64() * float64(height)}
	angle := rng.Float64() * 2 * math.Pi
	lifetimeRange := float64(config.MaxLifetime - config.MinLifetime)
	return Particle{
		ID:       id,
		Pos:      pos,
		Vel:      r2.Scale(speed, r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}),
		Radius:   config.ParticleRadius,
		Born:     now,
		Lifetime: config.MinLifetime + time.Duration(rng.Float64()*lifetimeRange),
		FadeIn:   config.FadeIn,
		FadeOut:  config.FadeOut,
	}
}

// Speed returns the velocity magnitude.
func (p *Particle) Speed() float64 {
	return r2.Norm(p.Vel)
}

// RescaleSpeed keeps the heading and sets the velocity magnitude to speed.
// A particle at rest has no heading and is left untouched.
func (p *Particle) RescaleSpeed(speed float64) {
	current := r2.Norm(p.Vel)
	if current < minSpeed {
		return
	}
	p.Vel = r2.Scale(speed/current, p.Vel)
}

// Advance moves the particle by one tick of velocity.
func (p *Particle) Advance() {
	p.Pos = r2.Add(p.Pos, p.Vel)
}

// Age is the time elapsed since spawn.
func (p *Particle) Age(now time.Time) time.Duration {
	return now.Sub(p.Born)
}

// Expired reports whether the particle has outlived its lifetime.
func (p *Particle) Expired(now time.Time) bool {
	return p.Age(now) > p.Lifetime
}

// OutOfBounds reports whether the particle has left the viewport. The
// radius margin applies left, right and top; the bottom edge has none.
func (p *Particle) OutOfBounds(width, height int) bool {
	r := p.Radius
	return p.Pos.X < -r || p.Pos.X > float64(width)+r ||
		p.Pos.Y < -r || p.Pos.Y > float64(height)
}

// Opacity ramps 0->255 over FadeIn, holds at 255, then ramps to 0 over the
// last FadeOut of the lifetime.
func (p *Particle) Opacity(now time.Time) uint8 {
	age := p.Age(now).Seconds()
	if fadeIn := p.FadeIn.Seconds(); age < fadeIn {
		return clampAlpha(age / fadeIn * 255)
	}
	remaining := p.Lifetime.Seconds() - age
	if fadeOut := p.FadeOut.Seconds(); remaining < fadeOut {
		return clampAlpha(remaining / fadeOut * 255)
	}
	return 255
}

// Draw renders the particle as a filled circle at its current opacity.
func (p *Particle) Draw(s render.Surface, now time.Time) {
	clr := color.NRGBA{
		R: config.ParticleColor.R,
		G: config.ParticleColor.G,
		B: config.ParticleColor.B,
		A: p.Opacity(now),
	}
	s.FillCircle(math.Round(p.Pos.X), math.Round(p.Pos.Y), p.Radius, clr)
}

func clampAlpha(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
