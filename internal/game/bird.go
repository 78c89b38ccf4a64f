// Package game implements the flappy game core: avatar physics, obstacle
// field with mask-level collision, the scrolling ground strip, and the
// Start/Playing/GameOver phase machine. The package is pure simulation --
// it knows nothing about terminals, rendering, or audio.
package game

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// wingSpread is the wing rotation in degrees between adjacent animation
// frames of the avatar sprite.
const wingSpread = 25.0

// Bird is the player avatar: a fixed horizontal position with mutable
// vertical motion, tilt, and wing animation. All state advances in
// well-defined per-tick methods; nothing here is random.
type Bird struct {
	x, y     float64
	velocity float64
	tilt     float64

	animIndex int
	frameHold int
	frames    []*Mask // one base silhouette per wing frame
	current   *Mask   // current frame rotated by the live tilt

	spriteW, spriteH int
	phys             config.Physics
}

// NewBird creates an avatar centered at (x, y) with freshly generated
// wing-frame silhouettes.
func NewBird(x, y float64, phys config.Physics, spr config.Bird) *Bird {
	frames := make([]*Mask, spr.FrameCount)
	mid := float64(spr.FrameCount-1) / 2
	for i := range frames {
		frames[i] = birdFrameMask(spr.Width, spr.Height, wingSpread*(float64(i)-mid))
	}

	return &Bird{
		x:         x,
		y:         y,
		frameHold: spr.FrameHold,
		frames:    frames,
		current:   frames[0],
		spriteW:   spr.Width,
		spriteH:   spr.Height,
		phys:      phys,
	}
}

// Flap applies the upward impulse: velocity and tilt are re-set, never
// accumulated, so repeated flaps within one tick are idempotent.
func (b *Bird) Flap() {
	b.velocity = b.phys.FlapImpulse
	b.tilt = b.phys.MaxUpTilt
}

// AdvancePhysics applies one tick of gravity, clamped to the terminal
// descent speed, and decays the tilt toward the maximum dive angle while
// falling. If the avatar would leave the top of the screen it is pinned at
// y=0 with zero velocity (no bounce). Ground contact is the state
// machine's concern, not this method's.
func (b *Bird) AdvancePhysics() {
	b.velocity = math.Min(b.velocity+b.phys.Gravity, b.phys.MaxDescentSpeed)
	b.y += b.velocity

	if b.velocity < 0 {
		b.tilt = b.phys.MaxUpTilt
	} else {
		b.tilt = math.Max(b.tilt-b.phys.TiltDecay, b.phys.MaxDownTilt)
	}

	if b.y < 0 {
		b.y = 0
		b.velocity = 0
	}
}

// AdvanceAnimation steps the wing animation and refreshes the rotated
// collision silhouette. Runs every tick in every phase so the avatar idles
// with flapping wings on the start screen.
func (b *Bird) AdvanceAnimation() {
	cycle := b.frameHold * len(b.frames)
	b.animIndex = (b.animIndex + 1) % cycle
	b.current = b.frames[b.animIndex/b.frameHold].Rotate(b.tilt)
}

// X returns the fixed horizontal center position.
func (b *Bird) X() float64 { return b.x }

// Y returns the vertical center position.
func (b *Bird) Y() float64 { return b.y }

// Velocity returns the current vertical velocity (negative = up).
func (b *Bird) Velocity() float64 { return b.velocity }

// Tilt returns the current tilt angle in degrees (positive = nose up).
func (b *Bird) Tilt() float64 { return b.tilt }

// Frame returns the index of the wing frame currently displayed.
func (b *Bird) Frame() int { return b.animIndex / b.frameHold }

// Bottom returns the y coordinate of the sprite's lower edge, used for the
// ground-contact check.
func (b *Bird) Bottom() float64 {
	return b.y + float64(b.spriteH)/2
}

// Rect returns the bounding box of the current rotated silhouette,
// centered on the avatar position.
func (b *Bird) Rect() core.Rect {
	return core.RectFromCenter(b.x, b.y, b.current.Width(), b.current.Height())
}

// Mask returns the current rotated collision silhouette.
func (b *Bird) Mask() *Mask { return b.current }
