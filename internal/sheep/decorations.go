package sheep

import "github.com/vovakirdan/sheepjump/internal/core"

// Cloud is a background decoration. It never collides.
type Cloud struct {
	X, Y float64
	W, H float64

	speedFactor float64
}

func (c *Cloud) Advance(speed float64) {
	c.X -= speed * c.speedFactor
}

func (c *Cloud) OffField() bool {
	return c.X+c.W < 0
}

// Bounds returns the visual box.
func (c *Cloud) Bounds() core.Rect {
	return core.NewRect(c.X, c.Y, c.W, c.H)
}
