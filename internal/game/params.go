package game

import (
	"fmt"
	"strings"
)

type Params struct {
	Width, Height, MineCount int
}

var (
	Easy   = Params{Width: 9, Height: 9, MineCount: 10}
	Medium = Params{Width: 16, Height: 16, MineCount: 40}
	Hard   = Params{Width: 30, Height: 16, MineCount: 99}
)

// ParsePreset resolves a difficulty name to its fixed parameters.
func ParsePreset(name string) (Params, bool) {
	switch strings.ToLower(name) {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	}
	return Params{}, false
}

func (p Params) CellCount() int {
	return p.Width * p.Height
}

// Validate reports a ConfigurationError for non-positive dimensions or a
// mine count outside (0, width*height). A board must keep at least one
// safe cell.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return ConfigurationError{
			fmt.Sprintf("board dimensions must be positive, got %dx%d", p.Width, p.Height),
		}
	}
	if p.MineCount <= 0 || p.MineCount >= p.CellCount() {
		return ConfigurationError{
			fmt.Sprintf(
				"mine count must be within (0, %d), got %d",
				p.CellCount(), p.MineCount,
			),
		}
	}
	return nil
}

func (p Params) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

func (p Params) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*Params, error) {
	p := &Params{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}
