// Package swath generates simulated multibeam swath bathymetry: a
// regular grid of depth soundings as a sonar would collect them along
// a vessel track.
package swath

import (
	"errors"
	"math"

	"github.com/seafloorlab/mbmesh/pkg/geom"
)

// Spacing is the distance in meters between adjacent soundings, both
// across track (beam to beam) and along track (ping to ping).
const Spacing = 10.0

// ErrInvalidDims is returned when a grid dimension is not positive.
var ErrInvalidDims = errors.New("swath: width and length must be positive")

// Grid is an ordered width×length set of soundings in row-major order:
// the sounding for ping i, beam j is Points[i*Width+j].
type Grid struct {
	Points []geom.Point
	Width  int // beams across track
	Length int // pings along track
}

// At returns the sounding for ping i, beam j. Returns the zero Point
// for out-of-range coordinates.
func (g *Grid) At(i, j int) geom.Point {
	if i < 0 || j < 0 || i >= g.Length || j >= g.Width {
		return geom.Point{}
	}
	return g.Points[i*g.Width+j]
}

// Generate produces a deterministic width×length grid of soundings.
// The synthetic seafloor is a flat base depth with a sinusoidal ridge
// system and a Gaussian seamount centered on the grid. The same
// dimensions always produce the same grid.
func Generate(width, length int) (*Grid, error) {
	if width < 1 || length < 1 {
		return nil, ErrInvalidDims
	}

	// Seamount center uses truncating integer division. Promoting
	// these to floating point would shift the seamount on odd
	// dimensions.
	cj := width / 2
	ci := length / 2

	points := make([]geom.Point, 0, width*length)
	for i := 0; i < length; i++ {
		for j := 0; j < width; j++ {
			const baseDepth = -100.0
			ridge := 20.0 * math.Sin(float64(j)*0.3) * math.Cos(float64(i)*0.2)

			dj := j - cj
			di := i - ci
			seamount := 30.0 * math.Exp(-float64(dj*dj+di*di)/100.0)

			points = append(points, geom.Point{
				X: float64(j) * Spacing,
				Y: float64(i) * Spacing,
				Z: baseDepth + ridge + seamount,
			})
		}
	}

	return &Grid{Points: points, Width: width, Length: length}, nil
}
