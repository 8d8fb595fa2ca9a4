// Package face computes the geometry of an analog clock face.
//
// Coordinates live in a square of side 2·radius with the origin at the top
// left and the center at (radius, radius). Angles run clockwise from 12.
package face

import (
	"math"
	"strconv"

	"github.com/moggisen/World-Clock/internal/wallclock"
)

// DefaultRadius is used when a non-positive radius is requested.
const DefaultRadius = 100.0

const (
	hourHandRatio   = 0.5
	minuteHandRatio = 0.7
	secondHandRatio = 0.8
	labelRatio      = 0.8

	majorInset  = 8.0
	minorInset  = 4.0
	majorStroke = 2.0
	minorStroke = 1.0

	tickCount  = 60
	labelCount = 12
)

// Point is a 2D coordinate on the face.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Tick is one of the 60 minute marks around the rim.
type Tick struct {
	From   Point   `json:"from"`
	To     Point   `json:"to"`
	Stroke float64 `json:"stroke"`
	Major  bool    `json:"major"`
}

// Label is a numeral placed on the face.
type Label struct {
	At   Point  `json:"at"`
	Text string `json:"text"`
}

// Geometry is everything needed to draw a clock face for one instant.
type Geometry struct {
	Radius float64 `json:"radius"`
	Center Point   `json:"center"`
	Hour   Point   `json:"hour"`
	Minute Point   `json:"minute"`
	Second Point   `json:"second"`
	Ticks  []Tick  `json:"ticks"`
	Labels []Label `json:"labels"`
}

// Size returns the side length of the drawable square.
func (g Geometry) Size() float64 {
	return 2 * g.Radius
}

// Compute returns the face geometry for t at the given radius.
func Compute(t wallclock.Time, radius float64) Geometry {
	if !(radius > 0) || math.IsInf(radius, 0) {
		radius = DefaultRadius
	}
	c := Point{X: radius, Y: radius}

	g := Geometry{
		Radius: radius,
		Center: c,
		Hour:   polar(c, radius*hourHandRatio, float64(t.Hour%12)*30),
		Minute: polar(c, radius*minuteHandRatio, float64(t.Minute)*6),
		Second: polar(c, radius*secondHandRatio, float64(t.Second)*6),
		Ticks:  make([]Tick, tickCount),
		Labels: make([]Label, labelCount),
	}

	for m := 0; m < tickCount; m++ {
		deg := float64(m) * 6
		inset, stroke := minorInset, minorStroke
		major := m%5 == 0
		if major {
			inset, stroke = majorInset, majorStroke
		}
		g.Ticks[m] = Tick{
			From:   polar(c, radius-inset, deg),
			To:     polar(c, radius, deg),
			Stroke: stroke,
			Major:  major,
		}
	}

	for n := 1; n <= labelCount; n++ {
		g.Labels[n-1] = Label{
			At:   polar(c, radius*labelRatio, float64(n%12)*30),
			Text: strconv.Itoa(n),
		}
	}

	return g
}

func polar(c Point, length, degrees float64) Point {
	rad := degrees * math.Pi / 180
	return Point{
		X: c.X + length*math.Sin(rad),
		Y: c.Y - length*math.Cos(rad),
	}
}
