package navball

import "math"

// Axis is the angular coordinate a grid line family is measured along.
type Axis int

const (
	AxisLon Axis = iota
	AxisLat
)

func (a Axis) String() string {
	if a == AxisLon {
		return "lon"
	}
	return "lat"
}

// Tier is the spacing class of a grid line family.
type Tier int

const (
	TierMajor Tier = iota
	TierMinor
)

func (t Tier) String() string {
	if t == TierMajor {
		return "major"
	}
	return "minor"
}

// Family is one set of evenly spaced grid lines.
type Family struct {
	Axis Axis
	Tier Tier
	Step Step
}

func (f Family) String() string { return f.Axis.String() + "-" + f.Tier.String() }

// Families returns the four grid line families in composite order:
// lon-major, lat-major, lon-minor, lat-minor.
func (c GridConfig) Families() [4]Family {
	return [4]Family{
		{Axis: AxisLon, Tier: TierMajor, Step: c.LonMajor},
		{Axis: AxisLat, Tier: TierMajor, Step: c.LatMajor},
		{Axis: AxisLon, Tier: TierMinor, Step: c.LonMinor},
		{Axis: AxisLat, Tier: TierMinor, Step: c.LatMinor},
	}
}

// gridDistance returns the angular distance from angle to the nearest
// multiple of step.
func gridDistance(angle, step float64) float64 {
	k := math.RoundToEven(angle / step)
	return math.Abs(angle - k*step)
}

// DistanceField returns, for every element of angle, the angular distance in
// radians to the nearest line of a family with step s. It returns nil and
// false when s is absent: a disabled family has no distance field at all.
func DistanceField(ex Executor, angle *Field, s Step) (*Field, bool) {
	step, ok := s.Radians()
	if !ok {
		return nil, false
	}
	return angle.Map(ex, func(a float64) float64 {
		return gridDistance(a, step)
	}), true
}

// pixelDensity returns pixels per radian along axis.
func (c GridConfig) pixelDensity(axis Axis) float64 {
	if axis == AxisLon {
		return float64(c.Width) / twoPi
	}
	return float64(c.Height) / math.Pi
}
