package navball

import (
	"fmt"
	"log/slog"
	"time"
)

// FamilyFields holds every intermediate field computed for one family.
// All fields are nil when the family is disabled.
type FamilyFields struct {
	Family  Family
	Enabled bool

	Distance   *Field // radians
	DistancePx *Field // pixels
	Width      *Field // pixels
	Coverage   *Field // [0, 1]
}

// GridFields is the full output of one grid-mask run.
type GridFields struct {
	Lon, Lat *Field
	Families [4]FamilyFields

	// Mask is the composite grid intensity, H×W in [0, 1].
	Mask *Field
}

// Grid computes the latitude/longitude grid-line mask for a GridConfig.
type Grid struct {
	cfg GridConfig
	ex  Executor
}

// NewGrid returns a Grid that runs its row work on ex.
// A nil ex runs serially.
func NewGrid(cfg GridConfig, ex Executor) *Grid {
	if ex == nil {
		ex = Serial
	}
	return &Grid{cfg: cfg, ex: ex}
}

// Config returns the grid configuration.
func (g *Grid) Config() GridConfig { return g.cfg }

// Compute runs the whole pipeline: coordinates, per-family distance and
// width fields, coverage and the composite mask.
func (g *Grid) Compute() (*GridFields, error) {
	start := time.Now()
	log := Logger()
	shape := g.cfg.Shape()
	if shape.Empty() {
		return nil, fmt.Errorf("grid %v: %w", shape, ErrEmptyShape)
	}

	lon, lat, err := MapCoordinates(g.ex, g.cfg)
	if err != nil {
		return nil, err
	}
	out := &GridFields{Lon: lon, Lat: lat}

	coverages := make([]*Field, 0, len(out.Families))
	for i, fam := range g.cfg.Families() {
		ff, err := g.family(fam, lon, lat)
		if err != nil {
			return nil, err
		}
		out.Families[i] = ff
		if ff.Enabled {
			coverages = append(coverages, ff.Coverage)
		} else {
			log.Debug("grid family disabled", "family", fam.String())
		}
	}

	if len(coverages) == 0 {
		out.Mask, err = Full(shape, 0)
	} else {
		out.Mask, err = Composite(g.ex, coverages...)
	}
	if err != nil {
		return nil, err
	}

	log.Debug("grid mask computed",
		"shape", shape.String(),
		"families", len(coverages),
		slog.Duration("elapsed", time.Since(start)))
	return out, nil
}

// family computes the fields of a single grid line family.
func (g *Grid) family(fam Family, lon, lat *Field) (FamilyFields, error) {
	angle := lon
	if fam.Axis == AxisLat {
		angle = lat
	}

	dist, ok := DistanceField(g.ex, angle, fam.Step)
	if !ok {
		return FamilyFields{Family: fam}, nil
	}
	distPx := dist.Scale(g.ex, g.cfg.pixelDensity(fam.Axis))

	width, err := WidthField(g.ex, g.cfg, fam, lon, lat)
	if err != nil {
		return FamilyFields{}, err
	}
	cov, err := CoverageField(g.ex, distPx, width)
	if err != nil {
		return FamilyFields{}, fmt.Errorf("family %v: %w", fam, err)
	}

	return FamilyFields{
		Family:     fam,
		Enabled:    true,
		Distance:   dist,
		DistancePx: distPx,
		Width:      width,
		Coverage:   cov,
	}, nil
}

// Mask computes only the composite grid intensity mask.
func (g *Grid) Mask() (*Field, error) {
	fields, err := g.Compute()
	if err != nil {
		return nil, err
	}
	return fields.Mask, nil
}

// SampleAt evaluates the composite mask at an arbitrary angular position,
// using the same per-pixel functions as Compute. lon is wrapped onto
// [-π, π) first.
func (g *Grid) SampleAt(lon, lat float64) float64 {
	lon = wrapAngle(lon)
	var m float64
	for _, fam := range g.cfg.Families() {
		step, ok := fam.Step.Radians()
		if !ok {
			continue
		}
		angle := lon
		if fam.Axis == AxisLat {
			angle = lat
		}
		d := gridDistance(angle, step) * g.cfg.pixelDensity(fam.Axis)
		m = max(m, lineCoverage(d, g.cfg.halfWidth(fam, lon, lat)))
	}
	return m
}
