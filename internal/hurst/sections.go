package hurst

import (
	"fmt"

	"HurstLab/internal/model"
)

// Partitioner cuts an analysis into sections for sectioned regression.
type Partitioner struct {
	cfg Config
}

// NewPartitioner creates a Partitioner for the given config.
func NewPartitioner(cfg Config) *Partitioner {
	return &Partitioner{cfg: cfg}
}

// Partition returns the sections of the series. full is the scale table of the
// whole series and is only read by the scale-window policy. The full series
// itself is never returned as a section.
func (p *Partitioner) Partition(series *model.PriceSeries, full []model.ScaleSummary) ([]model.Section, error) {
	switch p.cfg.Sections.Mode {
	case SectionsFull:
		return nil, nil
	case SectionsPeriods:
		return p.periods(series)
	case SectionsScales:
		return p.scaleWindows(series, full), nil
	}
	return nil, fmt.Errorf("unknown section mode %q", p.cfg.Sections.Mode)
}

// periods splits the prices into Count contiguous sub-periods of equal length;
// the last one absorbs the remainder. Each sub-period gets its own scale table.
// A sub-period too short for two scales is returned with Err set.
func (p *Partitioner) periods(series *model.PriceSeries) ([]model.Section, error) {
	count := p.cfg.Sections.Count
	n := series.Len()
	size := n / count

	sections := make([]model.Section, 0, count)
	for i := 0; i < count; i++ {
		from := i * size
		to := from + size
		if i == count-1 {
			to = n
		}
		sub := series.Slice(from, to)
		s := model.Section{
			Name:      periodName(i, count),
			Start:     sub.Start(),
			End:       sub.End(),
			FromIndex: from,
			ToIndex:   to,
		}
		if table, err := ScaleTable(sub.Closes, p.cfg); err != nil {
			s.Err = fmt.Errorf("period %d: %w", i+1, err)
		} else {
			s.Points = points(table)
		}
		sections = append(sections, s)
	}
	return sections, nil
}

// scaleWindows groups consecutive scale points into windows of Window points.
// A trailing window with a single point is merged into the previous one.
func (p *Partitioner) scaleWindows(series *model.PriceSeries, full []model.ScaleSummary) []model.Section {
	w := p.cfg.Sections.Window
	var bounds [][2]int
	for from := 0; from < len(full); from += w {
		to := from + w
		if to > len(full) {
			to = len(full)
		}
		if to-from < 2 && len(bounds) > 0 {
			bounds[len(bounds)-1][1] = to
			continue
		}
		bounds = append(bounds, [2]int{from, to})
	}

	sections := make([]model.Section, 0, len(bounds))
	for _, b := range bounds {
		window := full[b[0]:b[1]]
		sections = append(sections, model.Section{
			Name:      fmt.Sprintf("Scales %d-%d", window[0].Scale, window[len(window)-1].Scale),
			Start:     series.Start(),
			End:       series.End(),
			FromIndex: 0,
			ToIndex:   series.Len(),
			Points:    points(window),
		})
	}
	return sections
}

func periodName(i, count int) string {
	switch count {
	case 1:
		return "Series"
	case 2:
		return [...]string{"First Half", "Second Half"}[i]
	case 3:
		return [...]string{"First Third", "Middle Third", "Last Third"}[i]
	}
	return fmt.Sprintf("Period %d", i+1)
}

func points(table []model.ScaleSummary) []model.ScalePoint {
	out := make([]model.ScalePoint, len(table))
	for i, s := range table {
		out[i] = s.Point()
	}
	return out
}
