package hurst

import "fmt"

// GenerateScales returns the chunk sizes n/2^e for e from MaxExponent down to
// MinExponent, dropping sizes below MinScale and duplicates after integer
// division. The result is strictly increasing.
func GenerateScales(n int, cfg Config) ([]int, error) {
	scales := make([]int, 0, cfg.MaxExponent-cfg.MinExponent+1)
	for e := cfg.MaxExponent; e >= cfg.MinExponent; e-- {
		s := n >> uint(e)
		if s < cfg.MinScale {
			continue
		}
		if len(scales) > 0 && scales[len(scales)-1] == s {
			continue
		}
		scales = append(scales, s)
	}
	if len(scales) < 2 {
		return nil, fmt.Errorf("%w: %d observations give %d scale(s), need at least %d observations",
			ErrInsufficientData, n, len(scales), MinSeriesLength(cfg))
	}
	return scales, nil
}

// MinSeriesLength is the shortest series for which GenerateScales yields two scales.
func MinSeriesLength(cfg Config) int {
	return cfg.MinScale << uint(cfg.MinExponent+1)
}
