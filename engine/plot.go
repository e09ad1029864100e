package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

const plotWidth = 40

// Plot collects p and renders a terminal-friendly ASCII histogram of
// one numeric column, the lightweight standard-in for the reference
// implementation's plotting entry point (spec §6 "Plot") — a
// dependency-heavy charting library has no role in an embedded engine
// with no display surface, so this renders text instead of pixels.
func (p *Plan) Plot(ctx context.Context, column string, buckets int) (string, error) {
	table, err := p.Collect(ctx, false)
	if err != nil {
		return "", err
	}
	col, err := table.Column(column)
	if err != nil {
		return "", ErrPlotColumn.New(column, err.Error())
	}

	var values []float64
	min, max := 0.0, 0.0
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			continue
		}
		v, ok := numericValue(col.At(i))
		if !ok {
			return "", ErrPlotColumn.New(column, "not a numeric column")
		}
		if len(values) == 0 || v < min {
			min = v
		}
		if len(values) == 0 || v > max {
			max = v
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return "", ErrPlotColumn.New(column, "no non-null values")
	}
	if buckets <= 0 {
		buckets = 10
	}

	counts := make([]int, buckets)
	span := max - min
	for _, v := range values {
		idx := buckets - 1
		if span > 0 {
			idx = int((v - min) / span * float64(buckets))
			if idx >= buckets {
				idx = buckets - 1
			}
		}
		counts[idx]++
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	var b strings.Builder
	bucketWidth := span / float64(buckets)
	for i, c := range counts {
		lo := min + float64(i)*bucketWidth
		hi := lo + bucketWidth
		barLen := 0
		if maxCount > 0 {
			barLen = c * plotWidth / maxCount
		}
		fmt.Fprintf(&b, "[%s, %s) %s %s\n",
			humanize.CommafWithDigits(lo, 2),
			humanize.CommafWithDigits(hi, 2),
			strings.Repeat("#", barLen),
			humanize.Comma(int64(c)))
	}
	return b.String(), nil
}

func numericValue(v any) (float64, bool) {
	switch t := v.(type) {
	case int64:
		return float64(t), true
	case float64:
		return t, true
	default:
		return 0, false
	}
}
