package cli

import (
	"errors"
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/katalvlaran/dynmat/vector"
)

// ErrNotPlottable is returned when --plot is requested for a result that is
// not a vector of at least two elements.
var ErrNotPlottable = errors.New("cli: result cannot be plotted")

const (
	plotHeight = 10
	plotWidth  = 60
)

// plot renders a vector result as an ASCII line chart.
func plot(res textWriter, caption string) (string, error) {
	var data []float64
	switch v := res.(type) {
	case *vector.Vector[float64]:
		data = v.Values()
	case *vector.Vector[int64]:
		for _, x := range v.Values() {
			data = append(data, float64(x))
		}
	default:
		return "", fmt.Errorf("%T: %w", res, ErrNotPlottable)
	}
	if len(data) < 2 {
		return "", fmt.Errorf("%d element(s): %w", len(data), ErrNotPlottable)
	}

	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	), nil
}
