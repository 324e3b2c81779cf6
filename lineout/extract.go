package lineout

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Sample is one cell's center position and scalar value.
type Sample struct {
	X, Y  float64
	Value float64
}

// Extract parses the VTK file at path and returns the cells whose center y
// is nearest to the requested y, sorted by x ascending.
func Extract(path string, y float64) ([]Sample, error) {
	points, cells, values, err := parse(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	samples := make([]Sample, len(cells))
	for i, c := range cells {
		cx, cy := cellCenter(points, c)
		samples[i] = Sample{X: cx, Y: cy, Value: values[i]}
	}
	if len(samples) == 0 {
		return nil, nil
	}

	nearestY := nearestRow(samples, y)
	var row []Sample
	for _, s := range samples {
		if s.Y == nearestY {
			row = append(row, s)
		}
	}
	sort.Slice(row, func(i, j int) bool { return row[i].X < row[j].X })
	return row, nil
}

// nearestRow finds the distinct cell-center Y value closest to target.
func nearestRow(samples []Sample, target float64) float64 {
	best := samples[0].Y
	bestDist := abs(best - target)
	for _, s := range samples[1:] {
		d := abs(s.Y - target)
		if d < bestDist {
			best, bestDist = s.Y, d
		}
	}
	return best
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func cellCenter(points [][3]float64, cell [4]int) (x, y float64) {
	for _, idx := range cell {
		x += points[idx][0]
		y += points[idx][1]
	}
	return x / 4, y / 4
}

// MaxAbsDiff compares reference against comparison by matching each
// reference sample to the comparison sample with the nearest X, and
// returns the largest absolute value difference found.
func MaxAbsDiff(reference, comparison []Sample) float64 {
	max := 0.0
	for _, r := range reference {
		best := comparison[0]
		bestDist := abs(best.X - r.X)
		for _, c := range comparison[1:] {
			d := abs(c.X - r.X)
			if d < bestDist {
				best, bestDist = c, d
			}
		}
		if d := abs(best.Value - r.Value); d > max {
			max = d
		}
	}
	return max
}

// parse reads a vtkio-written ASCII legacy VTK file into its points, cells
// (as point-index quads), and the "value" scalar per cell.
func parse(path string) (points [][3]float64, cells [][4]int, values []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "POINTS"):
			n, err := fieldInt(line, 1)
			if err != nil {
				return nil, nil, nil, err
			}
			points = make([][3]float64, n)
			for i := 0; i < n; i++ {
				if !scanner.Scan() {
					return nil, nil, nil, fmt.Errorf("truncated POINTS block")
				}
				fields := strings.Fields(scanner.Text())
				for j := 0; j < 3; j++ {
					points[i][j], err = strconv.ParseFloat(fields[j], 64)
					if err != nil {
						return nil, nil, nil, err
					}
				}
			}
		case strings.HasPrefix(line, "CELLS"):
			n, err := fieldInt(line, 1)
			if err != nil {
				return nil, nil, nil, err
			}
			cells = make([][4]int, n)
			for i := 0; i < n; i++ {
				if !scanner.Scan() {
					return nil, nil, nil, fmt.Errorf("truncated CELLS block")
				}
				fields := strings.Fields(scanner.Text())
				for j := 0; j < 4; j++ {
					cells[i][j], err = strconv.Atoi(fields[j+1])
					if err != nil {
						return nil, nil, nil, err
					}
				}
			}
		case strings.HasPrefix(line, "SCALARS value"):
			scanner.Scan() // LOOKUP_TABLE default
			values = make([]float64, len(cells))
			for i := range values {
				if !scanner.Scan() {
					return nil, nil, nil, fmt.Errorf("truncated value SCALARS block")
				}
				values[i], err = strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
				if err != nil {
					return nil, nil, nil, err
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, err
	}

	return points, cells, values, nil
}

// fieldInt parses the idx-th whitespace-separated field of line as an int.
func fieldInt(line string, idx int) (int, error) {
	fields := strings.Fields(line)
	if idx >= len(fields) {
		return 0, fmt.Errorf("line %q has no field %d", line, idx)
	}
	return strconv.Atoi(fields[idx])
}
