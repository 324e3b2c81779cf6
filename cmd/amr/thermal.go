package main

import (
	"fmt"
	"os"

	"github.com/dij0s/amr/mesh"
	"github.com/dij0s/amr/refinement"
	"github.com/dij0s/amr/scheme"
	"github.com/dij0s/amr/telemetry"
	"github.com/dij0s/amr/thermal"
	"github.com/dij0s/amr/vtkio"
)

// defaultIterations matches the original thermal driver's N_STEPS at
// DT=0.01 for a 100s simulation, scaled down for a CLI default run.
const defaultIterations = 1000

// thermal driver parameters, matching scenario S5.
const (
	gridN        = 64
	domainLx     = 10.0
	domainLy     = 10.0
	sourceRadius = 2.0
	sourceValue  = 60.0
	maxRelDepth  = 2
	gradientTol  = 0.8
	dt           = 0.01
)

var constants = thermal.Constants{Rho: 0.06, Cp: 204.0, Lambda: 1.026, Dt: dt}

// runThermal builds a 64x64 uniform mesh, injects a disk-shaped continuous
// heat source, and alternates solve/refine/save for the given number of
// steps, printing a benchmark summary at the end.
func runThermal(iterations int, out *os.File) error {
	m, depth, err := mesh.Uniform(gridN, func() float64 { return 5.0 }, domainLx, domainLy, nil)
	if err != nil {
		return err
	}
	maxDepth := depth + maxRelDepth

	source := thermal.DiskSource(domainLx, domainLy, sourceRadius, sourceValue)
	if err := m.Inject(source); err != nil {
		return err
	}
	if err := vtkio.Save(m.Root(), domainLx, domainLy, 0); err != nil {
		return err
	}

	d1 := domainLx / gridN
	d2 := domainLy / gridN
	solver := scheme.NewCenteredLaplacian(constants.LaplacianFactor(), d1, d2)
	criterion := refinement.NewGradient(gradientTol)

	recordInterval := iterations / 20
	if recordInterval == 0 {
		recordInterval = 1
	}

	for step := 1; step <= iterations; step++ {
		if err := telemetry.Track("solve", func() error { return m.Solve(solver) }); err != nil {
			return err
		}

		if step%recordInterval == 0 {
			if err := telemetry.Track("refine", func() error {
				return m.Refine(criterion, 0, maxDepth)
			}); err != nil {
				return err
			}
			if err := telemetry.Track("save", func() error {
				return vtkio.Save(m.Root(), domainLx, domainLy, step)
			}); err != nil {
				return err
			}
		}

		if err := m.Inject(source); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "elapsed: %s\n", telemetry.Elapsed())
	for name, d := range telemetry.FuncTimes() {
		fmt.Fprintf(out, "%s: %s\n", name, d)
	}
	return nil
}
