package thermal

import (
	"math"

	"github.com/dij0s/amr/node"
)

// Constants bundles the physical parameters of the diffusion problem and
// the time step used to derive a scheme's Laplacian factor.
type Constants struct {
	// Rho is density [kg/m^3].
	Rho float64
	// Cp is specific heat capacity [J/kg/K].
	Cp float64
	// Lambda is thermal conductivity [W/m/K].
	Lambda float64
	// Dt is the time step [s]. Stability requires
	// Dt < Rho*Cp*D^2/(2*Lambda) for the finest spatial step D; this is
	// documented, not enforced (a declared limitation of the core scheme).
	Dt float64
}

// LaplacianFactor returns dt*lambda/(rho*cp), the factor a
// scheme.CenteredLaplacian needs.
func (c Constants) LaplacianFactor() float64 {
	return c.Dt * c.Lambda / (c.Rho * c.Cp)
}

// DiskSource injects value into every leaf whose absolute centered origin,
// scaled by the domain's physical extent (lx, ly), lies within radius of
// the domain's center. Intended for repeated use via Mesh.Inject, so a
// continuous source keeps re-injecting energy every step.
func DiskSource(lx, ly, radius, value float64) func(*node.Node) {
	return func(n *node.Node) {
		if !n.IsLeaf() {
			return
		}
		center := n.AbsoluteCenteredOrigin()
		dx := lx * (center.X - 0.5)
		dy := ly * (center.Y - 0.5)
		if math.Hypot(dx, dy) <= radius {
			n.SetValue(value)
		}
	}
}
