package domain

// Universal constants.
const (
	Phi = 1.618033988749895
	E   = 2.718281828459045
)

// Operator weights.
const (
	Linearity = 7.0
	Symmetry  = 3.0
	Triangle  = 11.0
	Circle    = 8.0
	Matrix    = 10.0
	Verdict   = 333.0
)

// Registry is the read-only view of every named constant used by the pipeline.
type Registry struct {
	Phi    float64 `json:"phi" yaml:"phi"`
	E      float64 `json:"e" yaml:"e"`
	Delta0 float64 `json:"delta0" yaml:"delta0"`

	Linearity float64 `json:"linearity" yaml:"linearity"`
	Symmetry  float64 `json:"symmetry" yaml:"symmetry"`
	Triangle  float64 `json:"triangle" yaml:"triangle"`
	Circle    float64 `json:"circle" yaml:"circle"`
	Matrix    float64 `json:"matrix" yaml:"matrix"`
	Verdict   float64 `json:"verdict" yaml:"verdict"`
}

// Delta0 is Phi^-12 rounded to the nearest double, the baseline offset
// added by several stages. math.Pow(Phi, -12) lands 3 ULP away from it.
const Delta0 = 0.0031056200151418573

// PhiPowers holds Phi^k for k in [0, Circle), each the correctly rounded
// double. Ingestion weights code points with them.
var PhiPowers = [8]float64{
	1,
	1.618033988749895,
	2.618033988749895,
	4.23606797749979,
	6.854101966249686,
	11.090169943749476,
	17.944271909999163,
	29.03444185374864,
}

var registry = Registry{
	Phi:       Phi,
	E:         E,
	Delta0:    Delta0,
	Linearity: Linearity,
	Symmetry:  Symmetry,
	Triangle:  Triangle,
	Circle:    Circle,
	Matrix:    Matrix,
	Verdict:   Verdict,
}

// Constants returns a copy of the process-wide registry.
// Callers cannot mutate the shared values through it.
func Constants() Registry {
	return registry
}
