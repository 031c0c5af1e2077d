package schedule

import "math"

// Mode selects between a decaying and a constant schedule.
type Mode int

const (
	// Variable decays exponentially with the iteration count.
	Variable Mode = iota
	// Fixed returns the configured Value for every iteration.
	Fixed
)

// String renders the mode name.
func (m Mode) String() string {
	if m == Fixed {
		return "fixed"
	}

	return "variable"
}

// Named defaults.
const (
	DefaultInitialRate = 0.1
	DefaultTau         = 1000.0
	// ConstantRateTau is the slower learning-rate decay used by the 2D
	// constant-rate context and the 1D feature-selection set.
	ConstantRateTau = 2000.0
	// PaletteTau is the fast decay of both schedules in colour quantization.
	PaletteTau = 100.0

	DefaultInitialSigma = 2.0
	DefaultSigmaFloor   = 0.5
)

// ExpDecay returns initial·exp(−iteration/tau). A non-positive tau falls
// back to DefaultTau.
// Complexity: O(1).
func ExpDecay(initial, tau float64, iteration int) float64 {
	if tau <= 0 {
		tau = DefaultTau
	}

	return initial * math.Exp(-float64(iteration)/tau)
}

// LearningRate is the learning-rate schedule.
type LearningRate struct {
	Mode    Mode
	Value   float64 // Fixed mode scalar
	Initial float64 // lr0 for Variable mode
	Tau     float64 // decay constant for Variable mode
}

// DefaultLearningRate is Variable with lr0=0.1 and τ=1000. Value is preset
// to lr0 so switching to Fixed keeps a sane scalar.
func DefaultLearningRate() LearningRate {
	return LearningRate{Mode: Variable, Value: DefaultInitialRate, Initial: DefaultInitialRate, Tau: DefaultTau}
}

// SlowLearningRate is Variable with lr0=0.1 and τ=ConstantRateTau.
func SlowLearningRate() LearningRate {
	return DecayingRate(DefaultInitialRate, ConstantRateTau)
}

// PaletteLearningRate is Variable with lr0=0.1 and τ=PaletteTau.
func PaletteLearningRate() LearningRate {
	return DecayingRate(DefaultInitialRate, PaletteTau)
}

// FixedRate returns a constant schedule. Panics if v < 0.
func FixedRate(v float64) LearningRate {
	if v < 0 {
		panic("schedule: FixedRate(v<0)")
	}

	return LearningRate{Mode: Fixed, Value: v, Initial: DefaultInitialRate, Tau: DefaultTau}
}

// DecayingRate returns a Variable schedule. Panics if lr0 < 0 or tau <= 0.
func DecayingRate(lr0, tau float64) LearningRate {
	if lr0 < 0 {
		panic("schedule: DecayingRate(lr0<0)")
	}
	if tau <= 0 {
		panic("schedule: DecayingRate(tau<=0)")
	}

	return LearningRate{Mode: Variable, Value: lr0, Initial: lr0, Tau: tau}
}

// At returns the effective learning rate for iteration.
func (l LearningRate) At(iteration int) float64 {
	if l.Mode == Fixed {
		return l.Value
	}

	return ExpDecay(l.Initial, l.Tau, iteration)
}

// Neighborhood is the neighborhood-radius (σ) schedule.
type Neighborhood struct {
	Mode    Mode
	Value   float64 // Fixed mode σ
	Initial float64 // σ0 for Variable mode
	Tau     float64
	// Floor clamps the decayed σ from below; 0 disables the clamp.
	Floor float64
	// LatticeScaled makes σ0 = sqrt(|W|)/2 for the lattice being trained;
	// Initial then only serves At, which has no lattice to look at.
	LatticeScaled bool
}

// LinearNeighborhood is the 1D/line-lattice schedule: σ0=2, τ=1000, floor 0.5.
func LinearNeighborhood() Neighborhood {
	return Neighborhood{
		Mode:    Variable,
		Value:   DefaultInitialSigma,
		Initial: DefaultInitialSigma,
		Tau:     DefaultTau,
		Floor:   DefaultSigmaFloor,
	}
}

// GridNeighborhood is the grid-lattice schedule: σ0 = sqrt(|W|)/2, τ=1000
// and no floor. weightCount only seeds Initial; For rescales σ0 to the
// lattice it is given.
func GridNeighborhood(weightCount int) Neighborhood {
	s0 := gridSigma0(weightCount)

	return Neighborhood{Mode: Variable, Value: s0, Initial: s0, Tau: DefaultTau, LatticeScaled: true}
}

// PaletteNeighborhood is the colour-quantization schedule: σ0=2,
// τ=PaletteTau, no floor.
func PaletteNeighborhood() Neighborhood {
	return Neighborhood{Mode: Variable, Value: DefaultInitialSigma, Initial: DefaultInitialSigma, Tau: PaletteTau}
}

func gridSigma0(weightCount int) float64 {
	if weightCount < 0 {
		weightCount = 0
	}

	return math.Sqrt(float64(weightCount)) / 2
}

// FixedNeighborhood returns a constant σ. Panics if sigma <= 0.
func FixedNeighborhood(sigma float64) Neighborhood {
	if sigma <= 0 {
		panic("schedule: FixedNeighborhood(sigma<=0)")
	}

	return Neighborhood{Mode: Fixed, Value: sigma, Initial: sigma, Tau: DefaultTau}
}

// At returns the effective σ for iteration.
func (n Neighborhood) At(iteration int) float64 {
	if n.Mode == Fixed {
		return n.Value
	}

	return math.Max(n.Floor, ExpDecay(n.Initial, n.Tau, iteration))
}

// For returns the effective σ for iteration on a lattice of weightCount
// units. It differs from At only for LatticeScaled schedules.
func (n Neighborhood) For(iteration, weightCount int) float64 {
	if n.Mode == Variable && n.LatticeScaled {
		n.Initial = gridSigma0(weightCount)
	}

	return n.At(iteration)
}
