package schedule_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/kohonen/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearningRate_VariableStartsAtInitialAndDecreases(t *testing.T) {
	lr := schedule.DefaultLearningRate()
	assert.InDelta(t, 0.1, lr.At(0), 1e-15, "lr(0) must equal lr0")

	prev := lr.At(0)
	for it := 1; it <= 10000; it += 97 {
		cur := lr.At(it)
		require.Less(t, cur, prev, "lr must strictly decrease at t=%d", it)
		require.Greater(t, cur, 0.0)
		prev = cur
	}
	assert.Less(t, lr.At(20000), 1e-9, "lr asymptotes toward 0")
	assert.InDelta(t, 0.1*math.Exp(-1), lr.At(1000), 1e-15)
}

func TestLearningRate_FixedIsConstant(t *testing.T) {
	lr := schedule.FixedRate(0.25)
	for _, it := range []int{0, 1, 100, 1000, 1 << 20} {
		assert.Equal(t, 0.25, lr.At(it), "fixed rate at t=%d", it)
	}
}

func TestLearningRate_ConstantRateTau(t *testing.T) {
	slow := schedule.DecayingRate(0.1, schedule.ConstantRateTau)
	fast := schedule.DefaultLearningRate()
	assert.Greater(t, slow.At(1500), fast.At(1500))
	assert.InDelta(t, 0.1*math.Exp(-1), slow.At(2000), 1e-15)
}

func TestNeighborhood_LinearFloor(t *testing.T) {
	n := schedule.LinearNeighborhood()
	assert.Equal(t, 2.0, n.At(0))
	assert.InDelta(t, 2.0*math.Exp(-1), n.At(1000), 1e-12)
	assert.Equal(t, 0.5, n.At(5000), "decayed σ is clamped to the floor")
}

func TestNeighborhood_GridHasNoFloor(t *testing.T) {
	n := schedule.GridNeighborhood(36)
	assert.Equal(t, 3.0, n.At(0), "σ0 = sqrt(36)/2")
	assert.Less(t, n.At(5000), 0.5, "grid form decays below the linear floor")
	assert.Greater(t, n.At(5000), 0.0)
}

func TestNeighborhood_Fixed(t *testing.T) {
	n := schedule.FixedNeighborhood(1.0)
	assert.Equal(t, 1.0, n.At(0))
	assert.Equal(t, 1.0, n.At(99999))
}

func TestExpDecay_NonPositiveTauFallsBack(t *testing.T) {
	assert.Equal(t, schedule.ExpDecay(1, schedule.DefaultTau, 500), schedule.ExpDecay(1, 0, 500))
}

func TestConstructors_Panic(t *testing.T) {
	assert.Panics(t, func() { schedule.FixedRate(-0.1) })
	assert.Panics(t, func() { schedule.DecayingRate(0.1, 0) })
	assert.Panics(t, func() { schedule.DecayingRate(-1, 10) })
	assert.Panics(t, func() { schedule.FixedNeighborhood(0) })
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "fixed", schedule.Fixed.String())
	assert.Equal(t, "variable", schedule.Variable.String())
}

func TestNeighborhood_GridFollowsLatticeSize(t *testing.T) {
	n := schedule.GridNeighborhood(36)
	assert.Equal(t, 3.0, n.For(0, 36))
	assert.Equal(t, 5.0, n.For(0, 100), "σ0 tracks the lattice, not the build-time count")
	assert.InDelta(t, 5.0*math.Exp(-1), n.For(1000, 100), 1e-12)
	assert.Equal(t, 0.0, n.For(0, 0))

	lin := schedule.LinearNeighborhood()
	assert.Equal(t, lin.At(250), lin.For(250, 400), "unscaled schedules ignore the lattice size")
	fixed := schedule.FixedNeighborhood(0.7)
	assert.Equal(t, 0.7, fixed.For(10, 100))
}

func TestPalettePresets(t *testing.T) {
	lr := schedule.PaletteLearningRate()
	assert.InDelta(t, 0.1*math.Exp(-1), lr.At(100), 1e-15)
	n := schedule.PaletteNeighborhood()
	assert.Equal(t, 2.0, n.At(0))
	assert.InDelta(t, 2.0*math.Exp(-2), n.At(200), 1e-12)
	assert.Less(t, n.At(1000), 0.5, "palette σ has no floor")

	assert.Equal(t, schedule.DecayingRate(0.1, schedule.ConstantRateTau), schedule.SlowLearningRate())
}
