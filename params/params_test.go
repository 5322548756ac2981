package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisteredParameterSetsValidate(t *testing.T) {
	for _, name := range List() {
		p, err := Lookup(name)
		require.NoError(t, err)
		require.NoError(t, p.Validate(), "parameter set %s failed validation", name)
	}
}

func TestLookupUnknownFails(t *testing.T) {
	_, err := Lookup("FiLIP-does-not-exist")
	require.Error(t, err)
}

func TestDSMDegreeScheduleSumsToN(t *testing.T) {
	for _, ctor := range []func() *Parameters{FiLIP1216, FiLIP1280} {
		p := ctor()
		var sum int
		for _, d := range p.DSMDegrees {
			sum += d
		}
		require.Equal(t, p.N, sum, "%s: degree schedule does not cover all n input positions", p.Name)
	}
}

func TestXorThrPartsSumToN(t *testing.T) {
	p := FiLIP144()
	require.Equal(t, p.N, p.XorK+p.XorD)
}

// degreeCounts reduces a per-monomial degree list back to a degree ->
// count map, the inverse of expandDegreeCounts, so it can be compared
// against the literal weight distributions spec.md §3 names.
func degreeCounts(degrees []int) map[int]int {
	counts := map[int]int{}
	for _, d := range degrees {
		counts[d]++
	}
	return counts
}

func TestFiLIP1216MatchesSpecWeightDistribution(t *testing.T) {
	p := FiLIP1216()
	require.Equal(t, map[int]int{1: 128, 2: 64, 4: 80, 8: 80}, degreeCounts(p.DSMDegrees))
}

func TestFiLIP1280MatchesSpecWeightDistribution(t *testing.T) {
	p := FiLIP1280()
	require.Equal(t, map[int]int{1: 128, 2: 64, 16: 64}, degreeCounts(p.DSMDegrees))
}

func TestFiLIP144MatchesSpecThresholdGate(t *testing.T) {
	p := FiLIP144()
	require.Equal(t, 81, p.XorK)
	require.Equal(t, 63, p.XorD)
	require.Equal(t, 32, p.XorTh)
}

func TestValidateRejectsOversizedGadget(t *testing.T) {
	p := FiLIP1216()
	p.FHEParams.BaseLog = 32
	p.FHEParams.Levels = 2
	require.Error(t, p.Validate())
}
