package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompute_PerfectScaffold verifies clean inputs score 100 and pass
func TestCompute_PerfectScaffold(t *testing.T) {
	out, err := Compute(Input{}, DefaultWeights(), DefaultPassCriteria())
	require.NoError(t, err)

	assert.Equal(t, 100.0, out.Categories.PatternFidelity)
	assert.Equal(t, 100.0, out.Categories.FlowReachability)
	assert.Equal(t, 100.0, out.Categories.HierarchyGrouping)
	assert.Equal(t, 100.0, out.Categories.ResponsiveBehavior)
	assert.Equal(t, 100.0, out.Overall)
	assert.True(t, out.Pass)
	assert.Empty(t, out.FailReasons)
}

// TestCompute_CategoryFloors verifies no formula goes negative
func TestCompute_CategoryFloors(t *testing.T) {
	out, err := Compute(Input{
		MustFailed:             10, // 100 - 300 would be -200
		ShouldFailed:           10,
		UnreachableCount:       5,
		FlowWarnings:           20,
		StructuralFindings:     30,
		SpacingClusterFindings: 30,
	}, DefaultWeights(), DefaultPassCriteria())
	require.NoError(t, err)

	assert.Equal(t, 0.0, out.Categories.PatternFidelity)
	assert.Equal(t, 0.0, out.Categories.FlowReachability)
	assert.Equal(t, 0.0, out.Categories.HierarchyGrouping)
}

// TestCompute_CategoryFormulas spot-checks the deduction arithmetic
func TestCompute_CategoryFormulas(t *testing.T) {
	out, err := Compute(Input{
		MustFailed:             1,
		ShouldFailed:           2,
		UnreachableCount:       1,
		FlowWarnings:           3,
		StructuralFindings:     2,
		SpacingClusterFindings: 4,
	}, DefaultWeights(), DefaultPassCriteria())
	require.NoError(t, err)

	assert.Equal(t, 50.0, out.Categories.PatternFidelity)   // 100-30-20
	assert.Equal(t, 40.0, out.Categories.FlowReachability)  // 100-30-30
	assert.Equal(t, 60.0, out.Categories.HierarchyGrouping) // 100-20-20
}

// TestCompute_ResponsiveAveraging verifies per-viewport floor-then-average
func TestCompute_ResponsiveAveraging(t *testing.T) {
	out, err := Compute(Input{
		ViewportPenalties: []ViewportPenalty{
			{Viewport: "mobile", Penalty: 40},
			{Viewport: "desktop", Penalty: 0},
		},
	}, DefaultWeights(), DefaultPassCriteria())
	require.NoError(t, err)
	assert.Equal(t, 80.0, out.Categories.ResponsiveBehavior) // (60+100)/2

	// A penalty past 100 floors that viewport at 0 before averaging.
	out, err = Compute(Input{
		ViewportPenalties: []ViewportPenalty{
			{Viewport: "mobile", Penalty: 150},
			{Viewport: "desktop", Penalty: 0},
		},
	}, DefaultWeights(), DefaultPassCriteria())
	require.NoError(t, err)
	assert.Equal(t, 50.0, out.Categories.ResponsiveBehavior)
}

// TestCompute_NoViewports verifies nothing to evaluate means no penalty
func TestCompute_NoViewports(t *testing.T) {
	out, err := Compute(Input{}, DefaultWeights(), DefaultPassCriteria())
	require.NoError(t, err)
	assert.Equal(t, 100.0, out.Categories.ResponsiveBehavior)
}

// TestCompute_MustFailureGatesRegardlessOfScore verifies one MUST failure
// fails the gate even with a high overall score
func TestCompute_MustFailureGatesRegardlessOfScore(t *testing.T) {
	out, err := Compute(Input{MustFailed: 1}, DefaultWeights(), DefaultPassCriteria())
	require.NoError(t, err)

	// 70*0.45 + 100*0.55 = 86.5, above the default minimum.
	assert.Equal(t, 86.5, out.Overall)
	assert.False(t, out.Pass)
	require.Len(t, out.FailReasons, 1)
	assert.Contains(t, out.FailReasons[0], "MUST")
}

// TestCompute_FailReasonOrder verifies the fixed reason order: MUST, then
// flow criticals, then the score threshold
func TestCompute_FailReasonOrder(t *testing.T) {
	out, err := Compute(Input{
		MustFailed:       3,
		UnreachableCount: 2,
	}, DefaultWeights(), DefaultPassCriteria())
	require.NoError(t, err)

	require.Len(t, out.FailReasons, 3)
	assert.Contains(t, out.FailReasons[0], "MUST")
	assert.Contains(t, out.FailReasons[1], "critical flow")
	assert.Contains(t, out.FailReasons[2], "below minimum")
}

// TestCompute_ScoreThreshold verifies the overall minimum gate on its own
func TestCompute_ScoreThreshold(t *testing.T) {
	// 4 SHOULD failures: fidelity 60, overall 82 with default weights.
	out, err := Compute(Input{ShouldFailed: 4}, DefaultWeights(), DefaultPassCriteria())
	require.NoError(t, err)

	assert.Equal(t, 82.0, out.Overall)
	assert.False(t, out.Pass)
	require.Len(t, out.FailReasons, 1)
	assert.True(t, strings.Contains(out.FailReasons[0], "below minimum"))
}

// TestCompute_InvalidWeights verifies the fail-fast configuration error
func TestCompute_InvalidWeights(t *testing.T) {
	bad := Weights{PatternFidelity: 0.5, FlowReachability: 0.25, HierarchyGrouping: 0.20, ResponsiveBehavior: 0.10}
	_, err := Compute(Input{}, bad, DefaultPassCriteria())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must sum to 1.0")
}

// TestDefaultWeights_Valid pins the stock weighting
func TestDefaultWeights_Valid(t *testing.T) {
	w := DefaultWeights()
	require.NoError(t, w.Validate())
	assert.Equal(t, 0.45, w.PatternFidelity)
	assert.Equal(t, 0.25, w.FlowReachability)
	assert.Equal(t, 0.20, w.HierarchyGrouping)
	assert.Equal(t, 0.10, w.ResponsiveBehavior)
}

// TestDefaultPassCriteria pins the stock gate
func TestDefaultPassCriteria(t *testing.T) {
	c := DefaultPassCriteria()
	assert.True(t, c.NoMustFailures)
	assert.True(t, c.NoCriticalFlowErrors)
	assert.Equal(t, 85.0, c.MinOverallScore)
}
