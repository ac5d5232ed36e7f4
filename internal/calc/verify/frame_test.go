package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

func portalFrame() ([]FrameElement, map[int]ElementForces, []FrameNode) {
	nodes := []FrameNode{
		{ID: 1, X: 0, Y: 0, Support: "fixed"},
		{ID: 2, X: 0, Y: 3},
		{ID: 3, X: 6, Y: 3},
		{ID: 4, X: 6, Y: 0, Support: "fixed"},
	}
	elements := []FrameElement{
		{ID: 1, NodeI: 1, NodeJ: 2, SectionID: "W310X39", ElementType: "column"},
		{ID: 2, NodeI: 2, NodeJ: 3, SectionID: "W360X44", ElementType: "beam"},
		{ID: 3, NodeI: 4, NodeJ: 3, SectionID: "W310X39", ElementType: "column"},
	}
	forces := map[int]ElementForces{
		1: {N: -180, VI: 12, MI: 25, VJ: 12, MJ: -40},
		2: {N: -5, VI: 90, MI: -40, VJ: -90, MJ: 40},
		3: {N: -180, VI: -12, MI: -25, VJ: -12, MJ: 40},
	}
	return elements, forces, nodes
}

func TestFrameElements(t *testing.T) {
	elements, forces, nodes := portalFrame()

	results, summary, err := FrameElements(elements, forces, nodes, "A992")
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, 3, summary.TotalElements)
	assert.Equal(t, summary.PassedElements+summary.FailedElements, summary.TotalElements)
	assert.Equal(t, summary.FailedElements == 0, summary.OK)

	for _, ev := range results {
		switch ev.Type {
		case "beam":
			require.NotNil(t, ev.Flexure)
			require.NotNil(t, ev.Shear)
			assert.Nil(t, ev.Compression)
			assert.InDelta(t, 6.0, ev.Length, 1e-9)
			// Envelope takes the larger absolute end values.
			assert.InDelta(t, 90.0, ev.Forces.V, 1e-9)
			assert.InDelta(t, 40.0, ev.Forces.M, 1e-9)
		case "column":
			require.NotNil(t, ev.Compression)
			require.NotNil(t, ev.Interaction)
			assert.InDelta(t, 3.0, ev.Length, 1e-9)
			assert.InDelta(t, 180.0, ev.Forces.N, 1e-9)
			// fixed base, free top joint: conservative K = 1.0.
			assert.InDelta(t, 1.0, ev.Compression.K, 1e-9)
		}
		assert.GreaterOrEqual(t, summary.MaxRatio, 0.0)
	}
}

func TestFrameSummaryMaxRatio(t *testing.T) {
	elements, forces, nodes := portalFrame()

	results, summary, err := FrameElements(elements, forces, nodes, "A992")
	require.NoError(t, err)

	max := 0.0
	for _, ev := range results {
		if ev.MaxRatio > max {
			max = ev.MaxRatio
		}
	}
	assert.InDelta(t, max, summary.MaxRatio, 1e-9)
	assert.InDelta(t, max*100, summary.MaxUtilization, 1e-6)
}

func TestFrameNoElements(t *testing.T) {
	_, _, err := FrameElements(nil, nil, nil, "A992")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestFrameUnknownSection(t *testing.T) {
	elements, forces, nodes := portalFrame()
	elements[0].SectionID = "W0X0"

	_, _, err := FrameElements(elements, forces, nodes, "A992")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestFrameDegenerateElement(t *testing.T) {
	nodes := []FrameNode{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 0, Y: 0}}
	elements := []FrameElement{{ID: 1, NodeI: 1, NodeJ: 2, SectionID: "W310X39", ElementType: "beam"}}

	_, _, err := FrameElements(elements, map[int]ElementForces{1: {VI: 10}}, nodes, "A992")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestFrameMissingElementForces(t *testing.T) {
	elements, forces, nodes := portalFrame()
	delete(forces, 2)

	_, _, err := FrameElements(elements, forces, nodes, "A992")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Contains(t, err.Error(), "no end forces")
}
