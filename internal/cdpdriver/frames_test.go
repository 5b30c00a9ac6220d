package cdpdriver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlattenFrameTree_DepthFirstMainFrameFirst(t *testing.T) {
	var tree frameTreeNode
	tree.Frame.ID = "main"
	tree.Frame.URL = "https://example.com"

	var child frameTreeNode
	child.Frame.ID = "child-1"
	child.Frame.ParentID = "main"
	child.Frame.URL = "https://example.com/iframe"
	tree.ChildFrames = []frameTreeNode{child}

	var frames []FrameInfo
	flattenFrameTree(tree, &frames)

	require.Len(t, frames, 2)
	require.Equal(t, "main", frames[0].FrameID)
	require.Equal(t, "", frames[0].ParentFrameID)
	require.Equal(t, "child-1", frames[1].FrameID)
	require.Equal(t, "main", frames[1].ParentFrameID)
}

func TestResolveFrameTarget_ByIndex(t *testing.T) {
	frames := []FrameInfo{{FrameID: "a"}, {FrameID: "b"}}
	id, err := resolveFrameTarget(frames, "1")
	require.NoError(t, err)
	require.Equal(t, "b", id)
}

func TestResolveFrameTarget_ByIndexOutOfRange(t *testing.T) {
	frames := []FrameInfo{{FrameID: "a"}}
	_, err := resolveFrameTarget(frames, "5")
	require.Error(t, err)
}

func TestResolveFrameTarget_ByFrameID(t *testing.T) {
	frames := []FrameInfo{{FrameID: "a"}, {FrameID: "b"}}
	id, err := resolveFrameTarget(frames, "b")
	require.NoError(t, err)
	require.Equal(t, "b", id)
}

func TestResolveFrameTarget_Unknown(t *testing.T) {
	frames := []FrameInfo{{FrameID: "a"}}
	_, err := resolveFrameTarget(frames, "nope")
	require.Error(t, err)
}
