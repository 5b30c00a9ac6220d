package cdpdriver

import (
	"strconv"
	"time"
)

type frameTreeNode struct {
	Frame struct {
		ID       string `json:"id"`
		ParentID string `json:"parentId"`
		URL      string `json:"url"`
	} `json:"frame"`
	ChildFrames []frameTreeNode `json:"childFrames"`
}

type getFrameTreeReply struct {
	FrameTree frameTreeNode `json:"frameTree"`
}

func flattenFrameTree(node frameTreeNode, out *[]FrameInfo) {
	*out = append(*out, FrameInfo{
		FrameID:       node.Frame.ID,
		ParentFrameID: node.Frame.ParentID,
		URL:           sanitizeUTF8(node.Frame.URL),
	})
	for _, child := range node.ChildFrames {
		flattenFrameTree(child, out)
	}
}

// ListFrames implements SPEC_FULL.md §12 list_frames: a depth-first traversal
// of Page.getFrameTree, main frame first.
func (d *Driver) ListFrames(timeout time.Duration) (ListFramesResult, error) {
	if err := d.requireSession(); err != nil {
		return ListFramesResult{}, err
	}
	_, sessionID := d.state.session()
	rep, err := d.correlator.sendAndWait("Page.getFrameTree", nil, sessionID, d.timeout(timeout))
	if err != nil {
		return ListFramesResult{}, err
	}
	var res getFrameTreeReply
	if err := decodeResult(rep.Result, &res); err != nil {
		return ListFramesResult{}, err
	}
	frames := make([]FrameInfo, 0, 4)
	flattenFrameTree(res.FrameTree, &frames)
	return ListFramesResult{Success: true, Frames: frames}, nil
}

const frameSwitchPollInterval = 50 * time.Millisecond

// SwitchToFrame implements SPEC_FULL.md §12 switch_to_frame(id_or_index).
// It resolves the target frame and sets current_execution_context_id only
// from a context recorded by an executionContextCreated event for that frame.
// If such a context was already recorded it is used as is, without checking
// that it is still alive; otherwise it forces an isolated world (which makes
// Chrome emit executionContextCreated for that frame) and waits for the
// mapping to appear before committing the switch.
func (d *Driver) SwitchToFrame(idOrIndex string, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	list, err := d.ListFrames(timeout)
	if err != nil {
		return DriverResult{}, err
	}

	frameID, err := resolveFrameTarget(list.Frames, idOrIndex)
	if err != nil {
		return DriverResult{}, err
	}

	if _, ok := d.state.contextForFrame(frameID); !ok {
		_, sessionID := d.state.session()
		params := map[string]interface{}{"frameId": frameID, "worldName": "bmcps_probe"}
		// createIsolatedWorld forces Runtime.executionContextCreated for this
		// frame even if the main-world context already existed beforehand.
		if _, err := d.correlator.sendAndWait("Page.createIsolatedWorld", params, sessionID, d.timeout(timeout)); err != nil {
			return DriverResult{}, err
		}
	}

	deadline := time.Now().Add(d.timeout(timeout))
	for {
		if contextID, ok := d.state.contextForFrame(frameID); ok {
			d.state.setCurrentExecutionContext(contextID)
			return DriverResult{Success: true, Message: "switched to frame " + frameID}, nil
		}
		if time.Now().After(deadline) {
			return DriverResult{}, NewSemanticError("timed out waiting for execution context for frame " + frameID)
		}
		time.Sleep(frameSwitchPollInterval)
	}
}

// SwitchToMainFrame implements SPEC_FULL.md §12 switch_to_main_frame: resets
// current_execution_context_id to 0, meaning "default world" per spec.md §4.F.
func (d *Driver) SwitchToMainFrame() DriverResult {
	d.state.setCurrentExecutionContext(0)
	return DriverResult{Success: true, Message: "switched to main frame"}
}

func resolveFrameTarget(frames []FrameInfo, idOrIndex string) (string, error) {
	if idx, err := strconv.Atoi(idOrIndex); err == nil {
		if idx < 0 || idx >= len(frames) {
			return "", NewSemanticError("frame index out of range: " + idOrIndex)
		}
		return frames[idx].FrameID, nil
	}
	for _, f := range frames {
		if f.FrameID == idOrIndex {
			return f.FrameID, nil
		}
	}
	return "", NewSemanticError("no such frame: " + idOrIndex)
}
