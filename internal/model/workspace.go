package model

// Workspace selects which panel of the plugin is active for a document.
type Workspace int

const (
	WorkspaceGeneration Workspace = iota
	WorkspaceUpscaling
	WorkspaceLive
)

// String returns the display name of the workspace.
func (w Workspace) String() string {
	switch w {
	case WorkspaceGeneration:
		return "Generate"
	case WorkspaceUpscaling:
		return "Upscale"
	case WorkspaceLive:
		return "Live"
	default:
		return "Unknown"
	}
}

// Workspaces returns all workspaces in panel order.
func Workspaces() []Workspace {
	return []Workspace{WorkspaceGeneration, WorkspaceUpscaling, WorkspaceLive}
}

// ControlMode identifies how a control layer conditions the generation.
type ControlMode int

const (
	ControlInpaint ControlMode = iota
	ControlScribble
	ControlLineArt
	ControlSoftEdge
	ControlCannyEdge
	ControlDepth
	ControlPose
)

// String returns the display name of the control mode.
func (m ControlMode) String() string {
	switch m {
	case ControlInpaint:
		return "Inpaint"
	case ControlScribble:
		return "Scribble"
	case ControlLineArt:
		return "Line Art"
	case ControlSoftEdge:
		return "Soft Edge"
	case ControlCannyEdge:
		return "Canny Edge"
	case ControlDepth:
		return "Depth"
	case ControlPose:
		return "Pose"
	default:
		return "Unknown"
	}
}

// CanGenerate returns true if the mode's conditioning image can be derived
// from the current canvas.
func (m ControlMode) CanGenerate() bool {
	return m != ControlInpaint && m != ControlScribble
}

// IsPoseVector returns true for modes edited as vector poses rather than
// raster layers.
func (m ControlMode) IsPoseVector() bool {
	return m == ControlPose
}

// SelectableControlModes returns the modes offered in the control layer
// dropdown. Inpaint is driven by the selection tool, not the list.
func SelectableControlModes() []ControlMode {
	return []ControlMode{
		ControlScribble,
		ControlLineArt,
		ControlSoftEdge,
		ControlCannyEdge,
		ControlDepth,
		ControlPose,
	}
}
