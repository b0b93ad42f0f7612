package ui

import (
	"fyne.io/fyne/v2/widget"

	"github.com/inkwave/inkwave/internal/binding"
	"github.com/inkwave/inkwave/internal/config"
	"github.com/inkwave/inkwave/internal/model"
)

// WorkspaceSelect is the drop-down switching between the generation,
// upscaling and live workspaces.
type WorkspaceSelect struct {
	*widget.Select

	// Changed fires the newly selected index.
	Changed *binding.Signal[int]
}

// NewWorkspaceSelect creates a workspace drop-down with all workspaces.
func NewWorkspaceSelect() *WorkspaceSelect {
	ws := &WorkspaceSelect{Changed: binding.NewSignal[int]()}

	names := make([]string, 0, len(model.Workspaces()))
	for _, w := range model.Workspaces() {
		names = append(names, w.String())
	}
	ws.Select = widget.NewSelect(names, func(string) {
		ws.Changed.Emit(ws.SelectedIndex())
	})
	return ws
}

// BindTo links the drop-down to a workspace property both ways.
func (ws *WorkspaceSelect) BindTo(p *binding.Property[model.Workspace]) (*binding.Link, error) {
	return binding.BindCombo(p, model.Workspaces(), ws.Changed, ws.setIndex)
}

func (ws *WorkspaceSelect) setIndex(i int) {
	if i < 0 {
		ws.ClearSelected()
		return
	}
	ws.SetSelectedIndex(i)
}

// StyleSelect is the drop-down picking the active style preset. Its option
// list follows the loaded styles; the view rebinds after a reload.
type StyleSelect struct {
	*widget.Select

	// Changed fires the newly selected index.
	Changed *binding.Signal[int]

	styles []*config.Style
}

// NewStyleSelect creates an empty style drop-down.
func NewStyleSelect() *StyleSelect {
	ss := &StyleSelect{Changed: binding.NewSignal[int]()}
	ss.Select = widget.NewSelect(nil, func(string) {
		ss.Changed.Emit(ss.SelectedIndex())
	})
	ss.Select.PlaceHolder = "Select style"
	return ss
}

// SetStyles replaces the option list.
func (ss *StyleSelect) SetStyles(styles []*config.Style) {
	names := make([]string, 0, len(styles))
	for _, style := range styles {
		names = append(names, style.Name)
	}
	ss.styles = styles
	ss.Select.Options = names
	ss.Select.Refresh()
}

// BindTo links the drop-down to a style property both ways. SetStyles must
// have been called first; rebind after every SetStyles.
func (ss *StyleSelect) BindTo(p *binding.Property[*config.Style]) (*binding.Link, error) {
	return binding.BindCombo(p, ss.styles, ss.Changed, ss.setIndex)
}

func (ss *StyleSelect) setIndex(i int) {
	if i < 0 {
		ss.ClearSelected()
		return
	}
	ss.SetSelectedIndex(i)
}
