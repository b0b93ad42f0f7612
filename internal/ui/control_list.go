package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/inkwave/inkwave/internal/binding"
	"github.com/inkwave/inkwave/internal/model"
)

// ControlLayerRow edits one control layer: its mode, the document layer it
// reads from, and its strength. All bindings the row creates live in its
// group and are torn down in Dispose.
type ControlLayerRow struct {
	widget.BaseWidget

	layer *model.ControlLayer

	modeSelect  *widget.Select
	modeChanged *binding.Signal[int]
	layerSelect *widget.Select
	layerNames  []string
	layerIDs    []string
	strength    *StrengthSlider
	generateBtn *widget.Button
	removeBtn   *widget.Button
	errorLabel  *widget.Label

	group binding.Group

	onRemove func(*model.ControlLayer)
}

// NewControlLayerRow creates a row bound to the given control layer.
func NewControlLayerRow(layer *model.ControlLayer, doc model.Document, onRemove func(*model.ControlLayer)) *ControlLayerRow {
	row := &ControlLayerRow{
		layer:       layer,
		modeChanged: binding.NewSignal[int](),
		onRemove:    onRemove,
	}
	row.ExtendBaseWidget(row)
	row.createUI(doc)
	row.bind()
	return row
}

func (row *ControlLayerRow) createUI(doc model.Document) {
	modes := model.SelectableControlModes()
	modeNames := make([]string, 0, len(modes))
	for _, m := range modes {
		modeNames = append(modeNames, m.String())
	}
	row.modeSelect = widget.NewSelect(modeNames, func(string) {
		row.modeChanged.Emit(row.modeSelect.SelectedIndex())
	})

	for _, l := range doc.Layers() {
		row.layerNames = append(row.layerNames, l.Name)
		row.layerIDs = append(row.layerIDs, l.ID)
	}
	row.layerSelect = widget.NewSelect(row.layerNames, func(string) {
		i := row.layerSelect.SelectedIndex()
		if i < 0 || i >= len(row.layerIDs) {
			return
		}
		row.layer.LayerID.Set(row.layerIDs[i])
	})

	row.strength = NewStrengthSlider(row.layer.Strength.Get())

	row.generateBtn = widget.NewButton(IconGenerate, func() {
		if !row.layer.Mode.Get().CanGenerate() {
			return
		}
		job := row.layer.Generate()
		log.Printf("control layer %s: queued job %s", row.layer.ID, job.ID)
	})

	row.removeBtn = widget.NewButton(IconRemove, func() {
		if row.onRemove != nil {
			row.onRemove(row.layer)
		}
	})

	row.errorLabel = widget.NewLabel("")
	row.errorLabel.Importance = widget.DangerImportance
	row.errorLabel.Hide()
}

func (row *ControlLayerRow) bind() {
	modeLink, err := binding.BindCombo(row.layer.Mode, model.SelectableControlModes(), row.modeChanged, row.setModeIndex)
	if err != nil {
		log.Printf("control row: mode binding: %v", err)
	}
	strengthLink, err := binding.Bind(row.layer.Strength, row.strength.Value, binding.TwoWay)
	if err != nil {
		log.Printf("control row: strength binding: %v", err)
	}
	row.group.Add(
		modeLink,
		strengthLink,
		row.layer.LayerID.Listen(func(id string) error {
			row.selectLayerID(id)
			return nil
		}),
		row.layer.HasActiveJob.Listen(func(active bool) error {
			row.setBusy(active)
			return nil
		}),
		row.layer.ErrorText.Listen(func(message string) error {
			row.setError(message)
			return nil
		}),
	)

	row.selectLayerID(row.layer.LayerID.Get())
	row.setBusy(row.layer.HasActiveJob.Get())
	row.setError(row.layer.ErrorText.Get())
}

func (row *ControlLayerRow) setModeIndex(i int) {
	if i < 0 {
		row.modeSelect.ClearSelected()
		return
	}
	row.modeSelect.SetSelectedIndex(i)
}

func (row *ControlLayerRow) selectLayerID(id string) {
	for i, lid := range row.layerIDs {
		if lid == id {
			row.layerSelect.SetSelectedIndex(i)
			return
		}
	}
	row.layerSelect.ClearSelected()
}

func (row *ControlLayerRow) setBusy(active bool) {
	if active {
		row.generateBtn.Disable()
	} else {
		row.generateBtn.Enable()
	}
}

func (row *ControlLayerRow) setError(message string) {
	row.errorLabel.SetText(message)
	if message == "" {
		row.errorLabel.Hide()
	} else {
		row.errorLabel.Show()
	}
}

// Layer returns the control layer this row edits.
func (row *ControlLayerRow) Layer() *model.ControlLayer {
	return row.layer
}

// Dispose tears down every binding the row holds.
func (row *ControlLayerRow) Dispose() {
	if err := row.group.Disconnect(); err != nil {
		log.Printf("control row: teardown: %v", err)
	}
}

// CreateRenderer implements fyne.Widget.
func (row *ControlLayerRow) CreateRenderer() fyne.WidgetRenderer {
	controls := container.NewBorder(nil, nil,
		container.NewHBox(row.modeSelect, row.layerSelect),
		container.NewHBox(row.generateBtn, row.removeBtn),
		row.strength,
	)
	return widget.NewSimpleRenderer(container.NewVBox(controls, row.errorLabel))
}

// ControlList shows a row per control layer of the attached model and an
// add button. It follows the list's Added and Removed signals, and swaps
// its whole content when attached to a different model.
type ControlList struct {
	widget.BaseWidget

	current *model.Model
	rows    []*ControlLayerRow
	box     *fyne.Container
	addBtn  *widget.Button

	group binding.Group
}

// NewControlList creates an empty control list.
func NewControlList() *ControlList {
	cl := &ControlList{box: container.NewVBox()}
	cl.ExtendBaseWidget(cl)
	cl.addBtn = widget.NewButton(IconAdd+" Add control layer", func() {
		if cl.current == nil {
			return
		}
		cl.current.Control.Add()
	})
	return cl
}

// SetModel detaches from the previous model and attaches to m. All rows and
// subscriptions against the old model are torn down first.
func (cl *ControlList) SetModel(m *model.Model) {
	if err := cl.group.Disconnect(); err != nil {
		log.Printf("control list: teardown: %v", err)
	}
	for _, row := range cl.rows {
		row.Dispose()
	}
	cl.rows = nil
	cl.box.RemoveAll()

	cl.current = m
	if m == nil {
		cl.Refresh()
		return
	}

	for _, layer := range m.Control.All() {
		cl.addRow(layer)
	}
	cl.group.Add(
		m.Control.Added.Listen(func(layer *model.ControlLayer) error {
			cl.addRow(layer)
			return nil
		}),
		m.Control.Removed.Listen(func(layer *model.ControlLayer) error {
			cl.removeRow(layer)
			return nil
		}),
	)
	cl.Refresh()
}

func (cl *ControlList) addRow(layer *model.ControlLayer) {
	row := NewControlLayerRow(layer, cl.current.Document(), func(l *model.ControlLayer) {
		cl.current.Control.Remove(l)
	})
	cl.rows = append(cl.rows, row)
	cl.box.Add(row)
}

func (cl *ControlList) removeRow(layer *model.ControlLayer) {
	for i, row := range cl.rows {
		if row.Layer() == layer {
			row.Dispose()
			cl.box.Remove(row)
			cl.rows = append(cl.rows[:i], cl.rows[i+1:]...)
			return
		}
	}
}

// Rows returns the rows currently shown, in layer order.
func (cl *ControlList) Rows() []*ControlLayerRow {
	result := make([]*ControlLayerRow, len(cl.rows))
	copy(result, cl.rows)
	return result
}

// CreateRenderer implements fyne.Widget.
func (cl *ControlList) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewVBox(cl.box, cl.addBtn))
}
