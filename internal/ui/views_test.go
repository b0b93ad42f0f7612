package ui

import (
	"image"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/inkwave/inkwave/internal/config"
	"github.com/inkwave/inkwave/internal/imaging"
	"github.com/inkwave/inkwave/internal/jobs"
	"github.com/inkwave/inkwave/internal/model"
)

type fakeDocument struct {
	extent imaging.Extent
	layers []model.Layer
	added  []string
}

func (d *fakeDocument) Extent() imaging.Extent { return d.extent }
func (d *fakeDocument) Layers() []model.Layer  { return d.layers }

func (d *fakeDocument) AddLayer(name string, img image.Image) error {
	d.added = append(d.added, name)
	return nil
}

func newTestModel() *model.Model {
	doc := &fakeDocument{
		extent: imaging.Extent{Width: 512, Height: 512},
		layers: []model.Layer{{ID: "layer-1", Name: "Background"}},
	}
	return model.New(doc, config.NewStyleList())
}

func TestGenerationView_PromptBothWays(t *testing.T) {
	test.NewApp()

	m := newTestModel()
	gv := NewGenerationView()
	gv.SetStyles(config.NewStyleList().All())
	gv.SetModel(m)

	m.Prompt.Set("a quiet harbor at dawn")
	if got := gv.prompt.Text.Get(); got != "a quiet harbor at dawn" {
		t.Errorf("widget prompt = %q, want model value", got)
	}

	gv.prompt.Text.Set("stormy sea")
	if got := m.Prompt.Get(); got != "stormy sea" {
		t.Errorf("model prompt = %q, want widget value", got)
	}
}

func TestGenerationView_RebindOnModelSwitch(t *testing.T) {
	test.NewApp()

	first := newTestModel()
	second := newTestModel()
	gv := NewGenerationView()
	gv.SetStyles(config.NewStyleList().All())

	gv.SetModel(first)
	gv.SetModel(second)

	// The first model no longer reaches the widget.
	first.Prompt.Set("from the old model")
	if got := gv.prompt.Text.Get(); got != "" {
		t.Errorf("widget prompt = %q, want untouched by detached model", got)
	}

	// Widget edits land only on the second model.
	gv.prompt.Text.Set("fresh prompt")
	if got := first.Prompt.Get(); got != "from the old model" {
		t.Errorf("first model prompt = %q, want unchanged", got)
	}
	if got := second.Prompt.Get(); got != "fresh prompt" {
		t.Errorf("second model prompt = %q, want widget value", got)
	}
}

func TestGenerationView_RebindWithEmptyStyles(t *testing.T) {
	test.NewApp()

	// A connected backend can support none of the loaded styles, leaving
	// the style drop-down without options and its bind failing. The other
	// bindings must still work and later rebinds must not crash.
	gv := NewGenerationView()
	gv.SetStyles(nil)

	first := newTestModel()
	gv.SetModel(first)

	second := newTestModel()
	gv.SetModel(second)
	gv.SetStyles(nil)

	gv.prompt.Text.Set("still wired")
	if got := second.Prompt.Get(); got != "still wired" {
		t.Errorf("model prompt = %q, want widget value despite style bind failure", got)
	}
}

func TestGenerationView_StrengthAsPercent(t *testing.T) {
	test.NewApp()

	m := newTestModel()
	gv := NewGenerationView()
	gv.SetStyles(config.NewStyleList().All())
	gv.SetModel(m)

	m.Strength.Set(0.37)
	if got := gv.strength.entry.Text; got != "37%" {
		t.Errorf("strength entry = %q, want %q", got, "37%")
	}

	gv.strength.onEntrySubmitted("82")
	if got := m.Strength.Get(); got != 0.82 {
		t.Errorf("model strength = %v, want 0.82", got)
	}
}

func TestGenerationView_ErrorShownAndCleared(t *testing.T) {
	test.NewApp()

	m := newTestModel()
	gv := NewGenerationView()
	gv.SetStyles(config.NewStyleList().All())
	gv.SetModel(m)

	m.ReportError("server rejected the prompt")
	if !gv.errorLabel.Visible() {
		t.Error("error label should be visible")
	}
	if got := gv.errorLabel.Text; got != "server rejected the prompt" {
		t.Errorf("error label = %q", got)
	}

	m.ClearError()
	if gv.errorLabel.Visible() {
		t.Error("error label should be hidden after clear")
	}
}

func TestControlList_FollowsAddAndRemove(t *testing.T) {
	test.NewApp()

	m := newTestModel()
	cl := NewControlList()
	cl.SetModel(m)

	layer := m.Control.Add()
	if got := len(cl.Rows()); got != 1 {
		t.Fatalf("rows after add = %d, want 1", got)
	}

	m.Control.Remove(layer)
	if got := len(cl.Rows()); got != 0 {
		t.Fatalf("rows after remove = %d, want 0", got)
	}
}

func TestControlList_DetachesFromOldModel(t *testing.T) {
	test.NewApp()

	first := newTestModel()
	second := newTestModel()
	cl := NewControlList()

	cl.SetModel(first)
	first.Control.Add()
	if got := len(cl.Rows()); got != 1 {
		t.Fatalf("rows = %d, want 1", got)
	}

	cl.SetModel(second)
	if got := len(cl.Rows()); got != 0 {
		t.Fatalf("rows after switch = %d, want 0", got)
	}

	// Layers added to the detached model must not appear.
	first.Control.Add()
	if got := len(cl.Rows()); got != 0 {
		t.Errorf("rows after detached add = %d, want 0", got)
	}

	second.Control.Add()
	if got := len(cl.Rows()); got != 1 {
		t.Errorf("rows after attached add = %d, want 1", got)
	}
}

func TestControlRow_StrengthBothWays(t *testing.T) {
	test.NewApp()

	m := newTestModel()
	cl := NewControlList()
	cl.SetModel(m)

	layer := m.Control.Add()
	row := cl.Rows()[0]

	layer.Strength.Set(0.25)
	if got := row.strength.Percent(); got != 25 {
		t.Errorf("row strength = %d%%, want 25%%", got)
	}

	row.strength.Value.Set(0.6)
	if got := layer.Strength.Get(); got != 0.6 {
		t.Errorf("layer strength = %v, want 0.6", got)
	}
}

func TestQueueButton_FollowsCount(t *testing.T) {
	test.NewApp()

	m := newTestModel()
	qb := NewQueueButton()
	qb.SetModel(m)

	if got := qb.button.Text; got != "Queue empty" {
		t.Errorf("initial label = %q", got)
	}

	m.Jobs.Add(jobs.KindDiffusion, "first", imaging.Extent{Width: 512, Height: 512})
	m.Jobs.Add(jobs.KindDiffusion, "second", imaging.Extent{Width: 512, Height: 512})
	if got := qb.button.Text; got != "2 in queue "+IconCancel {
		t.Errorf("label = %q, want 2 in queue", got)
	}
}

func TestHistoryList_CollectsFinishedResults(t *testing.T) {
	test.NewApp()

	m := newTestModel()
	hl := NewHistoryList()
	hl.SetModel(m)

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	job := m.Jobs.Add(jobs.KindDiffusion, "boats", imaging.Extent{Width: 8, Height: 8})
	m.Jobs.SetState(job.ID, jobs.StateExecuting)
	m.Jobs.Finish(job.ID, []image.Image{img, img})

	if got := hl.Len(); got != 2 {
		t.Fatalf("history length = %d, want 2", got)
	}
}

func TestHistoryList_ShrinksWithHistoryLimit(t *testing.T) {
	test.NewApp()

	m := newTestModel()
	hl := NewHistoryList()
	hl.SetModel(m)

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < 3; i++ {
		job := m.Jobs.Add(jobs.KindDiffusion, "boats", imaging.Extent{Width: 8, Height: 8})
		m.Jobs.Finish(job.ID, []image.Image{img})
	}
	if got := hl.Len(); got != 3 {
		t.Fatalf("history length = %d, want 3", got)
	}

	// Lowering the history limit drops thumbnails immediately, not on the
	// next model switch.
	m.Jobs.Trim(1)
	if got := hl.Len(); got != 1 {
		t.Errorf("history length after trim = %d, want 1", got)
	}
}

func TestHistoryList_SelectionEnablesApply(t *testing.T) {
	test.NewApp()

	m := newTestModel()
	hl := NewHistoryList()
	hl.SetModel(m)

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	job := m.Jobs.Add(jobs.KindDiffusion, "boats", imaging.Extent{Width: 8, Height: 8})
	m.Jobs.SetState(job.ID, jobs.StateExecuting)
	m.Jobs.Finish(job.ID, []image.Image{img})

	m.Jobs.SelectResult(job.ID, 0)
	if !m.CanApplyResult.Get() {
		t.Error("apply should be possible with a selected result")
	}

	m.Jobs.Deselect()
	if m.CanApplyResult.Get() {
		t.Error("apply should be impossible without a selection")
	}
}

func TestLiveView_ToggleAndResult(t *testing.T) {
	test.NewApp()

	m := newTestModel()
	lv := NewLiveView()
	lv.SetModel(m)

	m.Live.Toggle()
	if got := lv.toggleBtn.Text; got != IconLive+" Stop" {
		t.Errorf("toggle label = %q, want stop", got)
	}

	if lv.applyBtn.Disabled() == false {
		t.Error("apply should start disabled")
	}
	m.Live.PublishResult(image.NewRGBA(image.Rect(0, 0, 8, 8)))
	if lv.applyBtn.Disabled() {
		t.Error("apply should enable once a preview arrived")
	}
}

func TestUpscaleView_TargetFollowsFactor(t *testing.T) {
	test.NewApp()

	m := newTestModel()
	uv := NewUpscaleView()
	uv.SetModel(m)

	if got := uv.targetLabel.Text; got != "Target: 1024 x 1024" {
		t.Errorf("initial target = %q", got)
	}

	m.Upscale.SetFactor(4.0)
	if got := uv.targetLabel.Text; got != "Target: 2048 x 2048" {
		t.Errorf("target after factor change = %q", got)
	}
}
