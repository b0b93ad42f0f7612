package connection

import (
	"testing"

	"github.com/inkwave/inkwave/internal/config"
)

type stubClient struct {
	url        string
	upscalers  []string
	supported  map[string]bool
	supportAll bool
}

func (c *stubClient) URL() string         { return c.url }
func (c *stubClient) Upscalers() []string { return c.upscalers }

func (c *stubClient) SupportsStyle(style *config.Style) bool {
	if c.supportAll {
		return true
	}
	return c.supported[style.Name]
}

func TestConnection_Lifecycle(t *testing.T) {
	conn := New()

	var states []State
	conn.State.Listen(func(s State) error {
		states = append(states, s)
		return nil
	})

	conn.Begin()
	conn.Established(&stubClient{url: "http://127.0.0.1:8188", supportAll: true})

	if _, ok := conn.ClientIfConnected(); !ok {
		t.Fatal("expected client after Established")
	}

	conn.Fail("server went away")
	if got := conn.LastError.Get(); got != "server went away" {
		t.Errorf("LastError = %q, want %q", got, "server went away")
	}
	if _, ok := conn.ClientIfConnected(); ok {
		t.Error("client should be unavailable after Fail")
	}

	conn.Close()

	want := []State{StateConnecting, StateConnected, StateError, StateDisconnected}
	if len(states) != len(want) {
		t.Fatalf("observed states %v, want %v", states, want)
	}
	for i, s := range want {
		if states[i] != s {
			t.Errorf("state[%d] = %v, want %v", i, states[i], s)
		}
	}
}

func TestConnection_BeginClearsError(t *testing.T) {
	conn := New()
	conn.Fail("first attempt failed")
	conn.Begin()

	if got := conn.LastError.Get(); got != "" {
		t.Errorf("LastError = %q, want empty after Begin", got)
	}
	if got := conn.State.Get(); got != StateConnecting {
		t.Errorf("State = %v, want %v", got, StateConnecting)
	}
}

func TestConnection_FilterSupportedStyles(t *testing.T) {
	cinematic := &config.Style{Name: "Cinematic"}
	flat := &config.Style{Name: "Flat Color"}
	styles := []*config.Style{cinematic, flat}

	conn := New()

	// Offline every style passes.
	if got := conn.FilterSupportedStyles(styles); len(got) != 2 {
		t.Fatalf("offline filter kept %d styles, want 2", len(got))
	}

	conn.Begin()
	conn.Established(&stubClient{
		url:       "http://127.0.0.1:8188",
		supported: map[string]bool{"Cinematic": true},
	})

	got := conn.FilterSupportedStyles(styles)
	if len(got) != 1 || got[0] != cinematic {
		t.Fatalf("connected filter = %v, want just Cinematic", got)
	}
}
