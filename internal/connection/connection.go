package connection

import (
	"log"

	"github.com/inkwave/inkwave/internal/binding"
	"github.com/inkwave/inkwave/internal/config"
)

// State is the lifecycle phase of the backend connection.
type State string

const (
	// StateDisconnected means no connection attempt is in progress
	StateDisconnected State = "Disconnected"

	// StateConnecting means a connection attempt is running
	StateConnecting State = "Connecting"

	// StateConnected means the backend is reachable and ready
	StateConnected State = "Connected"

	// StateError means the last connection attempt failed
	StateError State = "Error"
)

// String returns the string representation of State.
func (s State) String() string {
	return string(s)
}

// Client is the generation backend, implemented elsewhere. The UI layer
// only queries capabilities; job transport is the client's business.
type Client interface {
	// URL returns the backend address the client is connected to.
	URL() string

	// Upscalers returns the upscale model files the backend offers.
	Upscalers() []string

	// SupportsStyle reports whether the backend has the style's checkpoint.
	SupportsStyle(style *config.Style) bool
}

// Connection tracks the backend connection state the panels observe. The
// actual protocol lives in the client; this is the observable shell the UI
// binds to.
type Connection struct {
	// State is the current connection phase.
	State *binding.Property[State]

	// LastError is the failure message of the most recent attempt.
	LastError *binding.Property[string]

	client Client
}

// New creates a disconnected connection.
func New() *Connection {
	return &Connection{
		State:     binding.NewProperty(StateDisconnected),
		LastError: binding.NewProperty(""),
	}
}

// Begin marks a connection attempt as started.
func (c *Connection) Begin() {
	c.LastError.Set("")
	c.State.Set(StateConnecting)
}

// Established stores the ready client and marks the connection usable.
func (c *Connection) Established(client Client) {
	c.client = client
	c.LastError.Set("")
	c.State.Set(StateConnected)
	log.Printf("connection: established to %s", client.URL())
}

// Fail records a failed attempt with its message.
func (c *Connection) Fail(message string) {
	c.client = nil
	c.LastError.Set(message)
	c.State.Set(StateError)
	log.Printf("connection: failed: %s", message)
}

// Close drops the client and returns to the disconnected state.
func (c *Connection) Close() {
	c.client = nil
	c.State.Set(StateDisconnected)
}

// ClientIfConnected returns the client while the connection is usable.
func (c *Connection) ClientIfConnected() (Client, bool) {
	if c.State.Get() != StateConnected || c.client == nil {
		return nil, false
	}
	return c.client, true
}

// FilterSupportedStyles returns the styles the connected backend can run.
// With no connection every style passes, so the UI stays usable offline.
func (c *Connection) FilterSupportedStyles(styles []*config.Style) []*config.Style {
	client, ok := c.ClientIfConnected()
	if !ok {
		return styles
	}
	var supported []*config.Style
	for _, style := range styles {
		if client.SupportsStyle(style) {
			supported = append(supported, style)
		}
	}
	return supported
}
