// Package connection tracks the backend connection the panels observe.
package connection
