package ui

// Package ui contains the Fyne-based panel for the application. It renders
// the workspace pages and keeps every widget in sync with the document model
// through the binding package; widgets never poll model state.
