package model

// Package model holds the observable generation state of each open
// document: prompt and style, control layers, upscale and live parameters,
// and the job queue. Every attribute a widget edits is a binding.Property,
// so the UI attaches with bindings instead of manual callback wiring.
