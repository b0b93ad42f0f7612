package config

// Package config manages application preferences and style presets.
// Settings are backed by Fyne preferences with .env developer overrides;
// style presets are YAML files in a user-selectable directory. Both expose
// change signals the UI subscribes to instead of reading ambient state.
