package binding

// Package binding implements two-way property synchronization between model
// entities and UI widgets. A Property notifies registered listeners when its
// value changes, a Link keeps one source property and one target property or
// widget setter in sync, and a Group tears down every link a view created
// when the view switches to a different model. All delivery is synchronous
// on the UI thread.
