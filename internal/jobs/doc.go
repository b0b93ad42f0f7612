package jobs

// Package jobs tracks generation jobs sent to the backend: their lifecycle,
// results, and the history selection. The queue is a collaborator of the
// UI layer; scheduling and transport belong to the connection's client.
