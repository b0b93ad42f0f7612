package imaging

// Package imaging provides size math and raster scaling for result previews
// and history thumbnails.
