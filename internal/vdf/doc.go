// Package vdf decodes the binary key/value catalogs Steam keeps in
// appinfo.vdf and packageinfo.vdf.
//
// Ownership boundary:
// - byte reader over a forward-only stream
// - string, scalar and node decoders for the tagged key/value tree
// - application and package catalog readers
// - key-path lookup over decoded nodes
//
// Opening and buffering files belongs to internal/source.
package vdf
