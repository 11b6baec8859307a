// Package fragment renders peer target plans into the marker-delimited text
// block appended to the project's Package.swift, and applies that block in
// place. The file is modeled as arbitrary prefix text plus one managed
// block: apply truncates at the marker and appends a fresh render, so
// repeated runs replace rather than duplicate the block.
package fragment
