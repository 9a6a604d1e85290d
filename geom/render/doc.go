// Package render draws figures into a PNG contact sheet.
//
// Figures are laid out on a square-ish grid of equally sized cells. Each
// outline is filled and stroked with gogpu/gg, scaled to fit its cell with
// the y axis pointing up, and optionally labelled with its index and kind
// using the Go Regular font.
package render
