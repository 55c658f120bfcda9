// Package energy provides reference implementations of the edge-energy
// collaborator consumed by weightfield.
//
// The engine treats energy as an opaque, nonnegative two-component signal
// per pixel (rightward and downward edge strength); any formula works as long
// as stronger image edges yield larger values. This package ships two
// providers:
//
//   - Gradient: 8-bit luminance forward differences over a decoded
//     image.Image — the simplest usable contrast measure, enough to make the
//     engine trace real images end-to-end.
//   - Uniform: constant energy everywhere, for tests and benchmarks where
//     path geometry must be predictable.
//
// Color conversion goes through golang.org/x/image/draw so any source color
// model (RGBA, YCbCr from JPEG, paletted GIF, ...) lands in the same
// luminance buffer.
package energy
