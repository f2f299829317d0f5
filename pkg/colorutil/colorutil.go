// Package colorutil provides shared color utilities for the application.
package colorutil

import "image/color"

// Magenta is the sentinel overlay color used to flag a cell the core has
// no answer for (a contradiction), rather than any real palette color.
var Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
