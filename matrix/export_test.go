// SPDX-License-Identifier: MIT

package matrix

// Hypot exposes the overflow-safe hypotenuse to external tests.
var Hypot = hypot
