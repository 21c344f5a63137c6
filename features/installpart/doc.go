// Package installpart implements the Install Part use case.
//
// A part from the catalog is installed on one connection point of the current assembly.
// The decision re-validates everything a UI would pre-filter: the frame size, the point's
// category, whether the point is free, and the other-part rules (homogeneous motors, at most
// four of them, one of every other category). Only then does it derive the next snapshot from
// a deep copy of the current frame, so the previous snapshot stays untouched.
//
// The advisory max price is not checked here. It never blocks a transition.
package installpart
