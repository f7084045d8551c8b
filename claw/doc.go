// Package claw parses claw machine descriptions and computes the fewest
// tokens needed to win their prizes.
//
// A machine has two buttons, each moving the claw by a fixed vector, and a
// prize at a fixed position. Pressing A costs 3 tokens and B costs 1. The
// press counts are the unique solution of a 2x2 integer linear system,
// found exactly with Cramer's rule; machines whose solution is fractional,
// negative or undetermined cannot be won.
package claw
