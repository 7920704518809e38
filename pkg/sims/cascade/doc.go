// Package cascade implements the step engine for grids of energy levels.
//
// Each step raises every cell by one, then resolves releases: a cell whose
// value exceeds the threshold resets to the baseline and raises each of its
// neighbors by one, which may push them over the threshold in turn. A cell
// releases at most once per step and is not raised again by later releases
// in the same step. Resolution uses an explicit worklist, so a chain reaction
// across the whole board never grows the call stack.
package cascade
