// Package selection holds the tile palette of the button grid and the set
// of tiles currently selected on it.
//
// A Grid is owned by a single UI loop. Observers registered with Subscribe
// are called synchronously after every mutation, which is how the UI layer,
// metrics and logging learn about changes without polling.
package selection
