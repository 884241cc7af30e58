// Package engine is the frame driver.
//
// App alternates between the shape menu and a Session. A Session repeats:
// render the selected solid into the depth-buffered grid, hand the grid to
// the terminal, drain pending input without blocking, apply decoded intents,
// sleep for the frame interval. Menu and quit intents take effect at the top
// of the next iteration; context cancellation terminates from either state.
package engine
