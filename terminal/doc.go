// Package terminal is the output and input collaborator of the frame loop.
//
// Two backends implement Terminal:
//   - tcell: cell-diffed screen updates and key decoding via gdamore/tcell
//   - ansi: raw stdin through golang.org/x/term, non-blocking reads via
//     unix.Poll with a zero timeout, cursor-home followed by the frame rows
//
// Both draw a frame without clearing the screen first, so consecutive frames
// overwrite in place and do not flicker. PollEvent never blocks.
// EmergencyReset restores a usable terminal from panic recovery paths.
package terminal
