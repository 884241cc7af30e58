//go:build !unix

package terminal

import "errors"

// NewANSI is unavailable without a unix tty
func NewANSI() (Terminal, error) {
	return nil, errors.New("ansi backend requires a unix terminal")
}
