// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package termio provides minimal raw-terminal handling for interactive
// pacing, such as stepping through a walkthrough one keypress at a time.
package termio

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// ESC is the escape key.
const ESC byte = 0x1b

// SPACE is the space key.
const SPACE byte = 0x20

// CARRIAGE_RETURN indicates "enter".
const CARRIAGE_RETURN byte = 0x0d

// Terminal provides single-keypress input over a terminal in raw mode.
type Terminal struct {
	// file descriptor of the controlling terminal.
	fd int
	// Stores original state of terminal so this can be restored.
	state *term.State
}

// NewTerminal places the controlling terminal into raw mode, failing if
// stdout is not a terminal at all.
func NewTerminal() (*Terminal, error) {
	fd := int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		return nil, errors.New("invalid terminal")
	}
	//
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return nil, err
	}
	//
	return &Terminal{fd, state}, nil
}

// ReadKey blocks until a key is pressed, returning its first byte.
func (t *Terminal) ReadKey() (byte, error) {
	var key [1]byte
	//
	if _, err := os.Stdin.Read(key[:]); err != nil {
		return 0, err
	}
	//
	return key[0], nil
}

// Width reports the current width of the terminal in characters.
func (t *Terminal) Width() uint {
	width, _, err := term.GetSize(t.fd)
	if err != nil || width <= 0 {
		return 80
	}
	//
	return uint(width)
}

// Restore returns the terminal to its original (cooked) state.
func (t *Terminal) Restore() error {
	return term.Restore(int(os.Stdin.Fd()), t.state)
}
