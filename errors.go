/*
 * errors.go, part of govsim.
 *
 * Copyright 2024 The govsim developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package vsim

import "fmt"

//ErrKind classifies the errors this package produces, so callers can
//distinguish a broken file from a file using a feature we don't handle.
type ErrKind int

const (
	//ErrIO is an underlying stream error, propagated unchanged in the message.
	ErrIO ErrKind = iota
	//ErrMalformedInput marks unparsable numeric tokens and truncated headers.
	ErrMalformedInput
	//ErrUnsupportedFeature marks a readable file using a feature this
	//reader does not resolve (the surface boundary keyword).
	ErrUnsupportedFeature
	//ErrUnsupportedBoundary marks a write request with a periodicity
	//pattern the format cannot express.
	ErrUnsupportedBoundary
)

func (k ErrKind) String() string {
	switch k {
	case ErrMalformedInput:
		return "malformed input"
	case ErrUnsupportedFeature:
		return "unsupported feature"
	case ErrUnsupportedBoundary:
		return "unsupported boundary condition"
	default:
		return "i/o failure"
	}
}

//Error is the general structure for govsim errors.
type Error struct {
	kind     ErrKind
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("govsim: %v: %s", err.kind, err.message)
	}
	return fmt.Sprintf("govsim: file %s: %v: %s", err.filename, err.kind, err.message)
}

//Kind returns the classification of the error.
func (err Error) Kind() ErrKind { return err.kind }

//Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing operation was associated,
//or an empty string if the operation worked on a plain stream.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

//IsKind reports whether err is a govsim Error of kind k.
func IsKind(err error, k ErrKind) bool {
	e, ok := err.(Error)
	return ok && e.kind == k
}

//errDecorate adds the caller's name to the decoration of a govsim Error,
//and returns the error unchanged otherwise.
func errDecorate(err error, caller string) error {
	e, ok := err.(Error)
	if !ok {
		return err
	}
	e.deco = append(e.deco, caller)
	return e
}
