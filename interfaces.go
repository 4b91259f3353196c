/*
 * interfaces.go, part of resacf.
 *
 * Copyright 2023 The resacf developers
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

package resacf

// Selection is the interface for any source of per-frame atom selections.
// The gmxsel subpackage provides the implementation for gmx select -oi
// files, but any object with equivalent semantics can feed the ACF
// calculation.
type Selection interface {

	//NFrames returns the number of frames in the selection series.
	NFrames() int

	//Time returns the physical time of the i-th frame. Frames must be
	//evenly spaced in time. Should panic if out of range.
	Time(i int) float64

	//Selected returns the identifiers of the atoms selected at the i-th
	//frame. The returned slice is read-only for the caller. Should panic
	//if out of range.
	Selected(i int) []uint32
}

//Errors

//This error predates the "wrapping" error system of Go (i.e. the "%w" directive and the errors package). We should avoid
//using the Decorate method and/or make it use the "%w" directive internally.

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //This is the new thing for errors. It allows you to add information when you pass it up. Each call also returns the "decoration" slice of strins resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}

// TableError is the interface for errors in selection tables.
type TableError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// ZeroNormError marks the error returned when a block collects no selected
// frames at all, so its ACF normalization would divide by zero. It can be
// filtered in a typeswitch that looks for this interface.
type ZeroNormError interface {
	Error
	Block() int //the block whose normalization counter stayed at zero
}

// CapacityError marks the error returned when an atom identifier exceeds
// the representable capacity, so it can be told apart from generic parse
// errors.
type CapacityError interface {
	Error
	IDCapacityExceeded() //does nothing, just to separate this interface from other Error's
}
