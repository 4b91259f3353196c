/*
 * errors.go, part of resacf.
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

import "fmt"

// CError (Concrete Error) is the error type used by the core analysis
// functions. It fullfills the resacf.Error interface.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds new information to the error
func (err CError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate is a helper function that asserts that the error
//implements resacf.Error and decorates the error with the caller's name before returning it.
//if used with a non-resacf.Error error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// Messages for the errors produced by this package.
const (
	ErrNilSelection  = "Given nil selection data"
	ErrNoEndTime     = "End time not set or not positive"
	ErrTooFewFrames  = "Selection needs at least 2 frames to define a time step"
	ErrNoFramesInCut = "End time shorter than one time step: no frames left to analyze"
)

//zeroNormError fullfills resacf.ZeroNormError. It is returned when the
//normalization counter of a block stays at zero, i.e. none of the atoms
//of the block was ever selected, and the block's ACF is undefined.
type zeroNormError struct {
	block int
	deco  []string
}

func (err zeroNormError) Error() string {
	return fmt.Sprintf("resacf: block %d has no selected frames, its ACF normalization is zero", err.block)
}

//Block returns the block whose normalization counter stayed at zero
func (err zeroNormError) Block() int { return err.block }

func (err zeroNormError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
