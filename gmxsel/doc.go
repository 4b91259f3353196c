/*
 * doc.go, part of resacf.
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

//Package gmxsel reads the index output of gmx select (the -oi flag of the
//Gromacs selection tool) into a table of per-frame atom selections that the
//resacf package can analyze.

/******************** Format Specification   ***************************************************

A selection index file is a whitespace-delimited ASCII text table with one
line per trajectory frame.

Each line contains, in this order: the physical time of the frame (a
floating point number), the number of atoms selected at that frame (a
non-negative integer), and then that many atom identifiers (non-negative
integers). Lines are therefore of variable width; a frame with no selected
atoms has just the time and a zero. Empty lines are ignored.

Frames are expected to be evenly spaced in time; the resacf package derives
the time step from the first and last timestamps and the line count.

Files may be compressed. The compression is chosen by the file name
extension: ".gz" for gzip and ".zst" or ".zstd" for z-standard. Any other
extension is read as plain text.

Atom identifiers are kept as 32-bit unsigned integers. Files with
identifiers beyond that capacity (or beyond a stricter, caller-provided
cap) are rejected with a distinct capacity error rather than silently
truncated.

***************************************************************************************************/

package gmxsel
