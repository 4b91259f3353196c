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

/*Package resacf computes residence-time autocorrelation functions from
per-frame atom selections, as produced by tools such as gmx select from
the Gromacs suite.

For every atom in the selection, the library finds the contiguous stretches
of frames ("spans") during which the atom remained selected. Two optional
pre-processing policies tolerate brief de-selection flicker: FillSmallGaps
merges short non-selected stretches into the surrounding spans, while
DelayTrueSpans extends the head of every non-selected stretch by a fixed
number of frames. Each span of length L then contributes a triangular term
L-lag to the unnormalized autocorrelation function at every lag below L.

Error estimates come from block averaging: the atom population is split
into disjoint blocks, a normalized ACF is computed independently per block,
and the cross-block mean and standard deviation are reported.

	**resacf Capabilities**

    Reads gmx select -oi index output, plain or compressed (see the
	gmxsel subpackage).

    Extracts residence spans from boolean selection series, with or
	without the spans that touch the series boundaries.

    Gap handling by conditional merging or by onset delaying.

    Block-averaged ACF with population standard deviation, serially or
	with one concurrent worker per block.

    Writes the (t, acf, acf_std) table as whitespace-delimited text, and
	can plot it with error bars (see the acfplot subpackage).*/
package resacf
