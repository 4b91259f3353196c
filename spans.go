/*
 * spans.go, part of resacf.
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

/**Note: The functions in this file are the "fundamental" building blocks of
 * the ACF calculation, so they panic on violated preconditions instead of
 * returning errors. If something goes wrong here the program is way-most
 * likely wrong and should crash.**/

//edges returns the indexes where seq changes value with respect to the
//preceding element, in increasing order. The first element is never an edge.
func edges(seq []bool) []int {
	ret := make([]int, 0, len(seq)/2)
	for i := 1; i < len(seq); i++ {
		if seq[i] != seq[i-1] {
			ret = append(ret, i)
		}
	}
	return ret
}

//TrueSpanLengths returns the lengths, in frames, of the maximal contiguous
//true-runs of seq. If outer is false, runs that touch the beginning or the
//end of seq are considered incomplete and left out; if outer is true, the
//sequence boundaries count as span borders, so those runs are reported
//with their visible length. It panics if given an empty sequence.
func TrueSpanLengths(seq []bool, outer bool) []int {
	if len(seq) == 0 {
		panic("resacf: TrueSpanLengths called with an empty sequence")
	}
	borders := edges(seq)
	if outer {
		withouter := make([]int, 0, len(borders)+2)
		withouter = append(withouter, 0)
		withouter = append(withouter, borders...)
		withouter = append(withouter, len(seq))
		borders = withouter
	}
	if len(borders) == 0 {
		return []int{}
	}
	//Every second border-to-border stretch is a true-run. Whether we start
	//counting at the first or the second stretch depends on the value right
	//after the first border.
	offset := 0
	if !seq[borders[0]] {
		offset = 1
	}
	spans := make([]int, 0, (len(borders)-offset)/2)
	for i := offset; i+1 < len(borders); i += 2 {
		spans = append(spans, borders[i+1]-borders[i])
	}
	return spans
}

//FillSmallGaps flips to true, in place, every false-run of seq that is no
//longer than maxGap frames and that lies strictly between two true-runs.
//Runs touching the sequence boundaries are never filled. The scan is a
//single pass over the borders of the original sequence: true-runs created
//by a merge are not re-checked against maxGap. A maxGap of 0 or less leaves
//seq untouched.
func FillSmallGaps(seq []bool, maxGap int) {
	borders := edges(seq)
	for i := 0; i+1 < len(borders); i++ {
		if borders[i+1]-borders[i] > maxGap {
			continue
		}
		if !seq[borders[i]] {
			for j := borders[i]; j < borders[i+1]; j++ {
				seq[j] = true
			}
		}
	}
}

//DelayTrueSpans extends, in place, the true-coverage of seq into the head
//of every false-run, flipping up to delay frames from the run's start
//(clamped to the end of the sequence). Unlike FillSmallGaps this applies to
//every false-run no matter its length; it fattens every true-span's tail
//rather than merging selected gaps. A delay of 0 or less leaves seq
//untouched. A false-run at the very beginning of seq is not preceded by a
//true-span and is left alone.
func DelayTrueSpans(seq []bool, delay int) {
	borders := append(edges(seq), len(seq))
	for i := 0; i+1 < len(borders); i++ {
		//checked on the live sequence: a run already swallowed by the
		//delay of a preceding run is skipped.
		if seq[borders[i]] {
			continue
		}
		end := borders[i] + delay
		if end > len(seq) {
			end = len(seq)
		}
		for j := borders[i]; j < end; j++ {
			seq[j] = true
		}
	}
}
