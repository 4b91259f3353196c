/*
 * acf.go, part of resacf.
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

import (
	"fmt"
	"runtime"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Options contains the settings for an ACF calculation.
type Options struct {
	end      float64
	maxfalse float64
	nblocks  int
	cpus     int
	outer    bool
	delay    bool
}

//DefaultOptions returns an Options with the default settings. The end time
//has no default and must always be set before computing an ACF.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.end = 0
	ret.maxfalse = 0
	ret.nblocks = 5
	ret.cpus = runtime.NumCPU()
	ret.outer = false
	ret.delay = false
	return ret
}

//End returns the time of the last frame to consider in the calculation
//and sets it to the given value, if a valid (positive) one is given.
func (r *Options) End(end ...float64) float64 {
	ret := r.end
	if len(end) > 0 && end[0] > 0 {
		r.end = end[0]
	}
	return ret
}

//MaxFalse returns the maximum physical-time length of a non-selection
//stretch to be treated as flicker, and sets it, if a non-negative value is
//given. Zero disables gap handling.
func (r *Options) MaxFalse(maxfalse ...float64) float64 {
	ret := r.maxfalse
	if len(maxfalse) > 0 && maxfalse[0] >= 0 {
		r.maxfalse = maxfalse[0]
	}
	return ret
}

//NBlocks returns the number of blocks used for block averaging and sets
//it, if a valid value is given.
func (r *Options) NBlocks(nblocks ...int) int {
	ret := r.nblocks
	if len(nblocks) > 0 && nblocks[0] > 0 {
		r.nblocks = nblocks[0]
	}
	return ret
}

//Cpus returns the current value of the Cpus option (the number of
//goroutines to use in the concurrent calculation) and sets it, if a valid
//value is given.
func (r *Options) Cpus(cpus ...int) int {
	ret := r.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		r.cpus = cpus[0]
	}
	return ret
}

//OuterSpans returns whether spans touching the beginning or the end of the
//series are counted, and sets the value to the one given, if any.
func (r *Options) OuterSpans(outer ...bool) bool {
	ret := r.outer
	if len(outer) > 0 {
		r.outer = outer[0]
	}
	return ret
}

//Delay returns whether gap handling delays every true-span onset instead
//of filling small gaps, and sets the value to the one given, if any.
func (r *Options) Delay(delay ...bool) bool {
	ret := r.delay
	if len(delay) > 0 {
		r.delay = delay[0]
	}
	return ret
}

//AccumulateSpans adds to acf the unnormalized autocorrelation contribution
//of each given span: a span of length L contains L-lag (time-origin, lag)
//pairs for every lag below L, so L-t[i] is added to the first L elements
//of acf. t is the integer frame-index grid, aligned with acf. Entries of
//acf at or past L get no contribution from that span. The operation is
//purely additive, so spans can be given in any order.
func AccumulateSpans(t, acf []float64, spanLengths []int) {
	for _, l := range spanLengths {
		top := l
		if top > len(acf) {
			top = len(acf)
		}
		for i := 0; i < top; i++ {
			acf[i] += float64(l) - t[i]
		}
	}
}

//ACF computes the block-averaged residence-time autocorrelation function
//of the given selection data. It returns the physical times, the ACF
//averaged over the blocks, and the cross-block (population) standard
//deviation of the ACF, all aligned. The end time of the given Options (or
//of the defaults, if none is given) must have been set.
func ACF(data Selection, options ...*Options) ([]float64, []float64, []float64, error) {
	var o *Options
	if len(options) > 0 {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	nrows, maxfalsespan, dt, atoms, err := prepare(data, o)
	if err != nil {
		return nil, nil, nil, errDecorate(err, "ACF")
	}
	tgrid := indexGrid(nrows)
	blocks := make([][]float64, o.nblocks)
	for b := 0; b < o.nblocks; b++ {
		blocks[b], err = blockACF(data, atoms, tgrid, nrows, maxfalsespan, b, o)
		if err != nil {
			return nil, nil, nil, errDecorate(err, "ACF")
		}
	}
	mean, std := blockStats(blocks, nrows)
	floats.Scale(dt, tgrid)
	return tgrid, mean, std, nil
}

//ConcACF is the concurrent version of ACF. It processes each block in its
//own goroutine; blocks share only the read-only selection data, so no
//synchronization beyond the final join is needed. The result is identical
//to the one of ACF.
func ConcACF(data Selection, options ...*Options) ([]float64, []float64, []float64, error) {
	var o *Options
	if len(options) > 0 {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	nrows, maxfalsespan, dt, atoms, err := prepare(data, o)
	if err != nil {
		return nil, nil, nil, errDecorate(err, "ConcACF")
	}
	tgrid := indexGrid(nrows)
	//at most cpus blocks are processed at the same time
	tokens := make(chan struct{}, o.cpus)
	results := make([]chan blockResult, o.nblocks)
	for b := 0; b < o.nblocks; b++ {
		results[b] = make(chan blockResult, 1)
		tokens <- struct{}{}
		go unitACF(data, atoms, tgrid, nrows, maxfalsespan, b, o, results[b], tokens)
	}
	blocks := make([][]float64, o.nblocks)
	//The channels are sorted by block, so iterating with a for gives us the
	//per-block ACFs in the right order (not that the order matters for the
	//statistics).
	for b, k := range results {
		res := <-k
		if res.err != nil {
			err = res.err //we keep draining the channels so no goroutine leaks.
			continue
		}
		blocks[b] = res.acf
	}
	if err != nil {
		return nil, nil, nil, errDecorate(err, "ConcACF")
	}
	mean, std := blockStats(blocks, nrows)
	floats.Scale(dt, tgrid)
	return tgrid, mean, std, nil
}

type blockResult struct {
	acf []float64
	err error
}

//The worker function for the concurrent ACF.
func unitACF(data Selection, atoms []uint32, tgrid []float64, nrows, maxfalsespan, block int, o *Options, out chan blockResult, tokens chan struct{}) {
	acf, err := blockACF(data, atoms, tgrid, nrows, maxfalsespan, block, o)
	<-tokens
	out <- blockResult{acf: acf, err: err}
}

//prepare validates the input, derives the frame-count cutoff and the gap
//threshold in frames from the physical-time settings, and enumerates the
//distinct atom identifiers of the truncated table in first-appearance
//order.
func prepare(data Selection, o *Options) (int, int, float64, []uint32, error) {
	if data == nil {
		return 0, 0, 0, nil, CError{ErrNilSelection, []string{"prepare"}}
	}
	nframes := data.NFrames()
	if nframes < 2 {
		return 0, 0, 0, nil, CError{ErrTooFewFrames, []string{"prepare"}}
	}
	if o.end <= 0 {
		return 0, 0, 0, nil, CError{ErrNoEndTime, []string{"prepare"}}
	}
	dt := (data.Time(nframes-1) - data.Time(0)) / float64(nframes-1)
	if dt <= 0 {
		return 0, 0, 0, nil, CError{fmt.Sprintf("Non-positive time step %f between frames", dt), []string{"prepare"}}
	}
	nrows := int(o.end / dt)
	if nrows > nframes {
		nrows = nframes
	}
	if nrows < 1 {
		return 0, 0, 0, nil, CError{ErrNoFramesInCut, []string{"prepare"}}
	}
	maxfalsespan := int(o.maxfalse / dt)
	atoms := uniqueAtoms(data, nrows)
	return nrows, maxfalsespan, dt, atoms, nil
}

//uniqueAtoms returns the distinct atom identifiers found in the first
//nrows frames, in order of first appearance (scanning frame by frame).
func uniqueAtoms(data Selection, nrows int) []uint32 {
	seen := make(map[uint32]bool)
	ret := make([]uint32, 0, 100)
	for i := 0; i < nrows; i++ {
		for _, id := range data.Selected(i) {
			if !seen[id] {
				seen[id] = true
				ret = append(ret, id)
			}
		}
	}
	return ret
}

//blockACF computes the normalized ACF of one block. The block gets every
//nblocks-th atom of the deduplicated listing, starting at the block index.
func blockACF(data Selection, atoms []uint32, tgrid []float64, nrows, maxfalsespan, block int, o *Options) ([]float64, error) {
	acf := make([]float64, nrows)
	norm := 0
	sel := make([]bool, nrows)
	for ai := block; ai < len(atoms); ai += o.nblocks {
		atom := atoms[ai]
		//selection status for every frame
		for i := 0; i < nrows; i++ {
			sel[i] = false
			for _, id := range data.Selected(i) {
				if id == atom {
					sel[i] = true
					break
				}
			}
		}
		if maxfalsespan > 0 {
			if o.delay {
				DelayTrueSpans(sel, maxfalsespan)
			} else {
				FillSmallGaps(sel, maxfalsespan)
			}
		}
		spans := TrueSpanLengths(sel, o.outer)
		for _, l := range spans {
			norm += l
		}
		AccumulateSpans(tgrid, acf, spans)
	}
	if norm == 0 {
		return nil, zeroNormError{block: block, deco: []string{"blockACF"}}
	}
	floats.Scale(1/float64(norm), acf)
	return acf, nil
}

//blockStats reduces the per-block ACFs to their elementwise mean and
//population standard deviation (i.e. divided by the number of blocks, with
//no bias correction, as block averaging reports the spread of the block
//estimates themselves).
func blockStats(blocks [][]float64, nrows int) ([]float64, []float64) {
	mean := make([]float64, nrows)
	std := make([]float64, nrows)
	col := make([]float64, len(blocks))
	for i := 0; i < nrows; i++ {
		for b, acf := range blocks {
			col[b] = acf[i]
		}
		mean[i] = stat.Mean(col, nil)
		std[i] = stat.PopStdDev(col, nil)
	}
	return mean, std
}

//indexGrid returns the integer frame-index time grid 0..n-1 as floats.
func indexGrid(n int) []float64 {
	ret := make([]float64, n)
	for i := range ret {
		ret[i] = float64(i)
	}
	return ret
}
