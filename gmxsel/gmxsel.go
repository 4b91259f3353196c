/*
 * gmxsel.go, part of resacf.
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

package gmxsel

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/mdstat/resacf"
)

//MaxAtomID is the largest atom identifier the table representation can
//hold. Files with larger identifiers need a wider representation and are
//rejected on reading.
const MaxAtomID uint64 = math.MaxUint32

// Table holds the selection data of a whole index file: one timestamp and
// one list of selected atom identifiers per frame. It fullfills the
// resacf.Selection interface. A Table is immutable after reading.
type Table struct {
	filename string
	times    []float64
	sel      [][]uint32
	maxsel   int
}

//NFrames returns the number of frames in the table.
func (T *Table) NFrames() int {
	return len(T.times)
}

//Time returns the physical time of the i-th frame.
func (T *Table) Time(i int) float64 {
	return T.times[i]
}

//Selected returns the identifiers of the atoms selected at the i-th
//frame. The returned slice must not be modified.
func (T *Table) Selected(i int) []uint32 {
	return T.sel[i]
}

//MaxSelected returns the largest per-frame selection count found in the
//file, i.e. the width of the widest line of the table.
func (T *Table) MaxSelected() int {
	return T.maxsel
}

//FileName returns the name of the file the table was read from.
func (T *Table) FileName() string {
	return T.filename
}

//This will cause an additional indirection but I suppose it won't matter
//for a file that is read once. Why couldn't *zstd.Decoder implement
//io.ReadCloser? :-(
type stdql struct {
	closeql func()
	*zstd.Decoder
}

//Close Closes the object. It can not be used after this call
func (s stdql) Close() error {
	s.closeql()
	return nil
}

//Read opens the index file name, plain or compressed according to its
//extension, and reads the whole selection table from it. If a maxid is
//given, atom identifiers above it are rejected with a capacity error;
//otherwise the cap is MaxAtomID.
func Read(name string, maxid ...uint64) (*Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{message: UnableToOpen + ": " + err.Error(), filename: name, deco: []string{"Read"}, critical: true}
	}
	defer f.Close()
	var AnyNewReader func(io.Reader) (io.ReadCloser, error)
	gzreader := func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	zstdreader := func(a io.Reader) (io.ReadCloser, error) {
		r, err := zstd.NewReader(a)
		if err != nil {
			return nil, err
		}
		return &stdql{r.Close, r}, nil
	}
	plainreader := func(a io.Reader) (io.ReadCloser, error) { return io.NopCloser(a), nil }
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		AnyNewReader = gzreader
	case strings.HasSuffix(lower, ".zst"), strings.HasSuffix(lower, ".zstd"):
		AnyNewReader = zstdreader
	default:
		AnyNewReader = plainreader
	}
	h, err := AnyNewReader(bufio.NewReader(f))
	if err != nil {
		return nil, Error{message: "Can't read compressed data: " + err.Error(), filename: name, deco: []string{"Read"}, critical: true}
	}
	defer h.Close()
	t, err := readTable(h, name, maxid...)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	return t, nil
}

//readTable parses the uncompressed text of an index file.
func readTable(r io.Reader, name string, maxid ...uint64) (*Table, error) {
	idcap := MaxAtomID
	if len(maxid) > 0 && maxid[0] > 0 && maxid[0] < MaxAtomID {
		idcap = maxid[0]
	}
	T := new(Table)
	T.filename = name
	br := bufio.NewReader(r)
	lineno := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, Error{message: ReadError + ": " + err.Error(), filename: name, deco: []string{"readTable"}, critical: true}
		}
		atEOF := err == io.EOF
		lineno++
		fields := strings.Fields(line)
		if len(fields) > 0 {
			if err := T.addFrame(fields, name, lineno, idcap); err != nil {
				return nil, errDecorate(err, "readTable")
			}
		}
		if atEOF {
			break
		}
	}
	if len(T.times) == 0 {
		return nil, Error{message: EmptyFile, filename: name, deco: []string{"readTable"}, critical: true}
	}
	return T, nil
}

//addFrame parses one non-empty line of the table.
func (T *Table) addFrame(fields []string, name string, lineno int, idcap uint64) error {
	if len(fields) < 2 {
		return Error{message: fmt.Sprintf("%s: line %d has %d fields, at least a time and a count are needed", WrongFormat, lineno, len(fields)), filename: name, deco: []string{"addFrame"}, critical: true}
	}
	time, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Error{message: fmt.Sprintf("%s: can't parse time '%s' in line %d: %s", WrongFormat, fields[0], lineno, err.Error()), filename: name, deco: []string{"addFrame"}, critical: true}
	}
	count, err := strconv.Atoi(fields[1])
	if err != nil || count < 0 {
		return Error{message: fmt.Sprintf("%s: can't parse selection count '%s' in line %d", WrongFormat, fields[1], lineno), filename: name, deco: []string{"addFrame"}, critical: true}
	}
	ids := fields[2:]
	if len(ids) != count {
		return Error{message: fmt.Sprintf("%s: line %d declares %d selected atoms but carries %d", WrongFormat, lineno, count, len(ids)), filename: name, deco: []string{"addFrame"}, critical: true}
	}
	sel := make([]uint32, 0, count)
	for _, s := range ids {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Error{message: fmt.Sprintf("%s: can't parse atom id '%s' in line %d: %s", WrongFormat, s, lineno, err.Error()), filename: name, deco: []string{"addFrame"}, critical: true}
		}
		if id > idcap {
			return capacityError{id: id, cap: idcap, filename: name, deco: []string{"addFrame"}}
		}
		sel = append(sel, uint32(id))
	}
	T.times = append(T.times, time)
	T.sel = append(T.sel, sel)
	if count > T.maxsel {
		T.maxsel = count
	}
	return nil
}

//Errors

//errDecorate is a helper function that asserts that the error
//implements resacf.Error and decorates the error with the caller's name before returning it.
//if used with a non-resacf.Error error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(resacf.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for selection-table errors. It fullfills
//resacf.Error and resacf.TableError.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("gmx select file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing table was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file (always "gmxsel") associated to the error
func (err Error) Format() string { return "gmxsel" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen = "Unable to open file"
	ReadError    = "Error reading selection line"
	WrongFormat  = "Wrong format in the selection file"
	EmptyFile    = "Empty selection file"
)

//capacityError fullfills resacf.CapacityError
type capacityError struct {
	id       uint64
	cap      uint64
	filename string
	deco     []string
}

//IDCapacityExceeded does nothing
func (E capacityError) IDCapacityExceeded() {}

func (E capacityError) Error() string {
	return fmt.Sprintf("gmx select file %s error: atom id %d exceeds the representable capacity %d", E.filename, E.id, E.cap)
}

func (E capacityError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}
