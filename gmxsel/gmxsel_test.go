/*
 * gmxsel_test.go, part of resacf.
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
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/mdstat/resacf"
)

var sample = `0.000 3 5 8 13
10.000 2 5 13
20.000 0
30.000 4 5 8 13 21
`

func writeSample(Te *testing.T, name, content string) string {
	Te.Helper()
	path := filepath.Join(Te.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		Te.Fatal(err)
	}
	return path
}

func checkSample(Te *testing.T, table *Table) {
	Te.Helper()
	if table.NFrames() != 4 {
		Te.Fatalf("got %d frames, want 4", table.NFrames())
	}
	if table.Time(1) != 10.0 || table.Time(3) != 30.0 {
		Te.Errorf("wrong times: %f, %f", table.Time(1), table.Time(3))
	}
	if table.MaxSelected() != 4 {
		Te.Errorf("got max selection %d, want 4", table.MaxSelected())
	}
	if len(table.Selected(2)) != 0 {
		Te.Errorf("frame 2 should have no selected atoms, got %v", table.Selected(2))
	}
	want := []uint32{5, 8, 13, 21}
	got := table.Selected(3)
	if len(got) != len(want) {
		Te.Fatalf("frame 3: got %v, want %v", got, want)
	}
	for i, v := range want {
		if got[i] != v {
			Te.Fatalf("frame 3: got %v, want %v", got, want)
		}
	}
}

func TestRead(Te *testing.T) {
	fmt.Println("Selection file read test!")
	path := writeSample(Te, "sel.dat", sample)
	table, err := Read(path)
	if err != nil {
		Te.Fatal(err)
	}
	checkSample(Te, table)
}

func TestReadGzip(Te *testing.T) {
	fmt.Println("Gzipped selection file read test!")
	path := filepath.Join(Te.TempDir(), "sel.dat.gz")
	f, err := os.Create(path)
	if err != nil {
		Te.Fatal(err)
	}
	w := gzip.NewWriter(f)
	w.Write([]byte(sample))
	w.Close()
	f.Close()
	table, err := Read(path)
	if err != nil {
		Te.Fatal(err)
	}
	checkSample(Te, table)
}

func TestReadZstd(Te *testing.T) {
	fmt.Println("Zstd selection file read test!")
	path := filepath.Join(Te.TempDir(), "sel.dat.zst")
	f, err := os.Create(path)
	if err != nil {
		Te.Fatal(err)
	}
	w, err := zstd.NewWriter(f)
	if err != nil {
		Te.Fatal(err)
	}
	w.Write([]byte(sample))
	w.Close()
	f.Close()
	table, err := Read(path)
	if err != nil {
		Te.Fatal(err)
	}
	checkSample(Te, table)
}

func TestReadErrors(Te *testing.T) {
	fmt.Println("Selection file error test!")
	cases := []struct {
		name    string
		content string
	}{
		{"empty.dat", ""},
		{"onlyblank.dat", "\n\n"},
		{"shortline.dat", "0.0\n"},
		{"badtime.dat", "zero 1 5\n"},
		{"badcount.dat", "0.0 -1\n"},
		{"mismatch.dat", "0.0 3 5 8\n"},
		{"badid.dat", "0.0 2 5 eight\n"},
	}
	for _, c := range cases {
		path := writeSample(Te, c.name, c.content)
		_, err := Read(path)
		if err == nil {
			Te.Errorf("%s: want a parse error, got nil", c.name)
			continue
		}
		if _, ok := err.(resacf.TableError); !ok {
			Te.Errorf("%s: want a TableError, got %T", c.name, err)
		}
	}
	if _, err := Read(filepath.Join(Te.TempDir(), "missing.dat")); err == nil {
		Te.Error("want an error for a missing file, got nil")
	}
}

func TestReadCapacity(Te *testing.T) {
	fmt.Println("Atom id capacity test!")
	path := writeSample(Te, "big.dat", "0.0 1 4294967296\n10.0 0\n")
	_, err := Read(path)
	if err == nil {
		Te.Fatal("want a capacity error, got nil")
	}
	if _, ok := err.(resacf.CapacityError); !ok {
		Te.Errorf("want a CapacityError, got %T: %v", err, err)
	}
	//a caller-provided, stricter cap
	path = writeSample(Te, "small.dat", "0.0 1 20\n10.0 0\n")
	_, err = Read(path, 10)
	if err == nil {
		Te.Fatal("want a capacity error for id 20 with cap 10, got nil")
	}
	if _, ok := err.(resacf.CapacityError); !ok {
		Te.Errorf("want a CapacityError, got %T: %v", err, err)
	}
	if _, err = Read(path, 30); err != nil {
		Te.Errorf("id 20 fits in cap 30, got %v", err)
	}
}

//The table feeds the resacf pipeline directly.
func TestTableACF(Te *testing.T) {
	fmt.Println("Selection table to ACF test!")
	content := ""
	for i := 0; i < 10; i++ {
		content += fmt.Sprintf("%.1f 2 5 8\n", float64(i)*10)
	}
	path := writeSample(Te, "cont.dat", content)
	table, err := Read(path)
	if err != nil {
		Te.Fatal(err)
	}
	o := resacf.DefaultOptions()
	o.End(100.0)
	o.NBlocks(1)
	o.OuterSpans(true)
	t, acf, std, err := resacf.ACF(table, o)
	if err != nil {
		Te.Fatal(err)
	}
	if len(t) != 10 {
		Te.Fatalf("got %d rows, want 10", len(t))
	}
	if acf[0] != 1.0 || std[0] != 0 {
		Te.Errorf("acf[0] = %f (want 1), std[0] = %f (want 0)", acf[0], std[0])
	}
	if t[9] != 90.0 {
		Te.Errorf("t[9] = %f, want 90", t[9])
	}
}
