/*
 * output.go, part of resacf.
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
	"bufio"
	"fmt"
	"io"
	"os"
)

//WriteACFTo writes the result of an ACF calculation to w as a
//whitespace-delimited text table with one row per frame and three columns:
//physical time, mean ACF and ACF standard deviation.
func WriteACFTo(w io.Writer, t, acf, std []float64) error {
	if len(t) != len(acf) || len(t) != len(std) {
		return CError{fmt.Sprintf("Result columns have mismatched lengths: %d, %d, %d", len(t), len(acf), len(std)), []string{"WriteACFTo"}}
	}
	bw := bufio.NewWriter(w)
	for i := range t {
		_, err := fmt.Fprintf(bw, "%.18e %.18e %.18e\n", t[i], acf[i], std[i])
		if err != nil {
			return CError{err.Error(), []string{"WriteACFTo"}}
		}
	}
	if err := bw.Flush(); err != nil {
		return CError{err.Error(), []string{"WriteACFTo"}}
	}
	return nil
}

//WriteACF writes the result of an ACF calculation to the file name, in the
//format described in WriteACFTo. An existing file is truncated.
func WriteACF(name string, t, acf, std []float64) error {
	f, err := os.Create(name)
	if err != nil {
		return CError{err.Error(), []string{"WriteACF"}}
	}
	defer f.Close()
	err = WriteACFTo(f, t, acf, std)
	if err != nil {
		return errDecorate(err, "WriteACF")
	}
	return nil
}
