/*
 * main.go, part of resacf.
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

//resacf calculates the residence-time autocorrelation function from a
//selection file generated with gmx select -oi, and writes a table with
//t, acf and acf_std.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mdstat/resacf"
	"github.com/mdstat/resacf/acfplot"
	"github.com/mdstat/resacf/gmxsel"
)

func main() {
	end := flag.Float64("e", 0, "time of last frame to consider (required)")
	maxfalse := flag.Float64("m", 0.0, "maximum time length of non-selection to be ignored")
	nblocks := flag.Int("n", 5, "number of blocks to be used for block averaging")
	outer := flag.Bool("o", false, "consider spans that are at begin or end of file")
	delay := flag.Bool("d", false, "delay all true spans by the -m time instead of filling small false blocks")
	cpus := flag.Int("cpus", 0, "number of blocks to process concurrently (0 takes all logical CPUs)")
	plotname := flag.String("plot", "", "also plot the ACF as the given name plus .png")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] infile outfile\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "infile contains selections for several frames as generated by gmx select -oi\n")
		fmt.Fprintf(flag.CommandLine.Output(), "outfile will contain t, acf, acf_std\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	if *end <= 0 {
		log.Fatal("resacf: the -e flag (time of last frame) is required and must be positive")
	}
	infile := flag.Arg(0)
	outfile := flag.Arg(1)

	log.Printf("Reading selection file `%s`\n", infile)
	table, err := gmxsel.Read(infile)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Read %d frames, up to %d atoms selected per frame\n", table.NFrames(), table.MaxSelected())

	o := resacf.DefaultOptions()
	o.End(*end)
	o.MaxFalse(*maxfalse)
	o.NBlocks(*nblocks)
	o.OuterSpans(*outer)
	o.Delay(*delay)
	if *cpus > 0 {
		o.Cpus(*cpus)
	}

	log.Printf("Doing %d blocks\n", o.NBlocks())
	t, acf, std, err := resacf.ConcACF(table, o)
	if err != nil {
		if zn, ok := err.(resacf.ZeroNormError); ok {
			log.Fatalf("resacf: block %d collected no residence spans. Use fewer blocks, a longer end time or the -o flag: %s", zn.Block(), err.Error())
		}
		log.Fatal(err)
	}
	log.Println("Finished blocks")

	if err := resacf.WriteACF(outfile, t, acf, std); err != nil {
		log.Fatal(err)
	}
	if *plotname != "" {
		if err := acfplot.ACFPlot(t, acf, std, "Residence time ACF", *plotname); err != nil {
			log.Fatal(err)
		}
	}
	log.Println("Done")
}
