/*
 * acfplot.go, part of resacf.
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

//Package acfplot draws residence-time autocorrelation functions, with
//their block-averaging error bars, to PNG files.
package acfplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//acfPoints adapts an ACF result to the plotter interfaces. The standard
//deviation is drawn as a symmetric Y error.
type acfPoints struct {
	t, acf, std []float64
}

func (a acfPoints) Len() int { return len(a.t) }

func (a acfPoints) XY(i int) (float64, float64) { return a.t[i], a.acf[i] }

func (a acfPoints) YError(i int) (float64, float64) { return a.std[i], a.std[i] }

func basicACFPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "t"
	p.Y.Label.Text = "ACF"
	//The normalized ACF starts at its maximum and decays, so a fixed lower
	//bound keeps plots comparable.
	p.Y.Min = 0
	p.Add(plotter.NewGrid())
	return p
}

//ACFPlot plots the given ACF against time, with one error bar per frame,
//and saves it as plotname.png. The three slices must be aligned.
func ACFPlot(t, acf, std []float64, title, plotname string) error {
	if t == nil || acf == nil || std == nil {
		panic("Given nil data")
	}
	if len(t) != len(acf) || len(t) != len(std) {
		return fmt.Errorf("acfplot: mismatched result columns: %d, %d, %d", len(t), len(acf), len(std))
	}
	p := basicACFPlot(title)
	pts := acfPoints{t: t, acf: acf, std: std}
	line, err := plotter.NewLine(plotterXYs(pts))
	if err != nil {
		return err
	}
	p.Add(line)
	bars, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return err
	}
	p.Add(bars)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(14*vg.Centimeter, 10*vg.Centimeter, filename); err != nil {
		return err
	}
	return nil
}

func plotterXYs(a acfPoints) plotter.XYs {
	ret := make(plotter.XYs, a.Len())
	for i := range ret {
		ret[i].X, ret[i].Y = a.XY(i)
	}
	return ret
}
