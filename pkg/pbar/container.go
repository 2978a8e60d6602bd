// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package pbar

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

const (
	UnitKiB int = decor.UnitKiB
	UnitKB  int = decor.UnitKB
)

// Container groups bars rendered to the same output. A quiet container
// hands out bars that render nothing.
type Container struct {
	p     *mpb.Progress
	out   io.Writer
	quiet bool
}

func NewContainer(out io.Writer, quiet bool) *Container {
	return &Container{
		out:   out,
		quiet: quiet,
	}
}

func (c *Container) ensureProgress() {
	if c.p == nil {
		c.p = mpb.New(mpb.WithOutput(c.out))
	}
}

// NewBar adds a bar. A total of 0 or less means the total is unknown.
func (c *Container) NewBar(total int64, name string, unit int) Bar {
	if c.quiet {
		return &noopBar{}
	}
	return newBar(c, total, name, unit)
}

func (c *Container) addBar(total int64, name string, unit int) *mpb.Bar {
	pairFmt := "%d / %d"
	if unit != 0 {
		pairFmt = "% .2f / % .2f"
	}
	options := []mpb.BarOption{
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DidentRight}),
			decor.Counters(unit, pairFmt),
		),
		mpb.BarRemoveOnComplete(),
	}
	if total > 0 {
		options = append(options,
			mpb.AppendDecorators(decor.Percentage(decor.WC{W: 5, C: decor.DidentRight}), decor.Elapsed(decor.ET_STYLE_GO)),
		)
	} else {
		options = append(options, mpb.AppendDecorators(decor.Elapsed(decor.ET_STYLE_GO)))
	}
	b := c.p.New(total,
		mpb.BarStyle().Lbound("[").Filler("=").Tip(">").Padding(" ").Rbound("]"),
		options...,
	)
	b.EnableTriggerComplete()
	return b
}

// Wait blocks until every bar is done or aborted
func (c *Container) Wait() {
	if c.p == nil {
		return
	}
	c.p.Wait()
	c.p = nil
}
