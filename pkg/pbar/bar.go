// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package pbar

import (
	"github.com/vbauerster/mpb/v8"
)

type Bar interface {
	Incr()
	IncrBy(n int)
	Done()
	Abort()
	SetTotal(total int64)
	SetCurrent(cur int64)
}

type noopBar struct{}

func (b *noopBar) Incr()                {}
func (b *noopBar) IncrBy(n int)         {}
func (b *noopBar) Done()                {}
func (b *noopBar) Abort()               {}
func (b *noopBar) SetTotal(total int64) {}
func (b *noopBar) SetCurrent(cur int64) {}

func NewNoopBar() Bar {
	return &noopBar{}
}

type bar struct {
	b     *mpb.Bar
	total int64
}

func newBar(c *Container, total int64, name string, unit int) *bar {
	c.ensureProgress()
	return &bar{
		b:     c.addBar(total, name, unit),
		total: total,
	}
}

func (b *bar) Incr() {
	b.IncrBy(1)
}

func (b *bar) IncrBy(n int) {
	b.b.IncrBy(n)
	if b.total <= 0 {
		// keep the total just ahead of the count
		b.b.SetTotal(-1, false)
	}
}

func (b *bar) Done() {
	if b.b.IsRunning() {
		b.b.SetTotal(-1, true)
		b.b.Wait()
	}
}

func (b *bar) Abort() {
	if b.b.IsRunning() {
		b.b.Abort(true)
		b.b.Wait()
	}
}

func (b *bar) SetTotal(total int64) {
	b.total = total
	b.b.SetTotal(total, false)
}

func (b *bar) SetCurrent(cur int64) {
	b.b.SetCurrent(cur)
}
