// Package heapdebug is tooling layered on top of the collector for
// inspecting a running heap: human-readable size reports, an intrusive
// object-list validator, and a lockable snapshot dump. None of it sits on
// the hot allocate/collect path described in spec §4; it exists for
// operators and tests.
package heapdebug

import (
	"fmt"

	"github.com/inhies/go-bytesize"

	"github.com/typepy-lang/runtime/gc"
	"github.com/typepy-lang/runtime/object"
)

// Report is a human-readable summary of the runtime state of §4.6.
type Report struct {
	CurrentSpace   bytesize.ByteSize
	ThresholdSpace bytesize.ByteSize
	ObjectCount    int
}

// CurrentReport snapshots the live gc package state into a Report,
// converting allocation-unit counts into bytes.
func CurrentReport() Report {
	count := 0
	for o := gc.Head(); o != nil; o = o.Next {
		count++
	}
	return Report{
		CurrentSpace:   bytesize.New(float64(gc.CurrentSpace() * object.AllocUnitSize)),
		ThresholdSpace: bytesize.New(float64(gc.ThresholdSpace() * object.AllocUnitSize)),
		ObjectCount:    count,
	}
}

// String renders the report the way an operator would want it logged.
func (r Report) String() string {
	return fmt.Sprintf("heap: %s used / %s threshold across %d objects", r.CurrentSpace, r.ThresholdSpace, r.ObjectCount)
}
