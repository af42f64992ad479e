package scriptbench

import (
	"testing"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"clickorbs/clickorbs"
)

// Compares the hitpoints orb rule in compiled code against the same rule
// in a script plugin, which is what a script would pay per orb script
// event.

const scriptSrc = `
package main

func Decide(block, debilitated bool) (hidden, noClickThrough bool) {
	if block {
		return false, true
	}
	return !debilitated, debilitated
}
`

type decideFunc func(block, debilitated bool) (bool, bool)

func loadDecide(tb testing.TB) decideFunc {
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		tb.Fatalf("use: %v", err)
	}
	if _, err := i.Eval(scriptSrc); err != nil {
		tb.Fatalf("eval: %v", err)
	}
	v, err := i.Eval("main.Decide")
	if err != nil {
		tb.Fatalf("lookup: %v", err)
	}
	return v.Interface().(func(bool, bool) (bool, bool))
}

func BenchmarkNativeOrbFlags(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = clickorbs.HitpointsOrbFlags(i%2 == 0, i%3 == 0)
	}
}

func BenchmarkInterpretedOrbFlags(b *testing.B) {
	decide := loadDecide(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = decide(i%2 == 0, i%3 == 0)
	}
}

func TestInterpretedMatchesNative(t *testing.T) {
	decide := loadDecide(t)
	for _, block := range []bool{false, true} {
		for _, debilitated := range []bool{false, true} {
			want := clickorbs.HitpointsOrbFlags(block, debilitated)
			hidden, nct := decide(block, debilitated)
			got := clickorbs.Flags{Hidden: hidden, NoClickThrough: nct}
			if got != want {
				t.Errorf("block=%v debilitated=%v: script %+v, compiled %+v", block, debilitated, got, want)
			}
		}
	}
}
