package vt

import "testing"

func TestParam_ReturnsDefaultWhenMissing(t *testing.T) {
	if got := Param(nil, 0, 7); got != 7 {
		t.Errorf("Param(nil, 0, 7) = %d, want 7", got)
	}
	if got := Param([]int64{1, 2}, 1, 7); got != 2 {
		t.Errorf("Param([1 2], 1, 7) = %d, want 2", got)
	}
}

func TestParamMin1_TreatsZeroAsOne(t *testing.T) {
	if got := ParamMin1([]int64{0}, 0); got != 1 {
		t.Errorf("ParamMin1([0], 0) = %d, want 1", got)
	}
	if got := ParamMin1([]int64{5}, 0); got != 5 {
		t.Errorf("ParamMin1([5], 0) = %d, want 5", got)
	}
	if got := ParamMin1(nil, 0); got != 1 {
		t.Errorf("ParamMin1(nil, 0) = %d, want 1", got)
	}
}

func TestNewPrint_SetsKindAndRune(t *testing.T) {
	ev := NewPrint('x')
	if ev.Kind != Print || ev.Rune != 'x' {
		t.Errorf("NewPrint('x') = %+v, want Kind=Print Rune='x'", ev)
	}
}

func TestNewCsiDispatch_SetsAllFields(t *testing.T) {
	ev := NewCsiDispatch([]int64{1, 2}, []byte("?"), true, 'm')
	if ev.Kind != CsiDispatch || ev.Final != 'm' || !ev.Ignore {
		t.Errorf("NewCsiDispatch = %+v, want Kind=CsiDispatch Final='m' Ignore=true", ev)
	}
	if len(ev.Params) != 2 || ev.Params[0] != 1 || ev.Params[1] != 2 {
		t.Errorf("Params = %v, want [1 2]", ev.Params)
	}
}
