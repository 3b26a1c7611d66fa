// SPDX-License-Identifier: MIT
package types

import (
	"reflect"
	"testing"
)

func TestStringSlice_LocateRun(t *testing.T) {
	type args struct {
		val string
		n   int
	}

	tests := []struct {
		name string
		sl   StringSlice
		args args
		want int
	}{
		{name: "pair", sl: StringSlice{"a", "/", "/", "b"}, args: args{"/", 2}, want: 1},
		{name: "broken pair", sl: StringSlice{"/", "a", "/"}, args: args{"/", 2}, want: -1},
		{name: "first run", sl: StringSlice{"/", "/", "/", "/"}, args: args{"/", 2}, want: 0},
		{name: "single", sl: StringSlice{"x", "/"}, args: args{"/", 1}, want: 1},
		{name: "invalid length", sl: StringSlice{"/"}, args: args{"/", 0}, want: -1},
		{name: "empty", sl: StringSlice{}, args: args{"/", 2}, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sl.LocateRun(tt.args.val, tt.args.n); got != tt.want {
				t.Errorf("StringSlice.LocateRun() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStringSlice_Truncate(t *testing.T) {
	tests := []struct {
		name  string
		sl    StringSlice
		index int
		want  StringSlice
	}{
		{name: "middle", sl: StringSlice{"a", "b", "c"}, index: 1, want: StringSlice{"a"}},
		{name: "start", sl: StringSlice{"a", "b"}, index: 0, want: StringSlice{}},
		{name: "negative", sl: StringSlice{"a"}, index: -1, want: StringSlice{"a"}},
		{name: "out of range", sl: StringSlice{"a"}, index: 3, want: StringSlice{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.sl.Truncate(tt.index)
			if !reflect.DeepEqual(tt.sl, tt.want) {
				t.Errorf("StringSlice.Truncate() = %v, want %v", tt.sl, tt.want)
			}
		})
	}
}

func TestStringSlice_Locate(t *testing.T) {
	sl := StringSlice{"a", "b", "a"}

	if got := sl.Locate("a"); got != 0 {
		t.Errorf("StringSlice.Locate() = %v, want 0", got)
	}
	if got := sl.Locate("z"); got != -1 {
		t.Errorf("StringSlice.Locate() = %v, want -1", got)
	}
	if got := sl.String(); got != "[a b a]" {
		t.Errorf("StringSlice.String() = %v, want [a b a]", got)
	}
	if !sl.Equal(StringSlice{"a", "b", "a"}) || sl.Equal(StringSlice{"a"}) {
		t.Errorf("StringSlice.Equal() mismatch for %v", sl)
	}
}
