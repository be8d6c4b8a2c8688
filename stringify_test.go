package logos_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/aretw0/logos"
	"github.com/stretchr/testify/assert"
)

func TestStringify(t *testing.T) {
	n := 42
	var nilPtr *int

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"String", "plain text", "plain text"},
		{"Empty", "", ""},
		{"Bytes", []byte("raw"), "raw"},
		{"Runes", []rune("héllo"), "héllo"},
		{"Nil", nil, "null"},
		{"True", true, "true"},
		{"False", false, "false"},
		{"Int", -17, "-17"},
		{"Uint64", uint64(18446744073709551615), "18446744073709551615"},
		{"Float", 3.14, "3.14"},
		{"WholeFloat", 65.0, "65"},
		{"SmallFloat", 0.000001, "0.000001"},
		{"TinyFloat", 1.5e-7, "1.5e-7"},
		{"LargeFloat", 1e21, "1e+21"},
		{"BelowExponent", 123456789012345680000.0, "123456789012345680000"},
		{"NegativeZero", math.Copysign(0, -1), "0"},
		{"NaN", math.NaN(), "NaN"},
		{"Infinity", math.Inf(1), "Infinity"},
		{"NegInfinity", math.Inf(-1), "-Infinity"},
		{"Float32", float32(0.1), "0.1"},
		{"JSONNumber", json.Number("1.50"), "1.50"},
		{"Error", errors.New("boom"), "boom"},
		{"Stringer", 90 * time.Second, "1m30s"},
		{"Pointer", &n, "42"},
		{"NilPointer", nilPtr, "null"},
		{"Slice", []any{1, "a", nil, true}, "1,a,,true"},
		{"Nested", []any{1, []int{2, 3}}, "1,2,3"},
		{"Array", [2]float64{0.5, 2}, "0.5,2"},
		{"Map", map[string]int{"b": 2, "a": 1}, "map[a:1 b:2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logos.Stringify(tt.in))
		})
	}
}

func TestProcessValue(t *testing.T) {
	assert.Equal(t, logos.Process("65"), logos.ProcessValue(65))
	assert.Equal(t, logos.Process("true"), logos.ProcessValue(true))
	assert.Equal(t, logos.Process("A"), logos.ProcessValue([]byte("A")))
}
