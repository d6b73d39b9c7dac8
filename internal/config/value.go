package config

import (
	"encoding/json"
	"math"
	"slices"

	"github.com/hierarchyplus/hierarchy-plus/internal/pattern"
)

// floatTolerance is the distance under which two floats are considered equal
const floatTolerance = 1e-6

// changeSink receives a notification every time a bound value changes
type changeSink interface {
	valueChanged()
}

// binder is implemented by every persisted value so the owning Settings can
// attach its sink after construction or decoding.
type binder interface {
	bind(sink changeSink)
}

// Value is a persisted setting. Writing a different value runs the change
// callback and asks the owning store to save.
type Value[T any] struct {
	value     T
	def       T
	equal     func(a, b T) bool
	onChanged func()
	sink      changeSink
}

// NewValue creates a value whose default and current value are def
func NewValue[T comparable](def T) Value[T] {
	return Value[T]{value: def, def: def, equal: func(a, b T) bool { return a == b }}
}

// NewFloat creates a float value compared with a small tolerance
func NewFloat(def float32) Value[float32] {
	return Value[float32]{value: def, def: def, equal: approxEqual}
}

// NewColor creates a color value
func NewColor(def Color) Value[Color] {
	return Value[Color]{value: def, def: def, equal: Color.Approx}
}

// NewComparisons creates a list value of pattern comparisons
func NewComparisons(def ...pattern.Comparison) Value[[]pattern.Comparison] {
	return Value[[]pattern.Comparison]{
		value: slices.Clone(def),
		def:   slices.Clone(def),
		equal: func(a, b []pattern.Comparison) bool { return slices.Equal(a, b) },
	}
}

// Get returns the current value
func (v *Value[T]) Get() T {
	return v.value
}

// Default returns the value used on reset
func (v *Value[T]) Default() T {
	return v.def
}

// Set stores value. Equal values are ignored.
func (v *Value[T]) Set(value T) {
	if v.equal(v.value, value) {
		return
	}
	v.value = value
	if v.onChanged != nil {
		v.onChanged()
	}
	if v.sink != nil {
		v.sink.valueChanged()
	}
}

// Reset restores the default value
func (v *Value[T]) Reset() {
	v.Set(cloneDefault(v.def))
}

// IsDefault reports whether the current value equals the default
func (v *Value[T]) IsDefault() bool {
	return v.equal(v.value, v.def)
}

// OnChanged registers fn to run after every effective change
func (v *Value[T]) OnChanged(fn func()) {
	v.onChanged = fn
}

func (v *Value[T]) bind(sink changeSink) {
	v.sink = sink
}

// MarshalJSON encodes the current value only
func (v Value[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

// UnmarshalJSON replaces the current value without notifying anyone. A null
// keeps the current value.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	v.value = value
	return nil
}

// Toggle flips a boolean value
func Toggle(v *Value[bool]) {
	v.Set(!v.Get())
}

// cloneDefault copies slice defaults so a reset never aliases them
func cloneDefault[T any](def T) T {
	if list, ok := any(def).([]pattern.Comparison); ok {
		return any(slices.Clone(list)).(T)
	}
	return def
}

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a)-float64(b)) < floatTolerance
}
