package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitArithmetic(t *testing.T) {
	zero, one := Bit{}.Zero(), Bit{}.One()

	tests := []struct {
		x, y         Bit
		sum, product Bit
	}{
		{zero, zero, zero, zero},
		{zero, one, one, zero},
		{one, zero, one, zero},
		{one, one, zero, one},
	}
	for _, tt := range tests {
		t.Run(tt.x.String()+tt.y.String(), func(t *testing.T) {
			assert.Equal(t, tt.sum, tt.x.Add(tt.y))
			assert.Equal(t, tt.sum, tt.x.Sub(tt.y))
			assert.Equal(t, tt.product, tt.x.Mul(tt.y))
			assert.Equal(t, tt.product, tt.x.And(tt.y))
		})
	}
}

func TestBitIdentities(t *testing.T) {
	assert.True(t, Bit{}.IsZero())
	assert.True(t, Bit{}.Zero().IsZero())
	assert.False(t, Bit{}.One().IsZero())
	assert.True(t, NewBit(true).Equal(Bit{}.One()))
	assert.Equal(t, NewBit(true), NewBit(true).Neg())
}

func TestBitDiv(t *testing.T) {
	one := NewBit(true)
	assert.Equal(t, one, one.Div(one))
	assert.Equal(t, NewBit(false), NewBit(false).Div(one))
	assert.PanicsWithValue(t, ErrDivisionByZero, func() { one.Div(NewBit(false)) })
}

func TestBitsOf(t *testing.T) {
	assert.Equal(t, []Bit{{false}}, BitsOf(0))
	assert.Equal(t, []Bit{{true}}, BitsOf(1))
	assert.Equal(t, []Bit{{false}, {true}, {true}}, BitsOf(6))

	bits := BitsOf(285)
	assert.Len(t, bits, 9)
	for i, expected := range []bool{true, false, true, true, true, false, false, false, true} {
		assert.Equal(t, expected, bits[i].Bool(), "bit %d", i)
	}
}
