package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestElementType_Size tests byte sizes across all shapes.
func TestElementType_Size(t *testing.T) {
	tests := []struct {
		name string
		elem ElementType
		size int
	}{
		{"float scalar", Scalar(Float32), 4},
		{"double scalar", Scalar(Float64), 8},
		{"byte scalar", Scalar(Uint8), 1},
		{"vector3 float", Vector(Float32, 3), 12},
		{"vector4 double", Vector(Float64, 4), 32},
		{"matrix4x4 float", Matrix(Float32, 4, 4), 64},
		{"matrix3x3 double", Matrix(Float64, 3, 3), 72},
		{"short array", Array(Int16, 3), 6},
		{"weights array", Array(Float32, 4), 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.size, tt.elem.Size())
		})
	}
}

// TestElementType_String tests the display forms used in reports.
func TestElementType_String(t *testing.T) {
	assert.Equal(t, "Float", Scalar(Float32).String())
	assert.Equal(t, "UnsignedInt", Scalar(Uint32).String())
	assert.Equal(t, "Vector3", Vector(Float32, 3).String())
	assert.Equal(t, "Vector4d", Vector(Float64, 4).String())
	assert.Equal(t, "Vector2us", Vector(Uint16, 2).String())
	assert.Equal(t, "Matrix4x4", Matrix(Float32, 4, 4).String())
	assert.Equal(t, "Matrix3x3d", Matrix(Float64, 3, 3).String())
	assert.Equal(t, "Short[3]", Array(Int16, 3).String())
	assert.Equal(t, "UnsignedInt[4]", Array(Uint32, 4).String())
}

// TestElementType_Components tests component counts per shape.
func TestElementType_Components(t *testing.T) {
	assert.Equal(t, 1, Scalar(Float32).Components())
	assert.Equal(t, 3, Vector(Float32, 3).Components())
	assert.Equal(t, 16, Matrix(Float32, 4, 4).Components())
	assert.Equal(t, 4, Array(Uint16, 4).Components())
}

// TestElementType_ArityOnlyForArrays tests that only array shapes report
// an arity.
func TestElementType_ArityOnlyForArrays(t *testing.T) {
	assert.Equal(t, 3, Array(Int16, 3).Arity())
	assert.Equal(t, 0, Scalar(Int16).Arity())
	assert.Equal(t, 0, Vector(Float32, 3).Arity())
	assert.Equal(t, 0, Matrix(Float32, 4, 4).Arity())
}

// TestScalarType_Families tests the signed/unsigned/float classification.
func TestScalarType_Families(t *testing.T) {
	assert.True(t, Float32.IsFloat())
	assert.True(t, Float64.IsFloat())
	assert.False(t, Int32.IsFloat())

	assert.True(t, Int8.IsSigned())
	assert.True(t, Int64.IsSigned())
	assert.False(t, Uint8.IsSigned())

	assert.True(t, Uint16.IsUnsigned())
	assert.True(t, Uint64.IsUnsigned())
	assert.False(t, Float64.IsUnsigned())
}
