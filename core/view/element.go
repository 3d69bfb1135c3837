package view

import "fmt"

// ScalarType identifies the numeric kind of a single element component.
type ScalarType uint8

const (
	// Float32 is a 32-bit IEEE 754 float, displayed as "Float".
	Float32 ScalarType = iota + 1
	// Float64 is a 64-bit IEEE 754 float, displayed as "Double".
	Float64
	// Int8 is a signed 8-bit integer, displayed as "Byte".
	Int8
	// Uint8 is an unsigned 8-bit integer, displayed as "UnsignedByte".
	Uint8
	// Int16 is a signed 16-bit integer, displayed as "Short".
	Int16
	// Uint16 is an unsigned 16-bit integer, displayed as "UnsignedShort".
	Uint16
	// Int32 is a signed 32-bit integer, displayed as "Int".
	Int32
	// Uint32 is an unsigned 32-bit integer, displayed as "UnsignedInt".
	Uint32
	// Int64 is a signed 64-bit integer, displayed as "Long".
	Int64
	// Uint64 is an unsigned 64-bit integer, displayed as "UnsignedLong".
	Uint64
)

// Size returns the byte size of one component, zero for invalid types.
func (t ScalarType) Size() int {
	switch t {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Float32, Int32, Uint32:
		return 4
	case Float64, Int64, Uint64:
		return 8
	}
	return 0
}

// IsFloat reports whether the type is a floating-point kind.
func (t ScalarType) IsFloat() bool {
	return t == Float32 || t == Float64
}

// IsSigned reports whether the type is a signed integer kind.
func (t ScalarType) IsSigned() bool {
	switch t {
	case Int8, Int16, Int32, Int64:
		return true
	}
	return false
}

// IsUnsigned reports whether the type is an unsigned integer kind.
func (t ScalarType) IsUnsigned() bool {
	switch t {
	case Uint8, Uint16, Uint32, Uint64:
		return true
	}
	return false
}

func (t ScalarType) String() string {
	switch t {
	case Float32:
		return "Float"
	case Float64:
		return "Double"
	case Int8:
		return "Byte"
	case Uint8:
		return "UnsignedByte"
	case Int16:
		return "Short"
	case Uint16:
		return "UnsignedShort"
	case Int32:
		return "Int"
	case Uint32:
		return "UnsignedInt"
	case Int64:
		return "Long"
	case Uint64:
		return "UnsignedLong"
	}
	return fmt.Sprintf("ScalarType(%d)", uint8(t))
}

// suffix is the short composite-type suffix, e.g. Vector3 vs Vector3ub.
func (t ScalarType) suffix() string {
	switch t {
	case Float32:
		return ""
	case Float64:
		return "d"
	case Int8:
		return "b"
	case Uint8:
		return "ub"
	case Int16:
		return "s"
	case Uint16:
		return "us"
	case Int32:
		return "i"
	case Uint32:
		return "ui"
	case Int64:
		return "l"
	case Uint64:
		return "ul"
	}
	return "?"
}

// Shape discriminates the element layouts a view can hold.
type Shape uint8

const (
	// ShapeScalar is a single component.
	ShapeScalar Shape = iota
	// ShapeVector is a fixed-rank run of components.
	ShapeVector
	// ShapeMatrix is a fixed-size column-major grid of components.
	ShapeMatrix
	// ShapeArray is a fixed-size array of scalars.
	ShapeArray
)

// ElementType describes the layout of one view element: a scalar, a
// vector of fixed rank, a matrix, or a fixed-size array of scalars.
// Array elements report their arity; the other shapes never do.
type ElementType struct {
	shape  Shape
	scalar ScalarType
	rows   int
	cols   int
	arity  int
}

// Scalar returns the element type of a single component.
func Scalar(t ScalarType) ElementType {
	return ElementType{shape: ShapeScalar, scalar: t}
}

// Vector returns the element type of a rank-component vector.
func Vector(t ScalarType, rank int) ElementType {
	return ElementType{shape: ShapeVector, scalar: t, rows: rank}
}

// Matrix returns the element type of a cols x rows column-major matrix.
func Matrix(t ScalarType, cols, rows int) ElementType {
	return ElementType{shape: ShapeMatrix, scalar: t, cols: cols, rows: rows}
}

// Array returns the element type of a fixed-size array of scalars.
func Array(t ScalarType, arity int) ElementType {
	return ElementType{shape: ShapeArray, scalar: t, arity: arity}
}

// Shape returns the layout discriminator.
func (e ElementType) Shape() Shape {
	return e.shape
}

// ScalarType returns the component type.
func (e ElementType) ScalarType() ScalarType {
	return e.scalar
}

// Rank returns the vector rank, zero for non-vector shapes.
func (e ElementType) Rank() int {
	if e.shape != ShapeVector {
		return 0
	}
	return e.rows
}

// Arity returns the array size, zero for non-array shapes.
func (e ElementType) Arity() int {
	if e.shape != ShapeArray {
		return 0
	}
	return e.arity
}

// Components returns the number of scalar components per element.
func (e ElementType) Components() int {
	switch e.shape {
	case ShapeScalar:
		return 1
	case ShapeVector:
		return e.rows
	case ShapeMatrix:
		return e.cols * e.rows
	case ShapeArray:
		return e.arity
	}
	return 0
}

// Size returns the byte size of one element, zero for invalid types.
func (e ElementType) Size() int {
	return e.scalar.Size() * e.Components()
}

// valid reports whether the type is well-formed and addressable.
func (e ElementType) valid() bool {
	if e.scalar.Size() == 0 {
		return false
	}
	switch e.shape {
	case ShapeScalar:
		return true
	case ShapeVector:
		return e.rows >= 2 && e.rows <= 4
	case ShapeMatrix:
		return e.cols >= 2 && e.cols <= 4 && e.rows >= 2 && e.rows <= 4
	case ShapeArray:
		return e.arity >= 1
	}
	return false
}

// String returns the display form, e.g. "Float", "Vector3", "Matrix4x4d"
// or "Short[3]".
func (e ElementType) String() string {
	switch e.shape {
	case ShapeScalar:
		return e.scalar.String()
	case ShapeVector:
		return fmt.Sprintf("Vector%d%s", e.rows, e.scalar.suffix())
	case ShapeMatrix:
		return fmt.Sprintf("Matrix%dx%d%s", e.cols, e.rows, e.scalar.suffix())
	case ShapeArray:
		return fmt.Sprintf("%s[%d]", e.scalar, e.arity)
	}
	return fmt.Sprintf("ElementType(%d)", uint8(e.shape))
}
