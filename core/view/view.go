package view

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrTypeMismatch reports a typed access against an incompatible
	// element type. It indicates a broken extraction mapping in the
	// caller, not a recoverable data condition.
	ErrTypeMismatch = errors.New("view: element type mismatch")

	// ErrOutOfBounds reports an access outside a view's element range.
	ErrOutOfBounds = errors.New("view: index out of bounds")
)

// Ownership tags who owns a view's backing memory and whether it may be
// mutated in place. It never affects read semantics.
type Ownership uint8

const (
	// Owned memory belongs to the view and goes away with it.
	Owned Ownership = iota
	// BorrowedImmutable memory belongs to the caller and must not be
	// written through the view.
	BorrowedImmutable
	// BorrowedMutable memory belongs to the caller and may be written
	// in place.
	BorrowedMutable
)

func (o Ownership) String() string {
	switch o {
	case Owned:
		return "owned"
	case BorrowedImmutable:
		return "borrowed-immutable"
	case BorrowedMutable:
		return "borrowed-mutable"
	}
	return fmt.Sprintf("Ownership(%d)", uint8(o))
}

// View is a type-erased, possibly strided run of elements over raw
// little-endian bytes. It describes data without interpreting it; every
// typed access is kind- and bounds-checked at the access site.
//
// Element i starts at byte offset i*stride. A zero stride repeats
// element zero for every index (broadcast); broadcast views are legal
// as table mappings only, never as data.
type View struct {
	elem      ElementType
	data      []byte
	count     int
	stride    int
	ownership Ownership
}

// Borrow wraps caller-owned memory without copying. The memory must stay
// valid and unchanged for as long as the view is read; mutable selects
// the BorrowedMutable tag. The stride is in bytes and must be zero
// (broadcast) or at least one element size.
func Borrow(elem ElementType, data []byte, count, stride int, mutable bool) (View, error) {
	own := BorrowedImmutable
	if mutable {
		own = BorrowedMutable
	}
	v := View{elem: elem, data: data, count: count, stride: stride, ownership: own}
	if err := v.validate(); err != nil {
		return View{}, err
	}
	return v, nil
}

// Own wraps memory the view takes ownership of, typically bytes decoded
// from an embedded payload. Layout rules match Borrow.
func Own(elem ElementType, data []byte, count, stride int) (View, error) {
	v := View{elem: elem, data: data, count: count, stride: stride, ownership: Owned}
	if err := v.validate(); err != nil {
		return View{}, err
	}
	return v, nil
}

// PackUints returns an owned packed view of the given element type,
// filling components from vals in element order. The element's scalar
// type must be unsigned and len(vals) a multiple of its component count.
func PackUints(elem ElementType, vals ...uint64) (View, error) {
	if !elem.scalar.IsUnsigned() {
		return View{}, fmt.Errorf("%w: packing unsigned values into %s", ErrTypeMismatch, elem)
	}
	return pack(elem, len(vals), func(data []byte, i int) {
		putUint(data, elem.scalar, vals[i])
	})
}

// PackInts returns an owned packed view of the given element type. The
// element's scalar type must be signed.
func PackInts(elem ElementType, vals ...int64) (View, error) {
	if !elem.scalar.IsSigned() {
		return View{}, fmt.Errorf("%w: packing signed values into %s", ErrTypeMismatch, elem)
	}
	return pack(elem, len(vals), func(data []byte, i int) {
		putUint(data, elem.scalar, uint64(vals[i]))
	})
}

// PackFloats returns an owned packed view of the given element type. The
// element's scalar type must be a float kind.
func PackFloats(elem ElementType, vals ...float64) (View, error) {
	if !elem.scalar.IsFloat() {
		return View{}, fmt.Errorf("%w: packing float values into %s", ErrTypeMismatch, elem)
	}
	return pack(elem, len(vals), func(data []byte, i int) {
		if elem.scalar == Float32 {
			binary.LittleEndian.PutUint32(data, math.Float32bits(float32(vals[i])))
		} else {
			binary.LittleEndian.PutUint64(data, math.Float64bits(vals[i]))
		}
	})
}

// pack allocates packed storage for n components and fills it with put.
func pack(elem ElementType, n int, put func(data []byte, i int)) (View, error) {
	if !elem.valid() {
		return View{}, fmt.Errorf("view: invalid element type %s", elem)
	}
	comps := elem.Components()
	if n%comps != 0 {
		return View{}, fmt.Errorf("view: %d components do not fill %s elements evenly", n, elem)
	}
	size := elem.scalar.Size()
	data := make([]byte, n*size)
	for i := 0; i < n; i++ {
		put(data[i*size:], i)
	}
	return View{elem: elem, data: data, count: n / comps, stride: elem.Size(), ownership: Owned}, nil
}

// PackString returns an owned single-element view holding s as an
// unsigned byte array. Sources with textual attribute values (layer
// names, string extras) store them this way.
func PackString(s string) (View, error) {
	if s == "" {
		return View{}, fmt.Errorf("view: cannot pack an empty string")
	}
	data := []byte(s)
	return View{elem: Array(Uint8, len(data)), data: data, count: 1, stride: len(data), ownership: Owned}, nil
}

// Text returns element i of an unsigned byte array view decoded as a
// string.
func (v View) Text(i int) (string, error) {
	if v.elem.shape != ShapeArray || v.elem.scalar != Uint8 {
		return "", fmt.Errorf("%w: text access on %s view", ErrTypeMismatch, v.elem)
	}
	if i < 0 || i >= v.count {
		return "", fmt.Errorf("%w: element %d of %d", ErrOutOfBounds, i, v.count)
	}
	off := i * v.stride
	return string(v.data[off : off+v.elem.arity]), nil
}

// BroadcastUint returns an owned zero-stride view repeating one unsigned
// scalar value count times. Broadcast views are legal as mappings only.
func BroadcastUint(t ScalarType, value uint64, count int) (View, error) {
	if !t.IsUnsigned() {
		return View{}, fmt.Errorf("%w: broadcasting unsigned value as %s", ErrTypeMismatch, Scalar(t))
	}
	if count < 0 {
		return View{}, fmt.Errorf("view: negative count %d", count)
	}
	data := make([]byte, t.Size())
	putUint(data, t, value)
	return View{elem: Scalar(t), data: data, count: count, stride: 0, ownership: Owned}, nil
}

// IdentityMapping returns an owned ordered mapping view holding
// 0, 1, ..., count-1 as unsigned ints.
func IdentityMapping(count int) View {
	if count < 0 {
		count = 0
	}
	data := make([]byte, count*4)
	for i := 0; i < count; i++ {
		binary.LittleEndian.PutUint32(data[i*4:], uint32(i))
	}
	return View{elem: Scalar(Uint32), data: data, count: count, stride: 4, ownership: Owned}
}

func (v View) validate() error {
	if !v.elem.valid() {
		return fmt.Errorf("view: invalid element type %s", v.elem)
	}
	if v.count < 0 {
		return fmt.Errorf("view: negative count %d", v.count)
	}
	size := v.elem.Size()
	if v.stride != 0 && v.stride < size {
		return fmt.Errorf("view: stride %d smaller than %s element size %d", v.stride, v.elem, size)
	}
	if v.count == 0 {
		return nil
	}
	need := (v.count-1)*v.stride + size
	if need > len(v.data) {
		return fmt.Errorf("view: %d elements of %s with stride %d need %d bytes, have %d",
			v.count, v.elem, v.stride, need, len(v.data))
	}
	return nil
}

// Type returns the element type.
func (v View) Type() ElementType {
	return v.elem
}

// Count returns the number of elements.
func (v View) Count() int {
	return v.count
}

// Stride returns the distance between consecutive elements in bytes.
func (v View) Stride() int {
	return v.stride
}

// Ownership returns the memory policy tag.
func (v View) Ownership() Ownership {
	return v.ownership
}

// Broadcast reports whether the view repeats a single element.
func (v View) Broadcast() bool {
	return v.stride == 0 && v.count > 1
}

// Uint returns scalar element i of an unsigned-integer view.
func (v View) Uint(i int) (uint64, error) {
	if v.elem.shape != ShapeScalar || !v.elem.scalar.IsUnsigned() {
		return 0, fmt.Errorf("%w: unsigned access on %s view", ErrTypeMismatch, v.elem)
	}
	if i < 0 || i >= v.count {
		return 0, fmt.Errorf("%w: element %d of %d", ErrOutOfBounds, i, v.count)
	}
	return v.rawUint(i*v.stride, v.elem.scalar), nil
}

// Int returns scalar element i of a signed-integer view.
func (v View) Int(i int) (int64, error) {
	if v.elem.shape != ShapeScalar || !v.elem.scalar.IsSigned() {
		return 0, fmt.Errorf("%w: signed access on %s view", ErrTypeMismatch, v.elem)
	}
	if i < 0 || i >= v.count {
		return 0, fmt.Errorf("%w: element %d of %d", ErrOutOfBounds, i, v.count)
	}
	return v.rawInt(i*v.stride, v.elem.scalar), nil
}

// Float returns scalar element i of a float view.
func (v View) Float(i int) (float64, error) {
	if v.elem.shape != ShapeScalar || !v.elem.scalar.IsFloat() {
		return 0, fmt.Errorf("%w: float access on %s view", ErrTypeMismatch, v.elem)
	}
	if i < 0 || i >= v.count {
		return 0, fmt.Errorf("%w: element %d of %d", ErrOutOfBounds, i, v.count)
	}
	return v.rawFloat(i*v.stride, v.elem.scalar), nil
}

// Index returns scalar element i of any integer view as a signed index.
// Reference-like fields use it to read values whose signedness varies by
// source.
func (v View) Index(i int) (int64, error) {
	if v.elem.shape != ShapeScalar || v.elem.scalar.IsFloat() {
		return 0, fmt.Errorf("%w: index access on %s view", ErrTypeMismatch, v.elem)
	}
	if i < 0 || i >= v.count {
		return 0, fmt.Errorf("%w: element %d of %d", ErrOutOfBounds, i, v.count)
	}
	if v.elem.scalar.IsSigned() {
		return v.rawInt(i*v.stride, v.elem.scalar), nil
	}
	return int64(v.rawUint(i*v.stride, v.elem.scalar)), nil
}

// Component returns component c of element i converted to float64,
// accepting any element shape and scalar kind.
func (v View) Component(i, c int) (float64, error) {
	if i < 0 || i >= v.count {
		return 0, fmt.Errorf("%w: element %d of %d", ErrOutOfBounds, i, v.count)
	}
	if c < 0 || c >= v.elem.Components() {
		return 0, fmt.Errorf("%w: component %d of %d", ErrOutOfBounds, c, v.elem.Components())
	}
	off := i*v.stride + c*v.elem.scalar.Size()
	switch {
	case v.elem.scalar.IsFloat():
		return v.rawFloat(off, v.elem.scalar), nil
	case v.elem.scalar.IsSigned():
		return float64(v.rawInt(off, v.elem.scalar)), nil
	default:
		return float64(v.rawUint(off, v.elem.scalar)), nil
	}
}

func (v View) rawUint(off int, t ScalarType) uint64 {
	switch t.Size() {
	case 1:
		return uint64(v.data[off])
	case 2:
		return uint64(binary.LittleEndian.Uint16(v.data[off:]))
	case 4:
		return uint64(binary.LittleEndian.Uint32(v.data[off:]))
	default:
		return binary.LittleEndian.Uint64(v.data[off:])
	}
}

func (v View) rawInt(off int, t ScalarType) int64 {
	switch t.Size() {
	case 1:
		return int64(int8(v.data[off]))
	case 2:
		return int64(int16(binary.LittleEndian.Uint16(v.data[off:])))
	case 4:
		return int64(int32(binary.LittleEndian.Uint32(v.data[off:])))
	default:
		return int64(binary.LittleEndian.Uint64(v.data[off:]))
	}
}

func (v View) rawFloat(off int, t ScalarType) float64 {
	if t == Float32 {
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(v.data[off:])))
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(v.data[off:]))
}

// putUint writes one integer component of the given scalar type.
func putUint(data []byte, t ScalarType, value uint64) {
	switch t.Size() {
	case 1:
		data[0] = byte(value)
	case 2:
		binary.LittleEndian.PutUint16(data, uint16(value))
	case 4:
		binary.LittleEndian.PutUint32(data, uint32(value))
	default:
		binary.LittleEndian.PutUint64(data, value)
	}
}
