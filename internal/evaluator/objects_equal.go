package evaluator

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
)

// ValuesEqual performs a deep equality check between two values.
// Closures are equal only to themselves.
func ValuesEqual(a, b Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type() != b.Type() {
		return false
	}

	switch aVal := a.(type) {
	case *Integer:
		return aVal.Value == b.(*Integer).Value
	case *String:
		return aVal.Value == b.(*String).Value
	case *Boolean:
		return aVal.Value == b.(*Boolean).Value
	case *Tuple:
		bVal := b.(*Tuple)
		return ValuesEqual(aVal.First, bVal.First) && ValuesEqual(aVal.Second, bVal.Second)
	case *Closure:
		return false
	}
	return false
}

// HashValue returns a stable structural hash. ok is false when v contains
// a closure anywhere, which makes it ineligible as a cache key.
func HashValue(v Value) (sum uint64, ok bool) {
	h := fnv.New64a()
	if !hashInto(h, v) {
		return 0, false
	}
	return h.Sum64(), true
}

// HashArgs hashes an argument tuple. ok is false if any argument is
// ineligible.
func HashArgs(args []Value) (sum uint64, ok bool) {
	h := fnv.New64a()
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(len(args)))
	h.Write(buf[:])
	for _, a := range args {
		if !hashInto(h, a) {
			return 0, false
		}
	}
	return h.Sum64(), true
}

// Tag bytes keep Int 1, Str "1" and Bool true from sharing an encoding.
const (
	tagInt   = 'i'
	tagStr   = 's'
	tagBool  = 'b'
	tagTuple = 't'
)

func hashInto(h hash.Hash64, v Value) bool {
	var buf [5]byte
	switch val := v.(type) {
	case *Integer:
		buf[0] = tagInt
		binary.LittleEndian.PutUint32(buf[1:], uint32(val.Value))
		h.Write(buf[:])
	case *String:
		buf[0] = tagStr
		binary.LittleEndian.PutUint32(buf[1:], uint32(len(val.Value)))
		h.Write(buf[:])
		h.Write([]byte(val.Value))
	case *Boolean:
		buf[0] = tagBool
		if val.Value {
			buf[1] = 1
		}
		h.Write(buf[:2])
	case *Tuple:
		h.Write([]byte{tagTuple})
		return hashInto(h, val.First) && hashInto(h, val.Second)
	default:
		return false
	}
	return true
}
