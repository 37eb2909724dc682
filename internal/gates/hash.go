package gates

// TableSize is the capacity of the hashed-name table. Must be a power of two.
const TableSize = 1024

// maxHashSalts bounds the salt search performed by the registry constructor.
const maxHashSalts = 1 << 12

const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619
	saltMix     = 0x9E3779B1
)

// hashName maps name to a slot of the hashed-name table. ASCII letters are
// folded to upper case before mixing, so "cnot" and "CNOT" share a slot.
// Bytes outside ASCII are mixed unchanged. The function never allocates.
func hashName(name string, salt uint32) uint16 {
	h := uint32(fnvOffset32) ^ (salt * saltMix)
	for i := 0; i < len(name); i++ {
		h ^= uint32(upperASCII(name[i]))
		h *= fnvPrime32
	}
	// fmix32 finalizer: spreads the low bits used by the mask.
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return uint16(h & (TableSize - 1))
}

func upperASCII(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// asciiEqualFold reports whether a and b are equal under ASCII case folding.
func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if upperASCII(a[i]) != upperASCII(b[i]) {
			return false
		}
	}
	return true
}
