package hashMap

// Key is a map key which may be absent
type Key struct {
	name    string
	present bool
}

// None is the absent key
var None = Key{}

// Some creates a present key
func Some(name string) Key {
	return Key{name: name, present: true}
}

// Get returns the key text and true if the key is present
func (k Key) Get() (string, bool) {
	return k.name, k.present
}

func (k Key) String() string {
	if !k.present {
		return "nil"
	}
	return k.name
}

// Hash computes the 32 bit polynomial string hash h = 31*h + c over the
// UTF-16 code units of the key. Overflow wraps around.
func Hash(key string) int32 {
	var h int32
	for _, r := range key {
		if r >= 0x10000 {
			r -= 0x10000
			h = 31*h + int32(0xD800+(r>>10))
			h = 31*h + int32(0xDC00+(r&0x3FF))
		} else {
			h = 31*h + int32(r)
		}
	}
	return h
}
