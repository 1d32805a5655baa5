package input

import "unicode"

// Key identifies a key by name rather than by platform key code.
type Key string

const (
	Unknown   Key = ""
	Quit      Key = "q"
	W         Key = "w"
	S         Key = "s"
	O         Key = "o"
	L         Key = "l"
	UpArrow   Key = "up"
	DownArrow Key = "down"
)

const (
	esc = 27
	csi = '['
)

// ParseKeys turns a chunk of raw terminal input into keys. Letters are case folded;
// arrow keys arrive as ESC [ A and ESC [ B. An escape sequence cut off at the end of
// raw is dropped; use a Decoder when input arrives in several reads.
func ParseKeys(raw []byte) []Key {
	keys, _ := parse(raw)
	return keys
}

// parse decodes raw and returns any unfinished escape sequence at its end.
func parse(raw []byte) ([]Key, []byte) {
	var keys []Key
	for i := 0; i < len(raw); i++ {
		if raw[i] == esc {
			if i+1 == len(raw) || (raw[i+1] == csi && i+2 == len(raw)) {
				return keys, raw[i:]
			}
			if raw[i+1] == csi {
				switch raw[i+2] {
				case 'A':
					keys = append(keys, UpArrow)
				case 'B':
					keys = append(keys, DownArrow)
				}
				i += 2
			}
			continue
		}
		r := rune(raw[i])
		if r > unicode.MaxASCII || !unicode.IsPrint(r) {
			continue
		}
		keys = append(keys, Key(string(unicode.ToLower(r))))
	}
	return keys, nil
}

// Decoder parses a stream of reads, carrying an escape sequence split across two
// reads over to the next one.
type Decoder struct {
	pending []byte
}

func (d *Decoder) Decode(chunk []byte) []Key {
	raw := append(d.pending, chunk...)
	keys, rest := parse(raw)
	d.pending = append([]byte(nil), rest...)
	return keys
}

// Valid reports whether ParseKeys can ever produce k: an arrow key or a single
// printable ASCII character that is not upper case.
func (k Key) Valid() bool {
	if k == UpArrow || k == DownArrow {
		return true
	}
	if len(k) != 1 {
		return false
	}
	r := rune(k[0])
	return r <= unicode.MaxASCII && unicode.IsPrint(r) && !unicode.IsUpper(r)
}

// KeySet is the set of keys currently held down.
type KeySet map[Key]struct{}

func NewKeySet(keys ...Key) KeySet {
	ks := make(KeySet, len(keys))
	for _, k := range keys {
		ks[k] = struct{}{}
	}
	return ks
}

func (ks KeySet) Has(k Key) bool {
	_, ok := ks[k]
	return ok
}
