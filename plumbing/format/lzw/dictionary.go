package lzw

// Both dictionaries identify a sequence by its code, so a new entry is always
// described as an existing code plus one byte. Literal codes are implicit:
// the sequence of a code below FirstCode is the single byte byte(code).

// encodingDictionary maps "sequence of prefix, then b" to the code of that
// sequence.
type encodingDictionary struct {
	codes map[uint32]Code
	next  int
}

func newEncodingDictionary() *encodingDictionary {
	return &encodingDictionary{
		codes: make(map[uint32]Code),
		next:  LiteralCodes,
	}
}

func childKey(prefix Code, b byte) uint32 {
	return uint32(prefix)<<8 | uint32(b)
}

func (d *encodingDictionary) lookup(prefix Code, b byte) (Code, bool) {
	c, ok := d.codes[childKey(prefix, b)]
	return c, ok
}

func (d *encodingDictionary) insert(prefix Code, b byte) (Code, error) {
	if d.next >= MaxCodes {
		return 0, ErrDictionaryFull
	}

	c := Code(d.next)
	d.codes[childKey(prefix, b)] = c
	d.next++
	return c, nil
}

// Len returns the number of entries, literal entries included.
func (d *encodingDictionary) Len() int {
	return d.next
}

// entry is the sequence of prefix followed by suffix. first and length are
// cached so resolving a code never walks the chain twice.
type entry struct {
	prefix Code
	suffix byte
	first  byte
	length int
}

// decodingDictionary maps codes to sequences. entries[i] holds the sequence
// of code FirstCode+i.
type decodingDictionary struct {
	entries []entry
}

// Len returns the number of entries, literal entries included.
func (d *decodingDictionary) Len() int {
	return LiteralCodes + len(d.entries)
}

func (d *decodingDictionary) contains(c Code) bool {
	return int(c) < d.Len()
}

func (d *decodingDictionary) length(c Code) int {
	if c < FirstCode {
		return 1
	}

	return d.entries[c-FirstCode].length
}

func (d *decodingDictionary) first(c Code) byte {
	if c < FirstCode {
		return byte(c)
	}

	return d.entries[c-FirstCode].first
}

// expand writes the sequence of c to dst, which must be length(c) long.
func (d *decodingDictionary) expand(dst []byte, c Code) {
	i := len(dst) - 1
	for c >= FirstCode {
		e := d.entries[c-FirstCode]
		dst[i] = e.suffix
		c = e.prefix
		i--
	}

	dst[0] = byte(c)
}

func (d *decodingDictionary) insert(prefix Code, b byte) (Code, error) {
	if d.Len() >= MaxCodes {
		return 0, ErrDictionaryFull
	}

	d.entries = append(d.entries, entry{
		prefix: prefix,
		suffix: b,
		first:  d.first(prefix),
		length: d.length(prefix) + 1,
	})

	return Code(d.Len() - 1), nil
}
