package listing

import (
	"bytes"
	"fmt"
	"strconv"
)

// Decode parses a listing back into the bytes it describes. Whitespace and
// line breaks around tokens are ignored; a single trailing separator is
// expected and tolerated.
func Decode(text []byte) ([]byte, error) {
	if len(bytes.TrimSpace(text)) == 0 {
		return []byte{}, nil
	}

	fields := bytes.Split(text, []byte(","))
	if last := bytes.TrimSpace(fields[len(fields)-1]); len(last) == 0 {
		fields = fields[:len(fields)-1]
	}

	out := make([]byte, 0, len(fields))
	for i, field := range fields {
		tok := bytes.TrimSpace(field)
		if len(tok) == 0 {
			return nil, fmt.Errorf("%w: empty token %d", ErrMalformedListing, i)
		}
		v, err := strconv.ParseUint(string(tok), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q", ErrMalformedListing, i, tok)
		}
		out = append(out, byte(v))
	}
	return out, nil
}

// Verify reports whether text is exactly the listing of data.
func Verify(data, text []byte) error {
	if bytes.Equal(Append(nil, data), text) {
		return nil
	}

	decoded, err := Decode(text)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrListingMismatch, err)
	}
	for i := 0; i < min(len(data), len(decoded)); i++ {
		if data[i] != decoded[i] {
			return fmt.Errorf("%w: byte %d is %d, listing has %d", ErrListingMismatch, i, data[i], decoded[i])
		}
	}
	if len(data) != len(decoded) {
		return fmt.Errorf("%w: data has %d bytes, listing has %d", ErrListingMismatch, len(data), len(decoded))
	}
	return fmt.Errorf("%w: values match but line layout differs", ErrListingMismatch)
}
