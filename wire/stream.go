package wire

import "io"

// ReadOne reads exactly one record's worth of bytes from r: the marker, the
// size-class-appropriate length field, and the payload. The returned slice
// is the full record image (marker + length + payload), suitable for
// Ingredient.Adopt.
//
// Partial reads are retried via io.ReadFull until the required byte count is
// satisfied or r reports failure. A stream ending before the declared total
// size is reached is a hard error (ErrTruncated), matching spec §4.9: there
// is no partial-input resumption.
func ReadOne(r io.Reader) ([]byte, error) {
	var scratch [9]byte
	if _, err := io.ReadFull(r, scratch[:1]); err != nil {
		return nil, wrapReadErr(err)
	}
	sc := SizeClassOf(scratch[0])
	w := LengthBytes(sc)
	if w > 0 {
		if _, err := io.ReadFull(r, scratch[1:1+w]); err != nil {
			return nil, wrapReadErr(err)
		}
	}

	total, err := ReadSize(scratch[:1+w])
	if err != nil {
		return nil, err
	}
	if total < uint64(1+w) {
		// a declared size smaller than the header cannot hold the header itself
		return nil, ErrTruncated
	}

	buf := make([]byte, total)
	copy(buf, scratch[:1+w])
	if rest := buf[1+w:]; len(rest) > 0 {
		if _, err := io.ReadFull(r, rest); err != nil {
			return nil, wrapReadErr(err)
		}
	}
	return buf, nil
}

// WriteOne writes b, the full byte image of one record, to w in a single
// logical write.
func WriteOne(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return err
}

func wrapReadErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncated
	}
	return err
}
