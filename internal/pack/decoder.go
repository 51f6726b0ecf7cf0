package pack

import (
	"errors"
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
)

// Decoder reads Records one at a time from a pack stream. The sequence is
// lazy, finite and non-restartable: after Next returns any error, including
// io.EOF, the decoder yields that same error forever.
type Decoder struct {
	dec *msgpack.Decoder
	n   int
	err error
}

// NewDecoder returns a Decoder over a raw concatenation of encoded Records.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: msgpack.NewDecoder(r)}
}

// Next decodes the next Record. It returns io.EOF at the clean end of the
// stream and a decode error for malformed content; either ends the sequence.
func (d *Decoder) Next() (*Record, error) {
	if d.err != nil {
		return nil, d.err
	}
	var rec Record
	if err := d.dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			d.err = io.EOF
		} else {
			d.err = fmt.Errorf("record %d: %w", d.n, err)
		}
		return nil, d.err
	}
	if err := validateRecord(&rec); err != nil {
		d.err = fmt.Errorf("record %d: %w", d.n, err)
		return nil, d.err
	}
	d.n++
	return &rec, nil
}

func validateRecord(rec *Record) error {
	if rec.Kind >= recordKindCount {
		return fmt.Errorf("unrecognized record kind %d", rec.Kind)
	}
	if rec.Body == nil {
		return errors.New("record carries no body")
	}
	if _, err := safecast.Conv[uint32](len(rec.Body.Blocks)); err != nil {
		return fmt.Errorf("function %s: %w", rec.Body.DefID, err)
	}
	for i := range rec.Body.Blocks {
		if k := rec.Body.Blocks[i].Term.Kind; k >= termKindCount {
			return fmt.Errorf("function %s block %d: unrecognized terminator kind %d", rec.Body.DefID, i, k)
		}
	}
	return nil
}
