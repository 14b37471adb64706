package codeset

import (
	"fmt"
	"slices"

	"github.com/arloliu/uvoxid/compress"
	"github.com/arloliu/uvoxid/errs"
	"github.com/arloliu/uvoxid/internal/collision"
	"github.com/arloliu/uvoxid/internal/hash"
	"github.com/arloliu/uvoxid/internal/options"
	"github.com/arloliu/uvoxid/internal/pool"
	"github.com/arloliu/uvoxid/spatial"
)

// Encoder collects codes and serializes them into a code set.
//
// An Encoder is single-use: after Finish, Add and Finish return
// errs.ErrEncoderFinished. It is not safe for concurrent use.
type Encoder struct {
	cfg      *EncoderConfig
	codec    compress.Codec
	codes    []spatial.Code
	tracker  *collision.Tracker // nil unless WithUnique
	finished bool
}

// NewEncoder creates an encoder configured by opts.
//
// Parameters:
//   - opts: Encoder options (WithCompression, WithBigEndian, WithSorted, WithUnique, ...)
//
// Returns:
//   - *Encoder: Ready encoder
//   - error: First option error, e.g. errs.ErrUnsupportedCompression
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := newEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(cfg.flag.CompressionType(), "code set")
	if err != nil {
		return nil, err
	}

	e := &Encoder{
		cfg:   cfg,
		codec: codec,
		codes: make([]spatial.Code, 0, initialCodeCapacity),
	}
	if cfg.unique {
		e.tracker = collision.NewTracker()
	}

	return e, nil
}

// Add appends one code.
func (e *Encoder) Add(c spatial.Code) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if int64(len(e.codes)) >= e.cfg.maxCodes {
		return fmt.Errorf("%w: limit is %d codes", errs.ErrCodeCountExceeded, e.cfg.maxCodes)
	}
	if e.tracker != nil {
		if err := e.tracker.TrackCode(c); err != nil {
			return fmt.Errorf("%w: %s", err, c)
		}
	}
	e.codes = append(e.codes, c)

	return nil
}

// AddAll appends codes in order. On error, codes before the failing one stay added.
func (e *Encoder) AddAll(codes ...spatial.Code) error {
	for _, c := range codes {
		if err := e.Add(c); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of codes added so far.
func (e *Encoder) Len() int {
	return len(e.codes)
}

// Finish serializes the header and the compressed payload.
//
// Returns:
//   - []byte: Complete code set, owned by the caller
//   - error: errs.ErrEncoderFinished if called twice, or a compression error
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true

	if e.cfg.flag.IsSorted() {
		slices.SortFunc(e.codes, spatial.Code.Compare)
	}

	buf := pool.GetCodeSetBuffer()
	defer pool.PutCodeSetBuffer(buf)

	engine := e.cfg.flag.GetEndianEngine()
	buf.Grow(len(e.codes) * spatial.Size)
	for _, c := range e.codes {
		hi, mid, lo := c.Words()
		buf.B = engine.AppendUint64(buf.B, hi)
		buf.B = engine.AppendUint64(buf.B, mid)
		buf.B = engine.AppendUint64(buf.B, lo)
	}
	payload := buf.Bytes()

	compressed, err := e.codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress code set payload: %w", err)
	}

	header := Header{
		Flag:     e.cfg.flag,
		Count:    uint32(len(e.codes)), //nolint:gosec // bounded by maxCodes
		Checksum: hash.Sum(payload),
	}

	out := make([]byte, 0, HeaderSize+len(compressed))
	out = header.AppendBytes(out)
	out = append(out, compressed...)

	return out, nil
}
