package player

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/jfreymuth/vorbis"
	"github.com/jj11hh/opus"
)

// Opus output is always 48 kHz; the rate in OpusHead is the source rate.
const opusRate = 48000

var (
	errUnknownOggCodec = errors.New("ogg: not an Opus or Vorbis stream")
	errBadOpusHead     = errors.New("opus: malformed OpusHead")
	errOpusVersion     = errors.New("opus: unsupported version")
	errBadVorbisIdent  = errors.New("vorbis: malformed identification header")
	errVorbisNotReady  = errors.New("vorbis: audio packet before setup header")
	errShortPCM        = errors.New("vorbis: pcm buffer too small")
)

// codecParams describes the PCM a codec produces.
type codecParams struct {
	rate     int
	channels int
	preSkip  int // frames to drop at the start of the stream
}

// oggCodec decodes the packets of one logical Ogg stream.
type oggCodec interface {
	params() codecParams
	// header consumes a header packet that follows the identification
	// packet and reports whether audio packets may follow.
	header(packet []byte) (bool, error)
	// decode writes interleaved samples to pcm and returns frames decoded.
	decode(packet []byte, pcm []float32) (int, error)
}

// newOggCodec picks the codec from the identification packet.
func newOggCodec(ident []byte) (oggCodec, error) {
	switch {
	case bytes.HasPrefix(ident, []byte("OpusHead")):
		return newOpusDecoder(ident)
	case len(ident) >= 7 && ident[0] == 0x01 && string(ident[1:7]) == "vorbis":
		return newVorbisDecoder(ident)
	}
	return nil, errUnknownOggCodec
}

type opusDecoder struct {
	dec *opus.Decoder
	p   codecParams
}

func newOpusDecoder(head []byte) (*opusDecoder, error) {
	// magic(8) version(1) channels(1) pre-skip(2) input rate(4) gain(2) mapping(1)
	if len(head) < 19 {
		return nil, errBadOpusHead
	}
	if head[8] != 1 {
		return nil, errOpusVersion
	}
	channels := int(head[9])
	dec, err := opus.NewDecoder(opusRate, channels)
	if err != nil {
		return nil, fmt.Errorf("opus: %w", err)
	}
	return &opusDecoder{
		dec: dec,
		p: codecParams{
			rate:     opusRate,
			channels: channels,
			preSkip:  int(binary.LittleEndian.Uint16(head[10:12])),
		},
	}, nil
}

func (o *opusDecoder) params() codecParams { return o.p }

// OpusTags is the only header after OpusHead and carries no audio setup.
func (o *opusDecoder) header([]byte) (bool, error) { return true, nil }

func (o *opusDecoder) decode(packet []byte, pcm []float32) (int, error) {
	return o.dec.DecodeFloat32(packet, pcm)
}

type vorbisDecoder struct {
	dec   vorbis.Decoder
	p     codecParams
	ident []byte // handed to the decoder together with the comment header
	seen  int    // headers read after the identification header
}

func newVorbisDecoder(ident []byte) (*vorbisDecoder, error) {
	// type(1) "vorbis"(6) version(4) channels(1) rate(4) ...
	if len(ident) < 16 || binary.LittleEndian.Uint32(ident[7:11]) != 0 {
		return nil, errBadVorbisIdent
	}
	return &vorbisDecoder{
		p: codecParams{
			rate:     int(binary.LittleEndian.Uint32(ident[12:16])),
			channels: int(ident[11]),
		},
		ident: bytes.Clone(ident),
	}, nil
}

func (v *vorbisDecoder) params() codecParams { return v.p }

func (v *vorbisDecoder) ready() bool { return v.seen >= 2 }

// header reads the comment and setup headers.
func (v *vorbisDecoder) header(packet []byte) (bool, error) {
	if v.ready() {
		return true, nil
	}
	if v.ident != nil {
		if err := v.dec.ReadHeader(v.ident); err != nil {
			return false, fmt.Errorf("vorbis: %w", err)
		}
		v.ident = nil
	}
	if err := v.dec.ReadHeader(bytes.Clone(packet)); err != nil {
		return false, fmt.Errorf("vorbis: %w", err)
	}
	v.seen++
	return v.ready(), nil
}

func (v *vorbisDecoder) decode(packet []byte, pcm []float32) (int, error) {
	if !v.ready() {
		return 0, errVorbisNotReady
	}
	samples, err := v.dec.Decode(packet)
	if err != nil {
		return 0, fmt.Errorf("vorbis: %w", err)
	}
	if len(samples) > len(pcm) {
		return 0, errShortPCM
	}
	return copy(pcm, samples) / v.p.channels, nil
}
