package player

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/gopxl/beep/v2"
)

const (
	oggHeaderSize = 27
	oggFlagBOS    = 0x02
)

var errBadOggPage = errors.New("ogg: bad page header")

// oggPacketReader splits a non-seekable Ogg byte stream into packets.
type oggPacketReader struct {
	r      io.Reader
	hdr    [oggHeaderSize]byte
	lacing [255]byte
	queue  [][]byte
	carry  []byte // packet continued on the next page
	serial uint32
	fresh  bool // the next queued packet opens a new logical stream
}

func newOggPacketReader(r io.Reader) *oggPacketReader {
	return &oggPacketReader{r: r}
}

// next returns the next complete packet. bos is true for the first packet
// of a logical stream, which happens again when a station chains streams.
func (p *oggPacketReader) next() (packet []byte, bos bool, err error) {
	for len(p.queue) == 0 {
		if err := p.readPage(); err != nil {
			return nil, false, err
		}
	}
	packet = p.queue[0]
	p.queue = p.queue[1:]
	bos, p.fresh = p.fresh, false
	return packet, bos, nil
}

func (p *oggPacketReader) readPage() error {
	if _, err := io.ReadFull(p.r, p.hdr[:]); err != nil {
		return err
	}
	if string(p.hdr[:4]) != "OggS" || p.hdr[4] != 0 {
		return errBadOggPage
	}
	flags := p.hdr[5]
	serial := binary.LittleEndian.Uint32(p.hdr[14:18])
	segments := int(p.hdr[26])
	if _, err := io.ReadFull(p.r, p.lacing[:segments]); err != nil {
		return err
	}

	size := 0
	for _, l := range p.lacing[:segments] {
		size += int(l)
	}
	body := make([]byte, size)
	if _, err := io.ReadFull(p.r, body); err != nil {
		return err
	}

	if flags&oggFlagBOS != 0 {
		p.carry = nil
		p.fresh = true
		p.serial = serial
	} else if serial != p.serial {
		// Pages of another multiplexed stream.
		return nil
	}

	off, start := 0, 0
	for _, l := range p.lacing[:segments] {
		off += int(l)
		if l == 255 {
			continue
		}
		packet := body[start:off]
		if p.carry != nil {
			packet = append(p.carry, packet...)
			p.carry = nil
		}
		p.queue = append(p.queue, packet)
		start = off
	}
	if start < off {
		p.carry = append(p.carry, body[start:off]...)
	}
	return nil
}

// oggStream decodes a live Ogg Vorbis or Opus stream for beep.
type oggStream struct {
	packets *oggPacketReader
	closer  io.Closer
	codec   oggCodec
	params  codecParams
	format  beep.Format
	pcm     []float32
	avail   int // decoded frames in pcm
	read    int // frames of pcm already streamed
	skip    int // frames still to drop
	pos     int
	err     error
}

// decodeOgg reads the stream headers and returns a decoder positioned at
// the first audio packet.
func decodeOgg(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	s := &oggStream{packets: newOggPacketReader(rc), closer: rc}
	first, _, err := s.packets.next()
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("ogg: read headers: %w", err)
	}
	if err := s.start(first); err != nil {
		return nil, beep.Format{}, err
	}
	s.format = beep.Format{
		SampleRate:  beep.SampleRate(s.params.rate),
		NumChannels: min(s.params.channels, 2),
		Precision:   2,
	}
	return s, s.format, nil
}

// start initialises a codec from an identification packet and consumes the
// remaining header packets.
func (s *oggStream) start(ident []byte) error {
	codec, err := newOggCodec(ident)
	if err != nil {
		return err
	}
	for ready := false; !ready; {
		packet, _, err := s.packets.next()
		if err != nil {
			return fmt.Errorf("ogg: read headers: %w", err)
		}
		if ready, err = codec.header(packet); err != nil {
			return err
		}
	}
	s.codec = codec
	s.params = codec.params()
	s.skip = s.params.preSkip
	s.pcm = make([]float32, 8192*s.params.channels)
	return nil
}

func (s *oggStream) decodeNext() bool {
	for {
		packet, bos, err := s.packets.next()
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
				s.err = err
			}
			return false
		}
		if bos {
			if err := s.start(packet); err != nil {
				s.err = err
				return false
			}
			continue
		}
		n, err := s.codec.decode(packet, s.pcm)
		if err != nil {
			s.err = err
			return false
		}
		if s.skip > 0 {
			drop := min(s.skip, n)
			s.skip -= drop
			ch := s.params.channels
			copy(s.pcm, s.pcm[drop*ch:n*ch])
			n -= drop
		}
		if n > 0 {
			s.avail, s.read = n, 0
			return true
		}
	}
}

func (s *oggStream) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil {
		return 0, false
	}
	n := 0
	for n < len(samples) {
		if s.read >= s.avail && !s.decodeNext() {
			break
		}
		ch := s.params.channels
		for s.read < s.avail && n < len(samples) {
			i := s.read * ch
			left := float64(s.pcm[i])
			right := left
			if ch > 1 {
				right = float64(s.pcm[i+1])
			}
			samples[n] = [2]float64{left, right}
			s.read++
			n++
		}
	}
	s.pos += n
	return n, n > 0
}

func (s *oggStream) Err() error { return s.err }

func (s *oggStream) Len() int { return 0 }

func (s *oggStream) Position() int { return s.pos }

func (s *oggStream) Seek(int) error { return errNotSeekable }

func (s *oggStream) Close() error { return s.closer.Close() }
