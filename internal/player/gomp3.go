package player

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/go-mp3"
)

var errNotSeekable = errors.New("live stream is not seekable")

// mp3Stream adapts llehouerou/go-mp3 to beep for an unbounded network body.
type mp3Stream struct {
	decoder *mp3.Decoder
	closer  io.Closer
	pos     int
	err     error
	buf     []byte
}

// decodeMP3 starts decoding an MP3 stream. The decoder reads the first frame
// to learn the sample rate, so this blocks until the station sends audio.
func decodeMP3(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	decoder, err := mp3.NewDecoder(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}
	rate := decoder.SampleRate()
	if rate == 0 {
		return nil, beep.Format{}, errors.New("mp3: invalid sample rate")
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(rate),
		NumChannels: 2,
		Precision:   2,
	}
	return &mp3Stream{decoder: decoder, closer: rc, buf: make([]byte, 8192)}, format, nil
}

func (s *mp3Stream) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil {
		return 0, false
	}

	need := len(samples) * 4
	if len(s.buf) < need {
		s.buf = make([]byte, need)
	}
	read, err := io.ReadFull(s.decoder, s.buf[:need])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		s.err = err
	}

	n := read / 4
	for i := range n {
		off := i * 4
		left := int16(binary.LittleEndian.Uint16(s.buf[off:]))    //nolint:gosec // pcm
		right := int16(binary.LittleEndian.Uint16(s.buf[off+2:])) //nolint:gosec // pcm
		samples[i][0] = float64(left) / 32768
		samples[i][1] = float64(right) / 32768
	}
	s.pos += n
	return n, n > 0
}

func (s *mp3Stream) Err() error { return s.err }

// Len is zero: a station has no known end.
func (s *mp3Stream) Len() int { return 0 }

func (s *mp3Stream) Position() int { return s.pos }

func (s *mp3Stream) Seek(int) error { return errNotSeekable }

func (s *mp3Stream) Close() error { return s.closer.Close() }
