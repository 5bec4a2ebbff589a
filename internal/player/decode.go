package player

import (
	"fmt"
	"io"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
)

// Stream container formats the audio backend can decode.
const (
	formatUnknown = ""
	formatMP3     = "mp3"
	formatOgg     = "ogg"
	formatFLAC    = "flac"
)

// streamFormat picks a decoder from the response content type, falling back
// to the URL extension when the server sends a generic type.
func streamFormat(contentType, rawURL string) string {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mt {
		case "audio/mpeg", "audio/mp3", "audio/mpeg3":
			return formatMP3
		case "audio/ogg", "application/ogg", "audio/opus", "audio/vorbis":
			return formatOgg
		case "audio/flac", "audio/x-flac":
			return formatFLAC
		}
	}

	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".mp3":
		return formatMP3
	case ".ogg", ".oga", ".opus":
		return formatOgg
	case ".flac":
		return formatFLAC
	}
	return formatUnknown
}

func decodeStream(rc io.ReadCloser, contentType, rawURL string) (beep.StreamSeekCloser, beep.Format, error) {
	switch streamFormat(contentType, rawURL) {
	case formatMP3:
		return decodeMP3(rc)
	case formatOgg:
		return decodeOgg(rc)
	case formatFLAC:
		return flac.Decode(rc)
	}
	return nil, beep.Format{}, fmt.Errorf("%w: content type %q", ErrUnsupported, contentType)
}
