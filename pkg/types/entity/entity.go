package entity

import (
	"bytes"
	"errors"
	"fmt"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"go.uber.org/multierr"
	"io"
	"iter"
)

const streamerBufferSize = 32 * 1024

// Entity is the wire-level body representation: a fixed-length byte payload,
// a length-annotated or chunked stream, or a file reference whose length the
// transport reads lazily. Produced fresh per response; never reused.
type Entity struct {
	ContentType   string
	ContentLength *int64
	Body          []byte
	BodyStreamer  iter.Seq2[[]byte, error]
	FilePath      string

	closers []io.Closer
}

func MakeFixed(contentType string, body []byte) *Entity {
	contentLength := int64(len(body))
	return &Entity{ContentType: contentType, ContentLength: &contentLength, Body: body}
}

// MakeStream produces a stream entity. A nil content length means the stream
// is unbounded and must be framed as chunked by the transport.
func MakeStream(
	contentType string,
	bodyStreamer iter.Seq2[[]byte, error],
	contentLength *int64,
	closers ...io.Closer,
) *Entity {
	return &Entity{
		ContentType:   contentType,
		ContentLength: contentLength,
		BodyStreamer:  bodyStreamer,
		closers:       closers,
	}
}

func MakeFile(contentType string, filePath string) *Entity {
	return &Entity{ContentType: contentType, FilePath: filePath}
}

func (entity *Entity) IsStream() bool {
	if entity == nil {
		return false
	}
	return entity.BodyStreamer != nil
}

// Close releases the handles whose ownership passed to the entity.
func (entity *Entity) Close() error {
	if entity == nil {
		return nil
	}

	var closeErr error
	for _, closer := range entity.closers {
		if closer == nil {
			continue
		}
		if err := closer.Close(); err != nil {
			closeErr = multierr.Append(
				closeErr,
				motmedelErrors.MakeError(fmt.Errorf("closer close: %w", err)),
			)
		}
	}

	return closeErr
}

// ReaderStreamer adapts a reader into a body streamer. Bytes are pulled on
// demand; the reader is not closed here.
func ReaderStreamer(reader io.Reader) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		buffer := make([]byte, streamerBufferSize)
		for {
			n, err := reader.Read(buffer)
			if n > 0 {
				if !yield(bytes.Clone(buffer[:n]), nil) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield(nil, motmedelErrors.MakeError(fmt.Errorf("reader read: %w", err)))
				}
				return
			}
		}
	}
}
