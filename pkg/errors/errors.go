package errors

import (
	"errors"
)

var (
	ErrHeaderParse         = errors.New("header parse error")
	ErrMediaTypeParse      = errors.New("media type parse error")
	ErrUnsupportedBodyType = errors.New("unsupported body type")

	ErrNilRawValue             = errors.New("nil raw value")
	ErrNilPart                 = errors.New("nil part")
	ErrNilPartCodec            = errors.New("nil part codec")
	ErrNilPartCodecLookup      = errors.New("nil part codec lookup")
	ErrNilStream               = errors.New("nil stream")
	ErrNilEntity               = errors.New("nil entity")
	ErrNilContentType          = errors.New("nil content type")
	ErrNilResponseWriter       = errors.New("nil response writer")
	ErrNoResponseWriterFlusher = errors.New("no response writer flusher")

	ErrUnknownCharset = errors.New("unknown charset")
)
