package raw_value

import (
	"bytes"
	"github.com/Motmedel/http_output_go/pkg/types/media_type"
	"io"
)

type Kind int

const (
	KindText Kind = iota
	KindByteArray
	KindByteBuffer
	KindByteStream
	KindFile
	KindMultipart
)

// RawValue describes how a body value is physically represented. Exactly one
// of the representation fields is populated, selected by Kind.
type RawValue struct {
	Kind Kind

	Text    string
	Charset string

	Bytes []byte

	Buffer *bytes.Buffer

	Stream io.Reader

	FilePath string

	Parts      []*Part
	PartCodecs PartCodecLookup
}

// Part is a named, independently-typed sub-body within a multipart value.
// Constructed by the caller, consumed once, not mutated.
type Part struct {
	Name                  string
	Headers               [][2]string
	DispositionParameters map[string]string
	Body                  *RawValue
}

// PartCodec is the codec metadata for a single multipart part, supplied by the
// codec-metadata collaborator.
type PartCodec struct {
	MediaType media_type.MediaType
}

// PartCodecLookup resolves a part name to its codec metadata. A nil result
// means the name is unknown.
type PartCodecLookup func(partName string) *PartCodec

func Text(text string, charset string) *RawValue {
	return &RawValue{Kind: KindText, Text: text, Charset: charset}
}

func ByteArray(data []byte) *RawValue {
	return &RawValue{Kind: KindByteArray, Bytes: data}
}

func ByteBuffer(buffer *bytes.Buffer) *RawValue {
	return &RawValue{Kind: KindByteBuffer, Buffer: buffer}
}

func ByteStream(stream io.Reader) *RawValue {
	return &RawValue{Kind: KindByteStream, Stream: stream}
}

func File(filePath string) *RawValue {
	return &RawValue{Kind: KindFile, FilePath: filePath}
}

func Multipart(parts []*Part, partCodecs PartCodecLookup) *RawValue {
	return &RawValue{Kind: KindMultipart, Parts: parts, PartCodecs: partCodecs}
}
