package output

import (
	"github.com/Motmedel/http_output_go/pkg/types/media_type"
	"github.com/Motmedel/http_output_go/pkg/types/raw_value"
	"io"
)

// Node is one node of an output description: a tree in which each node
// contributes zero or one of status code, header, or body.
type Node interface {
	isNode()
}

type StatusCode struct {
	Code int
}

type Header struct {
	Name  string
	Value string
}

// Body carries a directly-typed raw value together with its codec metadata.
type Body struct {
	Value     *raw_value.RawValue
	MediaType media_type.MediaType
}

// StreamBody carries a stream value whose wire framing depends on whether a
// length is known. KnownLength, when set, declares the length explicitly.
type StreamBody struct {
	Stream      io.Reader
	MediaType   media_type.MediaType
	KnownLength *int64
}

type Group struct {
	Nodes []Node
}

func (StatusCode) isNode() {}
func (Header) isNode()     {}
func (Body) isNode()       {}
func (StreamBody) isNode() {}
func (Group) isNode()      {}
