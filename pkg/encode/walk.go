package encode

import (
	"github.com/Motmedel/http_output_go/pkg/types/entity"
	"github.com/Motmedel/http_output_go/pkg/types/output"
	"strconv"
	"strings"
)

// Walk folds one output description node into the accumulator and returns the
// updated accumulator value. Status nodes overwrite (last writer wins), header
// nodes append, body nodes install the deferred entity constructor. No I/O
// happens here and no errors are raised; encoding failures surface when the
// constructor runs during assembly.
func Walk(node output.Node, accumulator Accumulator) Accumulator {
	switch typedNode := node.(type) {
	case output.StatusCode:
		accumulator.StatusCode = typedNode.Code
	case output.Header:
		accumulator.Headers = append(accumulator.Headers, [2]string{typedNode.Name, typedNode.Value})
		if strings.EqualFold(typedNode.Name, "Content-Length") {
			// An unparseable declared length is treated as absent.
			if contentLength, err := strconv.ParseInt(strings.TrimSpace(typedNode.Value), 10, 64); err == nil {
				accumulator.ContentLength = &contentLength
			}
		}
	case output.Body:
		value := typedNode.Value
		mediaType := typedNode.MediaType
		accumulator.EntityConstructor = func(contentLength *int64) (*entity.Entity, error) {
			return EncodeRawValue(value, mediaType, contentLength)
		}
	case output.StreamBody:
		stream := typedNode.Stream
		mediaType := typedNode.MediaType
		accumulator.EntityConstructor = func(contentLength *int64) (*entity.Entity, error) {
			return encodeStream(stream, mediaType, contentLength)
		}
		if knownLength := typedNode.KnownLength; knownLength != nil {
			accumulator.ContentLength = knownLength
		}
	case output.Group:
		for _, childNode := range typedNode.Nodes {
			accumulator = Walk(childNode, accumulator)
		}
	}

	return accumulator
}
