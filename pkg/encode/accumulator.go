package encode

import (
	"github.com/Motmedel/http_output_go/pkg/types/entity"
)

// EntityConstructor builds the wire entity once the content length, if any,
// has been resolved. Construction is deferred because the choice between a
// length-annotated and a chunked stream entity cannot be made until the whole
// output description has been walked.
type EntityConstructor func(contentLength *int64) (*entity.Entity, error)

// Accumulator collects the contributions of an output description: an
// optional status code, raw header pairs in insertion order, an optional
// deferred entity constructor, and an optional known content length. At most
// one entity constructor is ever set; an output description with more than
// one body node is a contract violation, not a detected condition.
type Accumulator struct {
	StatusCode        int
	Headers           [][2]string
	EntityConstructor EntityConstructor
	ContentLength     *int64
}
