package response

import (
	"github.com/Motmedel/http_output_go/pkg/types/entity"
)

type HeaderEntry struct {
	Name  string
	Value string
}

// Response is the finalized wire-level response handed to the transport.
type Response struct {
	StatusCode int
	Headers    []*HeaderEntry
	Entity     *entity.Entity
}
