package encode

import (
	"fmt"
	httpOutputErrors "github.com/Motmedel/http_output_go/pkg/errors"
	"github.com/Motmedel/http_output_go/pkg/parsing/field"
	"github.com/Motmedel/http_output_go/pkg/types/entity"
	"github.com/Motmedel/http_output_go/pkg/types/output"
	httpOutputTypesResponse "github.com/Motmedel/http_output_go/pkg/types/response"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/Motmedel/utils_go/pkg/http/parsing/headers/content_type"
	"net/http"
)

// Assemble finalizes an accumulator into a concrete response: the default
// status applies when no status node was seen, all accumulated headers are
// validated (the first malformed one fails the whole operation), the deferred
// entity constructor runs with the resolved content length, and an explicit
// Content-Type header overrides the entity's inferred content type.
func Assemble(
	defaultStatusCode int,
	accumulator Accumulator,
) (*httpOutputTypesResponse.Response, error) {
	statusCode := accumulator.StatusCode
	if statusCode == 0 {
		statusCode = defaultStatusCode
	}

	var headerEntries []*httpOutputTypesResponse.HeaderEntry
	var contentTypeOverride string

	for _, rawHeader := range accumulator.Headers {
		headerEntry, err := field.Parse(rawHeader[0], rawHeader[1])
		if err != nil {
			return nil, motmedelErrors.MakeError(fmt.Errorf("field parse: %w", err), rawHeader)
		}
		headerEntries = append(headerEntries, headerEntry)

		if http.CanonicalHeaderKey(headerEntry.Name) == "Content-Type" {
			contentTypeOverride = headerEntry.Value
		}
	}

	var responseEntity *entity.Entity
	if entityConstructor := accumulator.EntityConstructor; entityConstructor != nil {
		var err error
		responseEntity, err = entityConstructor(accumulator.ContentLength)
		if err != nil {
			return nil, fmt.Errorf("entity constructor: %w", err)
		}
		if responseEntity == nil {
			return nil, motmedelErrors.MakeErrorWithStackTrace(httpOutputErrors.ErrNilEntity)
		}
	}

	if contentTypeOverride != "" && responseEntity != nil {
		if err := validateContentType(contentTypeOverride); err != nil {
			return nil, fmt.Errorf("validate content type: %w", err)
		}
		responseEntity.ContentType = contentTypeOverride
	}

	builtResponse := &httpOutputTypesResponse.Response{
		StatusCode: statusCode,
		Entity:     responseEntity,
	}
	if len(headerEntries) > 0 {
		builtResponse.Headers = headerEntries
	}

	return builtResponse, nil
}

// Encode walks a whole output description and assembles the response.
func Encode(defaultStatusCode int, node output.Node) (*httpOutputTypesResponse.Response, error) {
	return Assemble(defaultStatusCode, Walk(node, Accumulator{}))
}

func validateContentType(contentTypeValue string) error {
	contentTypeData := []byte(contentTypeValue)

	contentType, err := content_type.ParseContentType(contentTypeData)
	if err != nil {
		return motmedelErrors.MakeError(
			fmt.Errorf("%w: parse content type: %w", httpOutputErrors.ErrMediaTypeParse, err),
			contentTypeData,
		)
	}
	if contentType == nil {
		return motmedelErrors.MakeErrorWithStackTrace(
			fmt.Errorf("%w: %w", httpOutputErrors.ErrMediaTypeParse, httpOutputErrors.ErrNilContentType),
			contentTypeData,
		)
	}

	return nil
}
