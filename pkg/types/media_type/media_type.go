package media_type

import (
	"fmt"
	httpOutputErrors "github.com/Motmedel/http_output_go/pkg/errors"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/Motmedel/utils_go/pkg/http/parsing/headers/content_type"
	motmedelHttpTypes "github.com/Motmedel/utils_go/pkg/http/types"
	"strings"
)

type Kind int

const (
	KindApplicationJson Kind = iota
	KindTextPlain
	KindApplicationOctetStream
	KindApplicationFormUrlencoded
	KindMultipartFormData
	KindOther
)

// MediaType is an abstract content-type classification. The built-in kinds map
// to fixed wire values; KindOther carries an arbitrary string that is parsed
// when the concrete content type is resolved.
type MediaType struct {
	Kind    Kind
	Charset string
	Value   string
}

var (
	ApplicationJson           = MediaType{Kind: KindApplicationJson}
	ApplicationOctetStream    = MediaType{Kind: KindApplicationOctetStream}
	ApplicationFormUrlencoded = MediaType{Kind: KindApplicationFormUrlencoded}
	MultipartFormData         = MediaType{Kind: KindMultipartFormData}
)

func TextPlain(charset string) MediaType {
	return MediaType{Kind: KindTextPlain, Charset: charset}
}

func Other(value string) MediaType {
	return MediaType{Kind: KindOther, Value: value}
}

func (mediaType MediaType) ContentType() (*motmedelHttpTypes.ContentType, error) {
	switch mediaType.Kind {
	case KindApplicationJson:
		return makeContentType("application", "json", nil), nil
	case KindTextPlain:
		var parameters [][2]string
		if charset := mediaType.Charset; charset != "" {
			parameters = [][2]string{{"charset", charset}}
		}
		return makeContentType("text", "plain", parameters), nil
	case KindApplicationOctetStream:
		return makeContentType("application", "octet-stream", nil), nil
	case KindApplicationFormUrlencoded:
		return makeContentType("application", "x-www-form-urlencoded", nil), nil
	case KindMultipartFormData:
		return makeContentType("multipart", "form-data", nil), nil
	case KindOther:
		contentTypeData := []byte(mediaType.Value)
		contentType, err := content_type.ParseContentType(contentTypeData)
		if err != nil {
			return nil, motmedelErrors.MakeError(
				fmt.Errorf("%w: parse content type: %w", httpOutputErrors.ErrMediaTypeParse, err),
				contentTypeData,
			)
		}
		if contentType == nil {
			return nil, motmedelErrors.MakeErrorWithStackTrace(
				fmt.Errorf("%w: %w", httpOutputErrors.ErrMediaTypeParse, httpOutputErrors.ErrNilContentType),
				contentTypeData,
			)
		}
		return contentType, nil
	default:
		return nil, motmedelErrors.MakeErrorWithStackTrace(
			fmt.Errorf("%w: unexpected media type kind: %d", httpOutputErrors.ErrMediaTypeParse, mediaType.Kind),
		)
	}
}

func makeContentType(typeValue string, subtypeValue string, parameters [][2]string) *motmedelHttpTypes.ContentType {
	return &motmedelHttpTypes.ContentType{
		MediaType: motmedelHttpTypes.MediaType{
			Type:       typeValue,
			Subtype:    subtypeValue,
			Parameters: parameters,
		},
	}
}

func Format(contentType *motmedelHttpTypes.ContentType) string {
	if contentType == nil {
		return ""
	}

	var builder strings.Builder
	builder.WriteString(contentType.GetFullType(false))

	for _, parameter := range contentType.Parameters {
		builder.WriteString("; ")
		builder.WriteString(parameter[0])
		builder.WriteString("=")
		builder.WriteString(parameter[1])
	}

	return builder.String()
}

// IsTextual reports whether a content type carries text that a string can be
// embedded into directly, without charset re-encoding.
func IsTextual(contentType *motmedelHttpTypes.ContentType) bool {
	if contentType == nil {
		return false
	}

	if strings.EqualFold(contentType.Type, "text") {
		return true
	}

	subtype := strings.ToLower(contentType.Subtype)
	switch subtype {
	case "json", "xml", "x-www-form-urlencoded":
		return true
	}

	return strings.HasSuffix(subtype, "+json") || strings.HasSuffix(subtype, "+xml")
}
