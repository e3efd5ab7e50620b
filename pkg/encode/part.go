package encode

import (
	"fmt"
	httpOutputErrors "github.com/Motmedel/http_output_go/pkg/errors"
	"github.com/Motmedel/http_output_go/pkg/parsing/field"
	"github.com/Motmedel/http_output_go/pkg/types/entity"
	"github.com/Motmedel/http_output_go/pkg/types/raw_value"
	httpOutputTypesResponse "github.com/Motmedel/http_output_go/pkg/types/response"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"mime"
	"net/textproto"
	"strconv"
)

// BodyPart is an encoded multipart part: the part's name, its validated
// headers, its disposition parameters, and its wire entity.
type BodyPart struct {
	Name                  string
	Headers               []*httpOutputTypesResponse.HeaderEntry
	DispositionParameters map[string]string
	Entity                *entity.Entity
}

func (bodyPart *BodyPart) MimeHeader() textproto.MIMEHeader {
	mimeHeader := make(textproto.MIMEHeader)

	dispositionParameters := map[string]string{"name": bodyPart.Name}
	for key, value := range bodyPart.DispositionParameters {
		dispositionParameters[key] = value
	}
	mimeHeader.Set("Content-Disposition", mime.FormatMediaType("form-data", dispositionParameters))

	if partEntity := bodyPart.Entity; partEntity != nil && partEntity.ContentType != "" {
		mimeHeader.Set("Content-Type", partEntity.ContentType)
	}

	for _, headerEntry := range bodyPart.Headers {
		canonicalName := textproto.CanonicalMIMEHeaderKey(headerEntry.Name)
		switch canonicalName {
		// Framing headers are owned by the part encoder.
		case "Content-Type", "Content-Disposition", "Content-Length":
			continue
		}
		mimeHeader.Add(canonicalName, headerEntry.Value)
	}

	return mimeHeader
}

// EncodePart encodes one named raw part using the codec metadata matched to
// its name. Part bodies must have an in-part representation; streams and
// nested multipart values are rejected.
func EncodePart(part *raw_value.Part, partCodec *raw_value.PartCodec) (*BodyPart, error) {
	if part == nil {
		return nil, motmedelErrors.MakeErrorWithStackTrace(httpOutputErrors.ErrNilPart)
	}
	if partCodec == nil {
		return nil, motmedelErrors.MakeErrorWithStackTrace(httpOutputErrors.ErrNilPartCodec)
	}

	partBody := part.Body
	if partBody == nil {
		return nil, motmedelErrors.MakeErrorWithStackTrace(httpOutputErrors.ErrNilRawValue, part.Name)
	}

	switch partBody.Kind {
	case raw_value.KindByteStream, raw_value.KindMultipart:
		return nil, motmedelErrors.MakeErrorWithStackTrace(
			fmt.Errorf("%w: part body kind %d", httpOutputErrors.ErrUnsupportedBodyType, partBody.Kind),
			part.Name,
		)
	}

	var headerEntries []*httpOutputTypesResponse.HeaderEntry
	var declaredContentLength *int64
	var contentTypeOverride string

	for _, rawHeader := range part.Headers {
		headerEntry, err := field.Parse(rawHeader[0], rawHeader[1])
		if err != nil {
			return nil, motmedelErrors.MakeError(fmt.Errorf("field parse: %w", err), rawHeader)
		}
		headerEntries = append(headerEntries, headerEntry)

		switch textproto.CanonicalMIMEHeaderKey(headerEntry.Name) {
		case "Content-Length":
			// An unparseable declared length is treated as absent.
			if contentLength, err := strconv.ParseInt(headerEntry.Value, 10, 64); err == nil {
				declaredContentLength = &contentLength
			}
		case "Content-Type":
			contentTypeOverride = headerEntry.Value
		}
	}

	partEntity, err := EncodeRawValue(partBody, partCodec.MediaType, declaredContentLength)
	if err != nil {
		return nil, fmt.Errorf("encode raw value: %w", err)
	}

	if contentTypeOverride != "" {
		if err := validateContentType(contentTypeOverride); err != nil {
			return nil, fmt.Errorf("validate content type: %w", err)
		}
		partEntity.ContentType = contentTypeOverride
	}

	return &BodyPart{
		Name:                  part.Name,
		Headers:               headerEntries,
		DispositionParameters: part.DispositionParameters,
		Entity:                partEntity,
	}, nil
}
