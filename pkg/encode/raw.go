package encode

import (
	"fmt"
	httpOutputErrors "github.com/Motmedel/http_output_go/pkg/errors"
	"github.com/Motmedel/http_output_go/pkg/types/entity"
	"github.com/Motmedel/http_output_go/pkg/types/media_type"
	"github.com/Motmedel/http_output_go/pkg/types/raw_value"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"golang.org/x/text/encoding/ianaindex"
	"io"
	"strings"
)

// EncodeRawValue converts a typed raw value and its media type into a wire
// entity. The known content length only matters for stream values, where it
// selects between a length-annotated and a chunked representation.
func EncodeRawValue(
	rawValue *raw_value.RawValue,
	mediaType media_type.MediaType,
	contentLength *int64,
) (*entity.Entity, error) {
	if rawValue == nil {
		return nil, motmedelErrors.MakeErrorWithStackTrace(httpOutputErrors.ErrNilRawValue)
	}

	contentType, err := mediaType.ContentType()
	if err != nil {
		return nil, fmt.Errorf("media type content type: %w", err)
	}
	contentTypeString := media_type.Format(contentType)

	switch rawValue.Kind {
	case raw_value.KindText:
		if media_type.IsTextual(contentType) {
			return entity.MakeFixed(contentTypeString, []byte(rawValue.Text)), nil
		}

		encodedText, err := encodeCharset(rawValue.Text, rawValue.Charset)
		if err != nil {
			return nil, fmt.Errorf("encode charset: %w", err)
		}
		return entity.MakeFixed(contentTypeString, encodedText), nil
	case raw_value.KindByteArray:
		return entity.MakeFixed(contentTypeString, rawValue.Bytes), nil
	case raw_value.KindByteBuffer:
		var data []byte
		if buffer := rawValue.Buffer; buffer != nil {
			data = buffer.Bytes()
		}
		return entity.MakeFixed(contentTypeString, data), nil
	case raw_value.KindByteStream:
		return streamEntity(contentTypeString, rawValue.Stream, contentLength)
	case raw_value.KindFile:
		return entity.MakeFile(contentTypeString, rawValue.FilePath), nil
	case raw_value.KindMultipart:
		return encodeMultipart(rawValue, contentType)
	default:
		return nil, motmedelErrors.MakeErrorWithStackTrace(
			fmt.Errorf("%w: kind %d", httpOutputErrors.ErrUnsupportedBodyType, rawValue.Kind),
			rawValue,
		)
	}
}

func encodeStream(
	stream io.Reader,
	mediaType media_type.MediaType,
	contentLength *int64,
) (*entity.Entity, error) {
	contentType, err := mediaType.ContentType()
	if err != nil {
		return nil, fmt.Errorf("media type content type: %w", err)
	}
	return streamEntity(media_type.Format(contentType), stream, contentLength)
}

func streamEntity(contentTypeString string, stream io.Reader, contentLength *int64) (*entity.Entity, error) {
	if stream == nil {
		return nil, motmedelErrors.MakeErrorWithStackTrace(httpOutputErrors.ErrNilStream)
	}

	var closers []io.Closer
	if closer, ok := stream.(io.Closer); ok {
		closers = append(closers, closer)
	}

	return entity.MakeStream(contentTypeString, entity.ReaderStreamer(stream), contentLength, closers...), nil
}

func encodeCharset(text string, charset string) ([]byte, error) {
	if charset == "" || strings.EqualFold(charset, "UTF-8") {
		return []byte(text), nil
	}

	charsetEncoding, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return nil, motmedelErrors.MakeError(
			fmt.Errorf("%w: ianaindex encoding: %w", httpOutputErrors.ErrUnknownCharset, err),
			charset,
		)
	}
	if charsetEncoding == nil {
		return nil, motmedelErrors.MakeErrorWithStackTrace(httpOutputErrors.ErrUnknownCharset, charset)
	}

	encodedText, err := charsetEncoding.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, motmedelErrors.MakeError(fmt.Errorf("charset encoder bytes: %w", err), text)
	}

	return encodedText, nil
}
