package encode

import (
	"bytes"
	"errors"
	"fmt"
	httpOutputErrors "github.com/Motmedel/http_output_go/pkg/errors"
	"github.com/Motmedel/http_output_go/pkg/types/entity"
	"github.com/Motmedel/http_output_go/pkg/types/raw_value"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	motmedelHttpTypes "github.com/Motmedel/utils_go/pkg/http/types"
	"github.com/google/uuid"
	"io"
	"iter"
	"log/slog"
	"mime/multipart"
	"os"
	"strings"
)

const filePartBufferSize = 32 * 1024

func encodeMultipart(
	rawValue *raw_value.RawValue,
	contentType *motmedelHttpTypes.ContentType,
) (*entity.Entity, error) {
	partCodecs := rawValue.PartCodecs
	if partCodecs == nil {
		return nil, motmedelErrors.MakeErrorWithStackTrace(httpOutputErrors.ErrNilPartCodecLookup)
	}

	var bodyParts []*BodyPart
	for _, part := range rawValue.Parts {
		if part == nil {
			continue
		}

		partCodec := partCodecs(part.Name)
		if partCodec == nil {
			// Parts with unknown names are dropped, not rejected.
			continue
		}

		bodyPart, err := EncodePart(part, partCodec)
		if err != nil {
			return nil, motmedelErrors.MakeError(fmt.Errorf("encode part: %w", err), part.Name)
		}
		bodyParts = append(bodyParts, bodyPart)
	}

	boundary := strings.ReplaceAll(uuid.New().String(), "-", "")
	multipartContentType := fmt.Sprintf("%s; boundary=%s", contentType.GetFullType(false), boundary)

	var hasFilePart bool
	for _, bodyPart := range bodyParts {
		if bodyPart.Entity.FilePath != "" {
			hasFilePart = true
			break
		}
	}

	// File parts are read lazily; their presence forces a stream entity.
	if hasFilePart {
		return entity.MakeStream(multipartContentType, multipartStreamer(boundary, bodyParts), nil), nil
	}

	buffer := &bytes.Buffer{}
	writer := multipart.NewWriter(buffer)
	if err := writer.SetBoundary(boundary); err != nil {
		return nil, motmedelErrors.MakeError(fmt.Errorf("multipart writer set boundary: %w", err), boundary)
	}

	for _, bodyPart := range bodyParts {
		partWriter, err := writer.CreatePart(bodyPart.MimeHeader())
		if err != nil {
			return nil, motmedelErrors.MakeError(
				fmt.Errorf("multipart writer create part: %w", err),
				bodyPart.Name,
			)
		}
		if _, err := partWriter.Write(bodyPart.Entity.Body); err != nil {
			return nil, motmedelErrors.MakeError(fmt.Errorf("part writer write: %w", err), bodyPart.Name)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, motmedelErrors.MakeError(fmt.Errorf("multipart writer close: %w", err))
	}

	return entity.MakeFixed(multipartContentType, buffer.Bytes()), nil
}

func multipartStreamer(boundary string, bodyParts []*BodyPart) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		buffer := &bytes.Buffer{}
		writer := multipart.NewWriter(buffer)
		if err := writer.SetBoundary(boundary); err != nil {
			yield(nil, motmedelErrors.MakeError(fmt.Errorf("multipart writer set boundary: %w", err), boundary))
			return
		}

		flush := func() bool {
			if buffer.Len() == 0 {
				return true
			}
			data := bytes.Clone(buffer.Bytes())
			buffer.Reset()
			return yield(data, nil)
		}

		for _, bodyPart := range bodyParts {
			partWriter, err := writer.CreatePart(bodyPart.MimeHeader())
			if err != nil {
				yield(nil, motmedelErrors.MakeError(
					fmt.Errorf("multipart writer create part: %w", err),
					bodyPart.Name,
				))
				return
			}

			if filePath := bodyPart.Entity.FilePath; filePath != "" {
				if !copyFilePart(partWriter, filePath, flush, yield) {
					return
				}
			} else {
				if _, err := partWriter.Write(bodyPart.Entity.Body); err != nil {
					yield(nil, motmedelErrors.MakeError(fmt.Errorf("part writer write: %w", err), bodyPart.Name))
					return
				}
			}

			if !flush() {
				return
			}
		}

		if err := writer.Close(); err != nil {
			yield(nil, motmedelErrors.MakeError(fmt.Errorf("multipart writer close: %w", err)))
			return
		}
		flush()
	}
}

func copyFilePart(
	partWriter io.Writer,
	filePath string,
	flush func() bool,
	yield func([]byte, error) bool,
) bool {
	file, err := os.Open(filePath)
	if err != nil {
		yield(nil, motmedelErrors.MakeError(fmt.Errorf("os open: %w", err), filePath))
		return false
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Warn(fmt.Sprintf("close multipart part file: %v", err))
		}
	}()

	buffer := make([]byte, filePartBufferSize)
	for {
		n, err := file.Read(buffer)
		if n > 0 {
			if _, err := partWriter.Write(buffer[:n]); err != nil {
				yield(nil, motmedelErrors.MakeError(fmt.Errorf("part writer write: %w", err), filePath))
				return false
			}
			if !flush() {
				return false
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return true
			}
			yield(nil, motmedelErrors.MakeError(fmt.Errorf("file read: %w", err), filePath))
			return false
		}
	}
}
