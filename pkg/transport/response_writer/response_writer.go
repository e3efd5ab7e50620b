package response_writer

import (
	"fmt"
	httpOutputErrors "github.com/Motmedel/http_output_go/pkg/errors"
	httpOutputTypesResponse "github.com/Motmedel/http_output_go/pkg/types/response"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
)

// WriteResponse serializes a finalized response onto an http.ResponseWriter.
// Fixed and file entities are written with a Content-Length; stream entities
// with a known length are copied through; unbounded streams are framed as
// chunked and flushed per chunk. The entity's handles are closed here, since
// their ownership passed to the entity at encode time.
func WriteResponse(
	responseWriter http.ResponseWriter,
	builtResponse *httpOutputTypesResponse.Response,
) error {
	if builtResponse == nil {
		return nil
	}

	if responseWriter == nil {
		return motmedelErrors.MakeErrorWithStackTrace(httpOutputErrors.ErrNilResponseWriter)
	}

	responseEntity := builtResponse.Entity
	responseWriterHeader := responseWriter.Header()

	for _, headerEntry := range builtResponse.Headers {
		if headerEntry == nil || headerEntry.Name == "" {
			continue
		}

		canonicalHeaderName := http.CanonicalHeaderKey(headerEntry.Name)

		// With an entity present, framing headers are derived from the entity:
		// its content type already carries any override, and its length (or
		// absence of one) decides Content-Length versus chunked.
		if responseEntity != nil {
			switch canonicalHeaderName {
			case "Content-Type", "Content-Length", "Transfer-Encoding":
				continue
			}
		}

		responseWriterHeader.Add(canonicalHeaderName, headerEntry.Value)
	}

	statusCode := builtResponse.StatusCode

	if responseEntity == nil {
		if statusCode != 0 {
			responseWriter.WriteHeader(statusCode)
		}
		return nil
	}

	defer func() {
		if err := responseEntity.Close(); err != nil {
			slog.Warn(fmt.Sprintf("close response entity: %v", err))
		}
	}()

	if contentType := responseEntity.ContentType; contentType != "" {
		responseWriterHeader.Set("Content-Type", contentType)
	}

	if filePath := responseEntity.FilePath; filePath != "" {
		return writeFile(responseWriter, statusCode, filePath)
	}

	if bodyStreamer := responseEntity.BodyStreamer; bodyStreamer != nil {
		if contentLength := responseEntity.ContentLength; contentLength != nil {
			responseWriterHeader.Set("Content-Length", strconv.FormatInt(*contentLength, 10))
			if statusCode != 0 {
				responseWriter.WriteHeader(statusCode)
			}

			for bodyChunk, err := range bodyStreamer {
				if err != nil {
					return fmt.Errorf("body streamer: %w", err)
				}
				if _, err := responseWriter.Write(bodyChunk); err != nil {
					return motmedelErrors.MakeError(fmt.Errorf("response writer write: %w", err))
				}
			}

			return nil
		}

		flusher, ok := responseWriter.(http.Flusher)
		if !ok {
			return httpOutputErrors.ErrNoResponseWriterFlusher
		}

		responseWriterHeader.Set("Transfer-Encoding", "chunked")
		if statusCode != 0 {
			responseWriter.WriteHeader(statusCode)
		}

		for bodyChunk, err := range bodyStreamer {
			if err != nil {
				return fmt.Errorf("body streamer: %w", err)
			}
			if _, err := responseWriter.Write(bodyChunk); err != nil {
				return motmedelErrors.MakeError(fmt.Errorf("response writer write: %w", err))
			}
			flusher.Flush()
		}

		return nil
	}

	responseWriterHeader.Set("Content-Length", strconv.Itoa(len(responseEntity.Body)))
	if statusCode != 0 {
		responseWriter.WriteHeader(statusCode)
	}
	if _, err := responseWriter.Write(responseEntity.Body); err != nil {
		return motmedelErrors.MakeError(fmt.Errorf("response writer write: %w", err))
	}

	return nil
}

// The file's length is read here, not at encode time.
func writeFile(responseWriter http.ResponseWriter, statusCode int, filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return motmedelErrors.MakeError(fmt.Errorf("os open: %w", err), filePath)
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Warn(fmt.Sprintf("close response file: %v", err))
		}
	}()

	fileInfo, err := file.Stat()
	if err != nil {
		return motmedelErrors.MakeError(fmt.Errorf("file stat: %w", err), filePath)
	}

	responseWriter.Header().Set("Content-Length", strconv.FormatInt(fileInfo.Size(), 10))
	if statusCode != 0 {
		responseWriter.WriteHeader(statusCode)
	}

	if _, err := io.Copy(responseWriter, file); err != nil {
		return motmedelErrors.MakeError(fmt.Errorf("io copy: %w", err), filePath)
	}

	return nil
}
