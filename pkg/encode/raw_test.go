package encode

import (
	"bytes"
	"errors"
	httpOutputErrors "github.com/Motmedel/http_output_go/pkg/errors"
	"github.com/Motmedel/http_output_go/pkg/types/media_type"
	"github.com/Motmedel/http_output_go/pkg/types/raw_value"
	"golang.org/x/text/encoding/charmap"
	"testing"
)

func TestEncodeRawValueText(t *testing.T) {
	t.Parallel()

	t.Run("textual content type embeds the string directly", func(t *testing.T) {
		t.Parallel()

		textEntity, err := EncodeRawValue(
			raw_value.Text("héllo", "ISO-8859-1"),
			media_type.TextPlain("ISO-8859-1"),
			nil,
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !bytes.Equal(textEntity.Body, []byte("héllo")) {
			t.Errorf("got body %q, expected UTF-8 bytes of %q", textEntity.Body, "héllo")
		}
	})

	t.Run("non-textual content type re-encodes with the declared charset", func(t *testing.T) {
		t.Parallel()

		textEntity, err := EncodeRawValue(
			raw_value.Text("héllo", "ISO-8859-1"),
			media_type.ApplicationOctetStream,
			nil,
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expectedBody, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte("héllo"))
		if err != nil {
			t.Fatalf("unexpected encoder error: %v", err)
		}
		if !bytes.Equal(textEntity.Body, expectedBody) {
			t.Errorf("got body %v, expected %v", textEntity.Body, expectedBody)
		}
	})

	t.Run("unknown charset", func(t *testing.T) {
		t.Parallel()

		_, err := EncodeRawValue(
			raw_value.Text("x", "no-such-charset"),
			media_type.ApplicationOctetStream,
			nil,
		)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !errors.Is(err, httpOutputErrors.ErrUnknownCharset) {
			t.Errorf("got error %v, expected %v", err, httpOutputErrors.ErrUnknownCharset)
		}
	})
}

func TestEncodeRawValueBytes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		rawValue *raw_value.RawValue
		expected []byte
	}{
		{
			name:     "byte array",
			rawValue: raw_value.ByteArray([]byte{0xDE, 0xAD}),
			expected: []byte{0xDE, 0xAD},
		},
		{
			name:     "byte buffer",
			rawValue: raw_value.ByteBuffer(bytes.NewBufferString("buffered")),
			expected: []byte("buffered"),
		},
		{
			name:     "nil byte buffer",
			rawValue: raw_value.ByteBuffer(nil),
			expected: nil,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			fixedEntity, err := EncodeRawValue(testCase.rawValue, media_type.ApplicationOctetStream, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !bytes.Equal(fixedEntity.Body, testCase.expected) {
				t.Errorf("got body %v, expected %v", fixedEntity.Body, testCase.expected)
			}
			if fixedEntity.ContentLength == nil {
				t.Fatal("expected non-nil content length")
			}
			if *fixedEntity.ContentLength != int64(len(testCase.expected)) {
				t.Errorf(
					"got content length %d, expected %d",
					*fixedEntity.ContentLength,
					len(testCase.expected),
				)
			}
		})
	}
}

func TestEncodeRawValueFile(t *testing.T) {
	t.Parallel()

	fileEntity, err := EncodeRawValue(
		raw_value.File("/var/data/report.pdf"),
		media_type.Other("application/pdf"),
		nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fileEntity.FilePath != "/var/data/report.pdf" {
		t.Errorf("got file path %q, expected %q", fileEntity.FilePath, "/var/data/report.pdf")
	}
	// The file's length is read lazily by the transport.
	if fileEntity.ContentLength != nil {
		t.Error("expected nil content length")
	}
	if fileEntity.ContentType != "application/pdf" {
		t.Errorf("got content type %q, expected %q", fileEntity.ContentType, "application/pdf")
	}
}

func TestEncodeRawValueNil(t *testing.T) {
	t.Parallel()

	_, err := EncodeRawValue(nil, media_type.ApplicationOctetStream, nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, httpOutputErrors.ErrNilRawValue) {
		t.Errorf("got error %v, expected %v", err, httpOutputErrors.ErrNilRawValue)
	}
}
