package entity

import (
	"bytes"
	"errors"
	"go.uber.org/multierr"
	"strings"
	"testing"
)

func TestMakeFixed(t *testing.T) {
	t.Parallel()

	fixedEntity := MakeFixed("text/plain", []byte("ok"))
	if fixedEntity.ContentLength == nil {
		t.Fatal("expected non-nil content length")
	}
	if *fixedEntity.ContentLength != 2 {
		t.Errorf("got content length %d, expected 2", *fixedEntity.ContentLength)
	}
	if fixedEntity.IsStream() {
		t.Error("fixed entity reported as stream")
	}
}

func TestReaderStreamer(t *testing.T) {
	t.Parallel()

	input := strings.Repeat("chunked stream data. ", 1024)

	var collected bytes.Buffer
	for chunk, err := range ReaderStreamer(strings.NewReader(input)) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		collected.Write(chunk)
	}

	if collected.String() != input {
		t.Errorf("collected %d bytes, expected %d", collected.Len(), len(input))
	}
}

func TestReaderStreamerError(t *testing.T) {
	t.Parallel()

	readErr := errors.New("broken reader")
	var lastErr error
	for _, err := range ReaderStreamer(&failingReader{err: readErr}) {
		lastErr = err
	}

	if !errors.Is(lastErr, readErr) {
		t.Errorf("got error %v, expected %v", lastErr, readErr)
	}
}

func TestClose(t *testing.T) {
	t.Parallel()

	firstErr := errors.New("first close error")
	secondErr := errors.New("second close error")

	streamEntity := MakeStream(
		"application/octet-stream",
		ReaderStreamer(strings.NewReader("")),
		nil,
		&failingCloser{err: firstErr},
		&failingCloser{err: secondErr},
	)

	err := streamEntity.Close()
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	closeErrs := multierr.Errors(err)
	if len(closeErrs) != 2 {
		t.Fatalf("got %d errors, expected 2", len(closeErrs))
	}
	if !errors.Is(err, firstErr) || !errors.Is(err, secondErr) {
		t.Errorf("aggregated error %v missing a cause", err)
	}
}

func TestCloseNil(t *testing.T) {
	t.Parallel()

	var nilEntity *Entity
	if err := nilEntity.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

type failingReader struct {
	err error
}

func (reader *failingReader) Read([]byte) (int, error) {
	return 0, reader.err
}

type failingCloser struct {
	err error
}

func (closer *failingCloser) Close() error {
	return closer.err
}
