package field

import (
	"errors"
	"fmt"
	httpOutputErrors "github.com/Motmedel/http_output_go/pkg/errors"
	httpOutputTypesResponse "github.com/Motmedel/http_output_go/pkg/types/response"
	"github.com/google/go-cmp/cmp"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		headerName  string
		headerValue string
		expected    *httpOutputTypesResponse.HeaderEntry
		expectedErr error
	}{
		{
			name:        "simple header",
			headerName:  "X-Id",
			headerValue: "42",
			expected:    &httpOutputTypesResponse.HeaderEntry{Name: "X-Id", Value: "42"},
		},
		{
			name:        "value with internal spaces",
			headerName:  "User-Agent",
			headerValue: "curl/8.4.0 (x86_64-pc-linux-gnu)",
			expected:    &httpOutputTypesResponse.HeaderEntry{Name: "User-Agent", Value: "curl/8.4.0 (x86_64-pc-linux-gnu)"},
		},
		{
			name:        "value with optional whitespace trimmed",
			headerName:  "X-Trimmed",
			headerValue: "  padded value\t",
			expected:    &httpOutputTypesResponse.HeaderEntry{Name: "X-Trimmed", Value: "padded value"},
		},
		{
			name:        "empty value",
			headerName:  "X-Empty",
			headerValue: "",
			expected:    &httpOutputTypesResponse.HeaderEntry{Name: "X-Empty", Value: ""},
		},
		{
			name:        "token characters in name",
			headerName:  "X-Custom_Header.v2",
			headerValue: "ok",
			expected:    &httpOutputTypesResponse.HeaderEntry{Name: "X-Custom_Header.v2", Value: "ok"},
		},
		{
			name:        "empty name",
			headerName:  "",
			headerValue: "x",
			expectedErr: httpOutputErrors.ErrHeaderParse,
		},
		{
			name:        "space in name",
			headerName:  "Bad Name",
			headerValue: "x",
			expectedErr: httpOutputErrors.ErrHeaderParse,
		},
		{
			name:        "control character in value",
			headerName:  "X-Bad",
			headerValue: "a\nb",
			expectedErr: httpOutputErrors.ErrHeaderParse,
		},
		{
			name:        "carriage return in value",
			headerName:  "X-Bad",
			headerValue: "a\rb",
			expectedErr: httpOutputErrors.ErrHeaderParse,
		},
		{
			name:        "non-ascii value",
			headerName:  "X-Accent",
			headerValue: "café",
			expectedErr: httpOutputErrors.ErrHeaderParse,
		},
		{
			name:        "non-ascii name",
			headerName:  "X-Höjd",
			headerValue: "42",
			expectedErr: httpOutputErrors.ErrHeaderParse,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			headerEntry, err := Parse(testCase.headerName, testCase.headerValue)
			if testCase.expectedErr != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, testCase.expectedErr) {
					t.Fatalf("got error %v, expected %v", err, testCase.expectedErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if diff := cmp.Diff(testCase.expected, headerEntry); diff != "" {
				t.Errorf("Parse() mismatch (-expected +got):\n%s", diff)
			}
		})
	}
}

// Accepted pairs serialize back to an equivalent wire form.
func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	testCases := [][2]string{
		{"X-Id", "42"},
		{"Cache-Control", "no-store"},
		{"X-Forwarded-For", "203.0.113.9, 198.51.100.4"},
		{"Content-Type", "text/plain; charset=UTF-8"},
	}

	for _, testCase := range testCases {
		t.Run(testCase[0], func(t *testing.T) {
			t.Parallel()

			headerEntry, err := Parse(testCase[0], testCase[1])
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			expectedWireForm := fmt.Sprintf("%s: %s", testCase[0], testCase[1])
			wireForm := fmt.Sprintf("%s: %s", headerEntry.Name, headerEntry.Value)
			if wireForm != expectedWireForm {
				t.Errorf("got wire form %q, expected %q", wireForm, expectedWireForm)
			}
		})
	}
}
