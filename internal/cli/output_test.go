package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/fibiter/pkg/models"
)

func TestPrintJSONResult(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		hex     bool
		wantHex string
	}{
		{"decimal only", false, ""},
		{"with hex", true, "0x37"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := PrintJSONResult(&buf, 10, 55, 1500*time.Nanosecond, "Linear", tt.hex); err != nil {
				t.Fatalf("PrintJSONResult() error = %v", err)
			}

			var doc models.CalculationResult
			if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
				t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
			}
			want := models.CalculationResult{N: 10, Result: 55, Hex: tt.wantHex, Duration: "1.5µs", Algorithm: "Linear"}
			if doc != want {
				t.Errorf("decoded = %+v, want %+v", doc, want)
			}
			if !tt.hex && strings.Contains(buf.String(), `"hex"`) {
				t.Errorf("hex key should be omitted, got %s", buf.String())
			}
		})
	}
}

func TestPrintJSONResultLargestValue(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := PrintJSONResult(&buf, 93, 12200160415121876738, time.Microsecond, "Linear", false); err != nil {
		t.Fatalf("PrintJSONResult() error = %v", err)
	}
	// The value must be written as an exact integer, not a float.
	if !strings.Contains(buf.String(), `"result": 12200160415121876738`) {
		t.Errorf("unexpected encoding of F(93):\n%s", buf.String())
	}
}

func TestPrintJSONError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := PrintJSONError(&buf, -1, models.ErrorKindInvalidArgument, errors.New("index must be non-negative")); err != nil {
		t.Fatalf("PrintJSONError() error = %v", err)
	}

	var doc models.ErrorResult
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.Error != models.ErrorKindInvalidArgument || doc.Message != "index must be non-negative" {
		t.Errorf("decoded = %+v", doc)
	}
	if doc.N == nil || *doc.N != -1 {
		t.Errorf("N = %v, want -1", doc.N)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPrintJSONResultWriteError(t *testing.T) {
	t.Parallel()
	err := PrintJSONResult(failingWriter{}, 1, 1, 0, "Linear", false)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("expected write error to surface, got %v", err)
	}
}
