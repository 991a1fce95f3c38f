package fibonacci

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/agbru/fibiter/internal/fibonacci/mocks"
	"github.com/agbru/fibiter/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewZerologAdapter(zerolog.Nop())
}

// debugEvent runs one calculation through an Instrumented calculator that
// logs at debug level and returns the decoded log line.
func debugEvent(t *testing.T, calc Calculator, index int) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := logging.NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))
	_, _ = NewInstrumented(calc, logger).Calculate(index)

	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	return event
}

func TestNewInstrumentedNilPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewInstrumented should have panicked with a nil calculator.")
		}
	}()
	_ = NewInstrumented(nil, discardLogger())
}

func TestInstrumentedDelegates(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockCalculator(ctrl)
	mock.EXPECT().Name().Return("delegate-probe").AnyTimes()
	mock.EXPECT().Calculate(10).Return(uint64(55), nil).Times(1)

	calc := NewInstrumented(mock, discardLogger())

	if calc.Name() != "delegate-probe" {
		t.Errorf("Name() = %q, want %q", calc.Name(), "delegate-probe")
	}
	got, err := calc.Calculate(10)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if got != 55 {
		t.Errorf("Calculate() = %d, want 55", got)
	}
}

func TestInstrumentedPassesErrorsThrough(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockCalculator(ctrl)
	wantErr := &IndexError{Index: -1, Reason: "index must be non-negative"}
	mock.EXPECT().Name().Return("error-probe").AnyTimes()
	mock.EXPECT().Calculate(-1).Return(uint64(0), wantErr)

	calc := NewInstrumented(mock, discardLogger())
	_, err := calc.CalculateContext(context.Background(), -1)
	if err != wantErr {
		t.Errorf("CalculateContext() error = %v, want %v", err, wantErr)
	}
}

func TestInstrumentedRecordsMetrics(t *testing.T) {
	t.Parallel()
	const algo = "metrics-probe"
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockCalculator(ctrl)
	mock.EXPECT().Name().Return(algo).AnyTimes()
	mock.EXPECT().Calculate(5).Return(uint64(5), nil).Times(2)
	mock.EXPECT().Calculate(-5).Return(uint64(0), &IndexError{Index: -5, Reason: "index must be non-negative"})
	mock.EXPECT().Calculate(7).Return(uint64(0), errors.New("boom"))

	calc := NewInstrumented(mock, discardLogger())
	_, _ = calc.Calculate(5)
	_, _ = calc.Calculate(5)
	_, _ = calc.Calculate(-5)
	_, _ = calc.Calculate(7)

	if got := testutil.ToFloat64(calculationsTotal.WithLabelValues(algo, "success")); got != 2 {
		t.Errorf("success counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(calculationsTotal.WithLabelValues(algo, "invalid_argument")); got != 1 {
		t.Errorf("invalid_argument counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(calculationsTotal.WithLabelValues(algo, "error")); got != 1 {
		t.Errorf("error counter = %v, want 1", got)
	}
}

func TestInstrumentedLogsDebugEvent(t *testing.T) {
	t.Parallel()
	event := debugEvent(t, NewLinear(), 10)

	if event["message"] != "calculation completed" {
		t.Errorf("message = %v", event["message"])
	}
	if event["index"] != float64(10) {
		t.Errorf("index = %v, want 10", event["index"])
	}
	if event["status"] != "success" {
		t.Errorf("status = %v, want success", event["status"])
	}
	if event["result"] != float64(55) {
		t.Errorf("result = %v, want 55", event["result"])
	}
	if _, ok := event["duration"].(float64); !ok {
		t.Errorf("duration = %v, want a number", event["duration"])
	}
	if _, ok := event["error"]; ok {
		t.Errorf("successful calculation logged an error: %v", event["error"])
	}
}

func TestInstrumentedLogsRejectedIndex(t *testing.T) {
	t.Parallel()
	event := debugEvent(t, NewLinear(), -3)

	if event["status"] != "invalid_argument" {
		t.Errorf("status = %v, want invalid_argument", event["status"])
	}
	if msg, _ := event["error"].(string); msg == "" {
		t.Errorf("error = %v, want the rejection message", event["error"])
	}
	if _, ok := event["result"]; ok {
		t.Errorf("rejected calculation logged a result: %v", event["result"])
	}
}

func TestNewInstrumentedNilLogger(t *testing.T) {
	t.Parallel()
	got, err := NewInstrumented(NewLinear(), nil).Calculate(12)
	if err != nil || got != 144 {
		t.Errorf("Calculate(12) = %d, %v; want 144, nil", got, err)
	}
}

func TestStatusLabel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want string
	}{
		{nil, "success"},
		{&IndexError{Index: 100}, "invalid_argument"},
		{errors.New("other"), "error"},
	}
	for _, tt := range tests {
		if got := statusLabel(tt.err); got != tt.want {
			t.Errorf("statusLabel(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
