package fibonacci

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/cucumber/godog"
)

// scenarioState holds the calculator and the last outcome for one scenario.
// godog builds a fresh value per scenario, so nothing leaks between them.
type scenarioState struct {
	calculator Calculator
	lastResult uint64
	lastErr    error
}

// parseExpected reads an expected value from a step. godog cannot bind
// uint64 arguments and int64 cannot hold F(93), so values arrive as text.
func parseExpected(value string) (uint64, error) {
	expected, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("expected value %q is not a uint64: %w", value, err)
	}
	return expected, nil
}

func (s *scenarioState) iHaveAFibonacciNumberCalculator() error {
	s.calculator = NewLinear()
	return nil
}

func (s *scenarioState) iCalculateTheFibonacciNumberOf(index int) error {
	if s.calculator == nil {
		return errors.New("no calculator: missing 'Given I have a Fibonacci number calculator'")
	}
	s.lastResult, s.lastErr = s.calculator.Calculate(index)
	return nil
}

func (s *scenarioState) theResultShouldBe(value string) error {
	expected, err := parseExpected(value)
	if err != nil {
		return err
	}
	if s.lastErr != nil {
		return fmt.Errorf("calculation failed: %w", s.lastErr)
	}
	if s.lastResult != expected {
		return fmt.Errorf("expected %d, got %d", expected, s.lastResult)
	}
	return nil
}

func (s *scenarioState) iCallFibonacciTheResultIs(index int, value string) error {
	if err := s.iCalculateTheFibonacciNumberOf(index); err != nil {
		return err
	}
	return s.theResultShouldBe(value)
}

func (s *scenarioState) theCalculationShouldFailWithAnInvalidArgumentError() error {
	if s.lastErr == nil {
		return fmt.Errorf("expected an invalid argument error, got result %d", s.lastResult)
	}
	if !errors.Is(s.lastErr, ErrInvalidArgument) {
		return fmt.Errorf("expected an invalid argument error, got %v", s.lastErr)
	}
	return nil
}

func initializeScenario(ctx *godog.ScenarioContext) {
	state := &scenarioState{}

	ctx.Step(`^I have a Fibonacci number calculator$`, state.iHaveAFibonacciNumberCalculator)
	ctx.Step(`^I calculate the Fibonacci number of (-?\d+)$`, state.iCalculateTheFibonacciNumberOf)
	ctx.Step(`^the result should be (\d+)$`, state.theResultShouldBe)
	ctx.Step(`^(?:I call|calling) Fibonacci\((-?\d+)\) the result (?:is|should be) (\d+)$`, state.iCallFibonacciTheResultIs)
	ctx.Step(`^the calculation should fail with an invalid argument error$`, state.theCalculationShouldFailWithAnInvalidArgumentError)
}

// TestFeatures runs the Gherkin scenarios in features/ against the calculator.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "fibonacci",
		ScenarioInitializer: initializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../features"},
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func TestStepBindingsCheckValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		index   int
		value   string
		wantErr bool
	}{
		{"Zero", 0, "0", false},
		{"Seed", 20, "6765", false},
		{"LargestIndex", MaxIndex, "12200160415121876738", false},
		{"WrongValue", 10, "56", true},
		{"NotANumber", 10, "fifty-five", true},
		{"RejectedIndex", -1, "0", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := &scenarioState{}
			_ = s.iHaveAFibonacciNumberCalculator()
			err := s.iCallFibonacciTheResultIs(tt.index, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("iCallFibonacciTheResultIs(%d, %q) error = %v, wantErr %v", tt.index, tt.value, err, tt.wantErr)
			}
		})
	}
}
