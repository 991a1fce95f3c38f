package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/agbru/fibiter/internal/fibonacci"
	"github.com/agbru/fibiter/internal/logging"
	"github.com/agbru/fibiter/pkg/models"
)

// handleHealth responds to health check requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, models.ErrorKindMethodNotAllowed, "Method not allowed", nil)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Algorithm: s.calc.Name(),
		Timestamp: time.Now().Unix(),
	})
}

// handleCalculate serves GET /calculate?n=<index>[&hex=true].
//
// A missing or non-integer n is a bad request. A well-formed index that the
// calculator rejects is reported as invalid_argument, also with status 400.
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, models.ErrorKindMethodNotAllowed, "Method not allowed", nil)
		return
	}

	n, hexOutput, err := parseCalculateParams(r)
	if err != nil {
		var parseErr CalculateParseError
		if errors.As(err, &parseErr) {
			s.writeErrorResponse(w, parseErr.StatusCode, models.ErrorKindBadRequest, parseErr.Message, nil)
		} else {
			s.writeErrorResponse(w, http.StatusBadRequest, models.ErrorKindBadRequest, err.Error(), nil)
		}
		return
	}

	start := time.Now()
	result, err := s.calc.CalculateContext(r.Context(), n)
	duration := time.Since(start)

	if err != nil {
		if errors.Is(err, fibonacci.ErrInvalidArgument) {
			s.writeErrorResponse(w, http.StatusBadRequest, models.ErrorKindInvalidArgument, err.Error(), &n)
			return
		}
		s.logger.Error("calculation failed", err, logging.Int("n", n))
		s.writeErrorResponse(w, http.StatusInternalServerError, models.ErrorKindInternal, "calculation failed", &n)
		return
	}

	resp := models.CalculationResult{
		N:         n,
		Result:    result,
		Duration:  duration.String(),
		Algorithm: s.calc.Name(),
	}
	if hexOutput {
		resp.Hex = "0x" + strconv.FormatUint(result, 16)
	}
	s.writeJSONResponse(w, http.StatusOK, resp)
}

// parseCalculateParams extracts the index and the optional hex switch.
// Negative indices parse successfully so the calculator can reject them.
func parseCalculateParams(r *http.Request) (n int, hexOutput bool, err error) {
	query := r.URL.Query()
	nStr := query.Get("n")
	if nStr == "" {
		return 0, false, CalculateParseError{
			Message:    "Missing 'n' parameter",
			StatusCode: http.StatusBadRequest,
		}
	}

	n, parseErr := strconv.Atoi(nStr)
	if parseErr != nil {
		return 0, false, CalculateParseError{
			Message:    "Invalid 'n' parameter: must be an integer",
			StatusCode: http.StatusBadRequest,
		}
	}

	if hexStr := query.Get("hex"); hexStr != "" {
		hexOutput, parseErr = strconv.ParseBool(hexStr)
		if parseErr != nil {
			return 0, false, CalculateParseError{
				Message:    "Invalid 'hex' parameter: must be a boolean",
				StatusCode: http.StatusBadRequest,
			}
		}
	}

	return n, hexOutput, nil
}

// writeJSONResponse writes data as JSON with the given status code.
func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("error encoding JSON response", err)
	}
}

// writeErrorResponse writes a models.ErrorResult.
func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, kind, message string, n *int) {
	s.writeJSONResponse(w, statusCode, models.ErrorResult{
		Error:   kind,
		Message: message,
		N:       n,
	})
}
