package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"sort"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

// ValidationRule describes the JSON shape of one body field. Semantic checks
// (address format, positive amounts, supported frequencies) belong to the
// service layer.
type ValidationRule struct {
	Field     string
	Type      string // "string" or "integer"
	MaxLength int
	Min       *int64
	Max       *int64
}

// ValidationConfig holds validation rules for an endpoint
type ValidationConfig struct {
	Rules              []ValidationRule
	MaxBodySize        int64
	AllowUnknownFields bool
}

// ValidationError is a single rejected field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the 400 body written by ValidateInput
type ValidationErrors struct {
	Error  string            `json:"error"`
	Errors []ValidationError `json:"errors"`
}

// ValidateInput rejects bodies that are too large, not a JSON object, carry
// unknown fields, or hold values of the wrong JSON type.
func ValidateInput(config ValidationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.MaxBodySize > 0 && c.Request.ContentLength > config.MaxBodySize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("Request body too large. Maximum size: %d bytes", config.MaxBodySize),
			})
			return
		}

		reader := io.Reader(c.Request.Body)
		if config.MaxBodySize > 0 {
			reader = io.LimitReader(reader, config.MaxBodySize+1)
		}
		raw, err := io.ReadAll(reader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Unable to read request body"})
			return
		}
		if config.MaxBodySize > 0 && int64(len(raw)) > config.MaxBodySize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("Request body too large. Maximum size: %d bytes", config.MaxBodySize),
			})
			return
		}

		var body map[string]interface{}
		if err := json.Unmarshal(raw, &body); err != nil || body == nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON in request body"})
			return
		}

		if errs := validateFields(body, config.Rules, config.AllowUnknownFields); len(errs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrors{
				Error:  "Invalid request body",
				Errors: errs,
			})
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		c.Next()
	}
}

func validateFields(data map[string]interface{}, rules []ValidationRule, allowUnknown bool) []ValidationError {
	var errs []ValidationError
	known := make(map[string]bool, len(rules))

	for _, rule := range rules {
		known[rule.Field] = true
		value, exists := data[rule.Field]
		if !exists || value == nil {
			continue
		}

		var err error
		switch rule.Type {
		case "string":
			err = validateString(value, rule)
		case "integer":
			err = validateInteger(value, rule)
		}
		if err != nil {
			errs = append(errs, ValidationError{Field: rule.Field, Message: err.Error()})
		}
	}

	if !allowUnknown {
		var unknown []string
		for field := range data {
			if !known[field] {
				unknown = append(unknown, field)
			}
		}
		sort.Strings(unknown)
		for _, field := range unknown {
			errs = append(errs, ValidationError{Field: field, Message: "unknown field"})
		}
	}

	return errs
}

func validateString(value interface{}, rule ValidationRule) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if rule.MaxLength > 0 && utf8.RuneCountInString(str) > rule.MaxLength {
		return fmt.Errorf("must be at most %d characters long", rule.MaxLength)
	}
	return nil
}

func validateInteger(value interface{}, rule ValidationRule) error {
	num, ok := value.(float64)
	if !ok || num != math.Trunc(num) {
		return fmt.Errorf("must be an integer")
	}
	if rule.Min != nil && num < float64(*rule.Min) {
		return fmt.Errorf("must be at least %d", *rule.Min)
	}
	if rule.Max != nil && num > float64(*rule.Max) {
		return fmt.Errorf("must be at most %d", *rule.Max)
	}
	return nil
}

func int64Ptr(v int64) *int64 {
	return &v
}
