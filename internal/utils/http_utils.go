// Package utils provides utility functions for the auth core.
// It includes helpers for HTTP handling, environment variables, and data conversion.
package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// Constants for common HTTP header values
// These are used throughout the application for consistent content type handling
const (
	HeaderContentTypeName = "Content-Type"     // Standard Content-Type header name
	HeaderContentTypeJson = "application/json" // JSON content type value
	HeaderContentTypeText = "text/plain"       // Plain text content type value
)

// CookieParams provides a structured way of passing parameters to the SetCookie method.
// It encapsulates all standard cookie attributes in a single structure for convenience.
type CookieParams struct {
	Name     string        // Name of the cookie
	Value    string        // Value of the cookie
	MaxAge   int           // Maximum age of the cookie in seconds
	Path     string        // Path for which the cookie is valid
	Domain   string        // Domain for which the cookie is valid
	Secure   bool          // Whether the cookie should be secure (only sent over HTTPS)
	HttpOnly bool          // Whether the cookie should be HTTP-only (not accessible via JavaScript)
	SameSite http.SameSite // SameSite attribute for the cookie (None, Lax, or Strict)
}

// M is a type alias for map[string]any, providing a concise way to represent
// key-value pairs used in JSON responses.
type M map[string]any

// HttpWriter is a utility struct that wraps standard http.ResponseWriter and http.Request
// to provide a more convenient fluent API for writing HTTP responses.
// It includes methods for writing JSON and error responses with chainable calls.
type HttpWriter struct {
	W          http.ResponseWriter // Underlying HTTP response writer
	R          *http.Request       // Associated HTTP request
	StatusCode int                 // HTTP status code to use for the response
	BufferSize uint                // Maximum size of request body in bytes (5MB default)
}

// NewHttpWriter creates and returns a new HttpWriter instance.
// It wraps the standard ResponseWriter and Request objects with additional functionality.
//
// Parameters:
//   - w: Standard HTTP response writer
//   - r: HTTP request object
//
// Returns:
//   - A configured HttpWriter with default status code and buffer size
func NewHttpWriter(w http.ResponseWriter, r *http.Request) *HttpWriter {
	return &HttpWriter{
		W:          w,
		R:          r,
		StatusCode: http.StatusOK,
		BufferSize: 5 * 1024 * 1024,
	}
}

// Status sets the HTTP status code for the response.
// This method supports method chaining for fluent API usage.
//
// Parameters:
//   - code: HTTP status code (e.g., http.StatusOK, http.StatusBadRequest)
//
// Returns:
//   - The HttpWriter instance for method chaining
func (hw *HttpWriter) Status(code int) *HttpWriter {
	hw.StatusCode = code // Set the status code to the struct to use it on chained operations

	// We'll write the header just once in the Json/Text/KindError methods
	return hw
}

// Json writes a JSON response to the HTTP response writer.
// It automatically includes the request ID in the response for traceability.
//
// Parameters:
//   - data: Map of data to be serialized as JSON
func (hw *HttpWriter) Json(data M) {
	// Append the request id with the original data for traceability
	if r := hw.W.Header().Get("X-Request-ID"); r != "" {
		data["request_id"] = r
	}

	// Convert data to JSON bytes
	jsonData, err := json.Marshal(data)
	if err != nil {
		// Set headers before writing status
		hw.W.Header().Set(HeaderContentTypeName, HeaderContentTypeText)
		hw.W.WriteHeader(http.StatusInternalServerError)
		hw.W.Write([]byte("Failed to marshal JSON"))
		return
	}

	// Set content type header - must be set BEFORE WriteHeader
	hw.W.Header().Set(HeaderContentTypeName, HeaderContentTypeJson)

	// Write status code that was set with Status()
	hw.W.WriteHeader(hw.StatusCode)

	// Write JSON data
	hw.W.Write(jsonData)
}

// ParseBody parses the JSON request body into the provided target struct or map.
// It validates that the request has a body and the proper Content-Type header.
//
// Parameters:
//   - body: Pointer to a struct or map where the parsed JSON will be stored
//
// Returns:
//   - error: If the request has no body, invalid content type, or parsing fails
func (hw *HttpWriter) ParseBody(body any) error {
	// Check if the body is not provided
	if hw.R.Body == nil {
		return errors.New("the request doesn't have a body")
	}

	// Check if the request doesn't have a proper JSON body
	contentType := hw.R.Header.Get(HeaderContentTypeName)
	if contentType == "" || !strings.Contains(contentType, HeaderContentTypeJson) {
		return errors.New("the request should have a proper JSON body")
	}

	raw := hw.R.Body  // Getting the raw body
	defer raw.Close() // Close the body

	decoder := json.NewDecoder(raw) // Decoding the raw body
	err := decoder.Decode(body)     // Into the actual map / struct
	if err != nil {
		return errors.New("failed to parse JSON body: " + err.Error())
	}

	return nil
}

// Text writes a plain text response to the HTTP response writer.
//
// Parameters:
//   - text: The text content to write in the response
func (hw *HttpWriter) Text(text string) {
	hw.W.Header().Set(HeaderContentTypeName, HeaderContentTypeText)
	hw.W.WriteHeader(hw.StatusCode)
	hw.W.Write([]byte(text))
}

// KindError writes the error payload shape {"kind": ..., "message": ...} with the
// given HTTP status. This replaces the plain-text Error() response the teacher used,
// since every domain failure in this service carries a stable wire tag. kind is an
// UPPER_SNAKE_CASE tag; see package apperr for the canonical set.
func (hw *HttpWriter) KindError(status int, kind string, message string) {
	hw.Status(status).Json(M{
		"kind":    kind,
		"message": message,
	})
}

// SetCookie sets a cookie in the HTTP response using the provided parameters.
// This method provides a convenient way to set cookies with all common attributes.
//
// Parameters:
//   - params: CookieParams struct containing all cookie attributes
func (hw *HttpWriter) SetCookie(params CookieParams) {
	cookie := &http.Cookie{
		Name:     params.Name,
		Value:    params.Value,
		MaxAge:   params.MaxAge,
		Path:     params.Path,
		Domain:   params.Domain,
		Secure:   params.Secure,
		HttpOnly: params.HttpOnly,
		SameSite: params.SameSite,
	}

	http.SetCookie(hw.W, cookie)
}
