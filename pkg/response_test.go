package pkg

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteResponseBytes(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteResponseBytes(rr, ContentType.JSON, []byte(`{"id":"w-1"}`), http.StatusCreated)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, ContentType.JSON, rr.Header().Get("Content-Type"))
	assert.Equal(t, `{"id":"w-1"}`, rr.Body.String())
}

func TestWriteResponse_NoContentType(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteResponse(rr, "", "plain", http.StatusTeapot)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "plain", rr.Body.String())
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSON(rr, map[string]int{"totalWorkouts": 3}, http.StatusOK)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ContentType.JSON, rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"totalWorkouts":3}`, rr.Body.String())

	// NaN has no JSON form
	rr = httptest.NewRecorder()
	WriteJSON(rr, math.NaN(), http.StatusOK)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestHasJSONBody(t *testing.T) {
	for contentType, expected := range map[string]bool{
		"application/json":                true,
		"application/json; charset=utf-8": true,
		"Application/JSON":                true,
		"text/plain":                      false,
		"":                                false,
	} {
		req := httptest.NewRequest("POST", "/workouts", nil)
		req.Header.Set("Content-Type", contentType)
		assert.Equal(t, expected, HasJSONBody(req), contentType)
	}
}
