package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		statusCode int
		wantBody   string
	}{
		{
			name:       "envelope with payload",
			data:       map[string]any{"success": true, "data": []int{1, 2}},
			statusCode: http.StatusOK,
			wantBody:   `{"success":true,"data":[1,2]}`,
		},
		{
			name:       "envelope with message",
			data:       map[string]any{"success": false, "data": "Usuário não encontrado"},
			statusCode: http.StatusNotFound,
			wantBody:   `{"success":false,"data":"Usuário não encontrado"}`,
		},
		{
			name:       "created",
			data:       struct{ ID int64 }{ID: 1},
			statusCode: http.StatusCreated,
			wantBody:   `{"ID":1}`,
		},
		{
			name:       "nil",
			data:       nil,
			statusCode: http.StatusOK,
			wantBody:   `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.statusCode)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.statusCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	n, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
}
