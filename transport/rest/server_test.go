package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rocketscienceinc/snakesladders-backend/internal/view"
	"github.com/rocketscienceinc/snakesladders-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_Ping(t *testing.T) {
	_, st := suite.New(t)
	server := New(st.Logger)

	// When: GET /ping is called
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	// Then: pong is returned
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
}

func TestServer_Board(t *testing.T) {
	_, st := suite.New(t)
	server := New(st.Logger)

	// When: GET /board is called
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/board", nil))

	// Then: the board layout is returned as JSON
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var board view.BoardView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&board))

	assert.Equal(t, view.NewBoardView(), board)
}

func TestServer_UnknownRoute(t *testing.T) {
	_, st := suite.New(t)
	server := New(st.Logger)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/board", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
