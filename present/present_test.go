// Copyright (C) 2025 Cohera Authors.

package present

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, path string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	HTTP().ServeHTTP(rec, req)
	return rec.Code, rec.Body.String()
}

func TestDrawText(t *testing.T) {
	code, body := get(t, "/draw?seed=1&min=1&max=10&count=4")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "5\n7\n1\n4\n", body)
}

func TestDrawJSON(t *testing.T) {
	code, body := get(t, "/draw/json?seed=1&min=1&max=10&count=4")
	require.Equal(t, http.StatusOK, code)

	var values []int64
	require.NoError(t, json.Unmarshal([]byte(body), &values))
	assert.Equal(t, []int64{5, 7, 1, 4}, values)
}

func TestDrawDefaults(t *testing.T) {
	code1, body1 := get(t, "/draw")
	code2, body2 := get(t, "/draw?seed=0&min=0&max=10&count=10")
	require.Equal(t, http.StatusOK, code1)
	require.Equal(t, code1, code2)
	assert.Equal(t, body2, body1)
}

func TestPerm(t *testing.T) {
	code, body := get(t, "/perm/json?seed=3&n=15")
	require.Equal(t, http.StatusOK, code)

	var perm []int
	require.NoError(t, json.Unmarshal([]byte(body), &perm))
	require.Len(t, perm, 15)
	seen := make([]bool, 15)
	for _, v := range perm {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 15)
		require.False(t, seen[v])
		seen[v] = true
	}

	_, again := get(t, "/perm/json?seed=3&n=15")
	assert.Equal(t, body, again)
}

func TestIDs(t *testing.T) {
	code, body := get(t, "/ids/json?seed=7&count=5")
	require.Equal(t, http.StatusOK, code)

	var ids []int64
	require.NoError(t, json.Unmarshal([]byte(body), &ids))
	require.Len(t, ids, 5)
	for _, id := range ids {
		require.GreaterOrEqual(t, id, int64(1000))
		require.Less(t, id, int64(10000))
	}
}

func TestNotFound(t *testing.T) {
	code, _ := get(t, "/nope")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = get(t, "/draw/xml")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestBadRequest(t *testing.T) {
	for _, path := range []string{
		"/draw?min=10&max=10",
		"/draw?min=10&max=1",
		"/draw?seed=banana",
		"/draw?count=-1",
		"/draw?count=2000000",
		"/perm?n=999999999",
	} {
		code, _ := get(t, path)
		assert.Equal(t, http.StatusBadRequest, code, "path %s", path)
	}
}
