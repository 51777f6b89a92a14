package client

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHTTPClient(t *testing.T) {
	c, err := CreateHTTPClient("")
	require.NoError(t, err)
	assert.Equal(t, timeout, c.Timeout)

	c, err = CreateHTTPClient("http://localhost:8080")
	require.NoError(t, err)
	require.NotNil(t, c.Transport)

	_, err = CreateHTTPClient("://bad")
	assert.Error(t, err)
}

func TestSearchHeaders(t *testing.T) {
	h := SearchHeaders()
	assert.Equal(t, UserAgent, h.Get("User-Agent"))
	assert.Equal(t, SearchReferer, h.Get("Referer"))
}

func TestReadResponseBody(t *testing.T) {
	plain := &http.Response{
		Header: http.Header{},
		Body:   io.NopCloser(bytes.NewBufferString(`{"data":{}}`)),
	}
	body, err := ReadResponseBody(plain)
	require.NoError(t, err)
	assert.Equal(t, `{"data":{}}`, string(body))

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err = zw.Write([]byte(`{"data":{"list":[]}}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	gz := &http.Response{
		Header: http.Header{"Content-Encoding": []string{"gzip"}},
		Body:   io.NopCloser(&buf),
	}
	body, err = ReadResponseBody(gz)
	require.NoError(t, err)
	assert.Equal(t, `{"data":{"list":[]}}`, string(body))

	broken := &http.Response{
		Header: http.Header{"Content-Encoding": []string{"gzip"}},
		Body:   io.NopCloser(bytes.NewBufferString("not gzip")),
	}
	_, err = ReadResponseBody(broken)
	assert.Error(t, err)
}
