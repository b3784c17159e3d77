package clients

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestHTTPClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"type":"credit"}`, string(body))

		w.Header().Set("Retry-After", "3")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("queued"))
	}))
	defer server.Close()

	client := NewHTTPClient()
	headers := http.Header{"Content-Type": []string{"application/json"}}
	status, body, respHeaders, err := client.Post(server.URL, headers, []byte(`{"type":"credit"}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, "queued", string(body))
	assert.Equal(t, "3", respHeaders.Get("Retry-After"))
}

func TestHTTPClient_PostUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	status, _, _, err := NewHTTPClient().Post(url, nil, nil)
	assert.Error(t, err)
	assert.Zero(t, status)
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockHTTPClientI(ctrl)
	mock.EXPECT().Post("http://hook", nil, []byte("x")).Return(http.StatusOK, nil, nil, nil)

	client := NewHTTPClient()
	client.SetClient(mock)
	status, _, _, err := client.Post("http://hook", nil, []byte("x"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
}
