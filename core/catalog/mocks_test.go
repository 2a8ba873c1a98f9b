// ABOUTME: Hand-rolled test doubles for the catalog repository tests
// ABOUTME: Function-field mocks so each test configures only what it needs

package catalog

import (
	"context"
	"io"
	"strings"

	"podcasts-app-api/core/interfaces"
)

type mockHTTPClient struct {
	getFunc  func(ctx context.Context, url string) (interfaces.Response, error)
	postFunc func(ctx context.Context, url string, body io.Reader) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	if m.postFunc != nil {
		return m.postFunc(ctx, url, body)
	}
	return nil, nil
}

type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return m.headers[key]
}

func jsonResponse(status int, body string) *mockResponse {
	return &mockResponse{
		statusCode: status,
		body:       body,
		headers:    map[string]string{"Content-Type": "application/json"},
	}
}
