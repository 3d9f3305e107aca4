package testutils

import (
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

type RequestArgs struct {
	Router *gin.Engine
	Method string
	URL    string
	Body   io.Reader
}

type RequestOptions struct {
	Headers map[string]string
}

// WithHeader добавляет заголовок к тестовому запросу.
func WithHeader(key, value string) func(*RequestOptions) {
	return func(o *RequestOptions) {
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}
		o.Headers[key] = value
	}
}

// MakeRequest прогоняет запрос через роутер без поднятия сервера.
func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) (*http.Response, error) {
	var options RequestOptions
	for _, opt := range opts {
		opt(&options)
	}

	req, reqErr := http.NewRequest(args.Method, args.URL, args.Body) //nolint:noctx
	if reqErr != nil {
		return nil, reqErr //nolint:wrapcheck
	}
	for key, value := range options.Headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	args.Router.ServeHTTP(recorder, req)
	return recorder.Result(), nil
}
