package whttp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrUnexpectedStatus is returned when the server answers with anything but 200.
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

type WHTTPHeader struct {
	Name  string
	Value string
}

type WHTTPReq struct {
	URL     string
	Method  string
	Headers []WHTTPHeader
}

type WHTTPRes struct {
	StatusCode int
	Body       []byte
}

// NewClient builds a client that never retries: a failed fetch aborts the run.
func NewClient(proxy string) (*retryablehttp.Client, error) {
	client := retryablehttp.NewClient()
	client.Logger = log.New(io.Discard, "", 0)
	client.RetryMax = 0
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	if proxy != "" {
		proxyURL, err := url.Parse(proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL: %v", err)
		}
		client.HTTPClient.Transport = &http.Transport{
			Proxy: http.ProxyURL(proxyURL),
		}
	}
	return client, nil
}

func SendHTTPRequest(ctx context.Context, wReq *WHTTPReq, client *retryablehttp.Client) (*WHTTPRes, error) {
	method := wReq.Method
	if method == "" {
		method = http.MethodGet
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, wReq.URL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "lookalike")
	req.Header.Set("Accept", "text/plain, */*")
	for _, h := range wReq.Headers {
		req.Header.Add(h.Name, h.Value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &WHTTPRes{StatusCode: resp.StatusCode, Body: body}, nil
}

// Fetch downloads rawURL once and returns its body.
func Fetch(ctx context.Context, rawURL, proxy string) ([]byte, error) {
	client, err := NewClient(proxy)
	if err != nil {
		return nil, err
	}
	res, err := SendHTTPRequest(ctx, &WHTTPReq{URL: rawURL}, client)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %w: %d", rawURL, ErrUnexpectedStatus, res.StatusCode)
	}
	return res.Body, nil
}
