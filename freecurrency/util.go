package freecurrency

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const userAgent = "fbarcalc/1.0.0 https://github.com/mfinelli/fbarcalc"

// identifying transport sets the project User-Agent on every request, as
// freecurrencyapi.com asks its callers to do.
type identifying struct {
	base http.RoundTripper
}

func (t *identifying) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", userAgent)
	return t.base.RoundTrip(req)
}

// NewClient returns the http.Client to use against the provider.
func NewClient() *http.Client {
	client := new(http.Client)
	client.Transport = &identifying{base: http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request to the given address and unmarshals the
// JSON response body into the provided data structure. It uses the provided
// http.Client for the request.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
