package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/openrank/compute-relayer/internal/relay"
)

const getTimeout = time.Second * 5

// RelayerClient provides high level methods to work with the relayer's webserver api
type RelayerClient struct {
	host   *url.URL
	client http.Client
}

// NewRelayerClient takes a host as a single argument and returns a RelayerClient in case of well formatted host arg
// host format is <scheme>://<host>[:<port>], e.g. http://relayer.host, http://relayer.host:10001
func NewRelayerClient(host string) (*RelayerClient, error) {
	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("host parsing error: %w", err)
	}

	u.Path = ""
	u.RawQuery = ""
	return &RelayerClient{
		host: u,
		client: http.Client{
			Timeout: getTimeout,
		},
	}, nil
}

func (c RelayerClient) GetState() (State, error) {
	var res State
	err := c.do(http.MethodGet, StateResource, nil, http.StatusOK, &res)
	return res, err
}

func (c RelayerClient) GetFailedSequences() ([]relay.FailedSequence, error) {
	res := make([]relay.FailedSequence, 0)
	err := c.do(http.MethodGet, FailedSequencesResource, nil, http.StatusOK, &res)
	return res, err
}

// Retry asks the relayer to put seqNumbers back into the retry set.
func (c RelayerClient) Retry(seqNumbers ...uint64) error {
	body, err := json.Marshal(RetryRequest{SeqNumbers: seqNumbers})
	if err != nil {
		return fmt.Errorf("failed to marshal retry request: %w", err)
	}
	return c.do(http.MethodPost, RetryResource, body, http.StatusAccepted, nil)
}

func (c RelayerClient) do(method, path string, body []byte, expectedStatus int, out interface{}) error {
	u := *c.host
	u.Path = path

	req, err := http.NewRequest(method, u.String(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build http request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make http request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != expectedStatus {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return fmt.Errorf("got unexpected http response status code: %d: %s", res.StatusCode, bytes.TrimSpace(msg))
	}
	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
