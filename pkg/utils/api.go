package utils

import (
	"encoding/json"
	"net/http"
	"time"
)

// API is a small JSON-over-HTTP helper for metadata endpoints. The
// response status is not inspected; callers judge the decoded payload.
type API struct {
	client *http.Client
}

func NewAPI(timeout time.Duration) *API {
	return &API{client: &http.Client{Timeout: timeout}}
}

func (a *API) Get(url string, v any) error {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(v)
}
