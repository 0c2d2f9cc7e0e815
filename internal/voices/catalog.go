// Package voices looks up the service's published voice catalog.
package voices

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultListURL is the catalog endpoint, token included.
const DefaultListURL = "https://speech.platform.bing.com/consumer/speech/synthesize/readaloud/voices/list?trustedclienttoken=6A5AA1D4EAFF4E9FB37E23D68491D6F4"

// Voice is one catalog entry as published by the service.
type Voice struct {
	Name           string `json:"Name"`
	ShortName      string `json:"ShortName"`
	Gender         string `json:"Gender"`
	Locale         string `json:"Locale"`
	SuggestedCodec string `json:"SuggestedCodec"`
	FriendlyName   string `json:"FriendlyName"`
	Status         string `json:"Status"`
}

// Catalog fetches and filters the voice list. It keeps no state beyond its
// HTTP client; List may be called concurrently.
type Catalog struct {
	listURL string
	client  *http.Client
}

func NewCatalog(listURL string, client *http.Client) *Catalog {
	if strings.TrimSpace(listURL) == "" {
		listURL = DefaultListURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Catalog{listURL: listURL, client: client}
}

// List returns the catalog, keeping only voices whose locale contains the
// given locale substring (empty keeps all) and truncating to limit entries
// (non-positive keeps all).
func (c *Catalog) List(ctx context.Context, locale string, limit int) ([]Voice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.listURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authority", "speech.platform.bing.com")
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("User-Agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/91.0.4472.77 Safari/537.36 Edg/91.0.864.41")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch voice list: %w", err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(io.LimitReader(res.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("read voice list: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("voice list HTTP %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var all []Voice
	if err := json.Unmarshal(body, &all); err != nil {
		return nil, fmt.Errorf("decode voice list: %w", err)
	}

	out := all
	if strings.TrimSpace(locale) != "" {
		out = out[:0:0]
		for _, v := range all {
			if strings.Contains(v.Locale, locale) {
				out = append(out, v)
			}
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
