// Package registry queries a Docker-Hub-compatible registry for repository
// tags.
//
// The tags API is paginated: the first response carries the total tag count,
// and the page size is taken from the number of items actually returned.
// Responses are decoded with a JSON decoder rather than pattern matching.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// DefaultBaseURL is the public Docker Hub API endpoint.
const DefaultBaseURL = "https://hub.docker.com"

// numberedTag matches plain dotted version tags like "503" or "503.0.0".
var numberedTag = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

// Client fetches repository tags from a registry.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a Client for the public Docker Hub.
func New() *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// tagsPage is the subset of the tags-list response we read.
type tagsPage struct {
	Count   int `json:"count"`
	Results []struct {
		Name string `json:"name"`
	} `json:"results"`
}

// Tags returns the tag names of a repository, in the order the registry
// pages them (newest first on Docker Hub), filtered by the optional regexp.
// Bare repository names get the "library/" namespace. A repository with zero
// tags yields an empty, non-error result.
func (c *Client) Tags(ctx context.Context, repository string, filter *regexp.Regexp) ([]string, error) {
	repo := repository
	if !strings.Contains(repo, "/") {
		repo = "library/" + repo
	}

	first, err := c.fetchPage(ctx, repo, 1)
	if err != nil {
		return nil, err
	}
	if first.Count == 0 || len(first.Results) == 0 {
		return nil, nil
	}

	// Page count from the advertised total and the observed page size.
	perPage := len(first.Results)
	pages := first.Count / perPage
	if first.Count%perPage != 0 {
		pages++
	}

	var tags []string
	collect := func(page *tagsPage) {
		for _, r := range page.Results {
			if filter == nil || filter.MatchString(r.Name) {
				tags = append(tags, r.Name)
			}
		}
	}

	collect(first)
	for page := 2; page <= pages; page++ {
		p, err := c.fetchPage(ctx, repo, page)
		if err != nil {
			return nil, err
		}
		collect(p)
		// A short page means the listing changed under us; stop here.
		if len(p.Results) < perPage {
			break
		}
	}

	return tags, nil
}

// LatestNumbered returns the newest plain-version tag of a repository, or ""
// if the repository has no numbered tags.
func (c *Client) LatestNumbered(ctx context.Context, repository string) (string, error) {
	tags, err := c.Tags(ctx, repository, numberedTag)
	if err != nil {
		return "", err
	}
	if len(tags) == 0 {
		return "", nil
	}
	return tags[0], nil
}

func (c *Client) fetchPage(ctx context.Context, repo string, page int) (*tagsPage, error) {
	url := fmt.Sprintf("%s/v2/repositories/%s/tags?page=%d", c.BaseURL, repo, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching tags for %s: %w", repo, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching tags for %s: registry returned %s", repo, resp.Status)
	}

	var p tagsPage
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding tags response for %s: %w", repo, err)
	}

	return &p, nil
}
