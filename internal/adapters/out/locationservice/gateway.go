// Package locationservice resolves location-group parent links against the
// remote location service over HTTP.
package locationservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"routing/internal/core/domain/model/location"
	"routing/internal/pkg/errs"
)

const (
	DefaultTimeout = 5 * time.Second

	acceptHeader = "application/hal+json, application/json"
	maxBodyBytes = 1 << 20
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status %d", e.Code)
	}
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

// representation accepts both HAL (_links object) and the list form (links array).
type representation struct {
	Name  string `json:"name"`
	Links struct {
		Parent *struct {
			Href string `json:"href"`
		} `json:"_parent"`
	} `json:"_links"`
	LinkList []struct {
		Rel  string `json:"rel"`
		Href string `json:"href"`
	} `json:"links"`
}

func (r representation) parentHref() string {
	if r.Links.Parent != nil && r.Links.Parent.Href != "" {
		return r.Links.Parent.Href
	}
	for _, l := range r.LinkList {
		if l.Rel == location.ParentRel {
			return l.Href
		}
	}
	return ""
}

// HTTPGateway implements ports.LocationGroupGateway. One FetchParent is one GET;
// nothing is cached or retried.
type HTTPGateway struct {
	client  *http.Client
	timeout time.Duration
}

// NewHTTPGateway uses DefaultTimeout when timeout is not positive and
// http.DefaultClient when client is nil.
func NewHTTPGateway(client *http.Client, timeout time.Duration) *HTTPGateway {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPGateway{client: client, timeout: timeout}
}

// FetchParent follows link and decodes the location group it points to. Every
// failure, including 404, is an errs.RemoteLookupFailedError for link's href.
func (g *HTTPGateway) FetchParent(ctx context.Context, link location.Link) (*location.LocationGroup, error) {
	if err := link.Validate(); err != nil {
		return nil, errs.NewRemoteLookupFailedError("", err)
	}

	group, err := g.fetch(ctx, link.Href())
	if err != nil {
		return nil, errs.NewRemoteLookupFailedError(link.Href(), err)
	}
	return group, nil
}

func (g *HTTPGateway) fetch(ctx context.Context, href string) (*location.LocationGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, href, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		statusErr := &httpStatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
		if resp.StatusCode == http.StatusNotFound {
			return nil, errors.Join(errs.NewObjectNotFoundError("href", href), statusErr)
		}
		return nil, statusErr
	}

	var rep representation
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&rep); err != nil {
		return nil, fmt.Errorf("decode location group: %w", err)
	}
	if rep.Name == "" {
		return nil, errs.NewValueIsRequiredError("location group name")
	}

	parentHref := rep.parentHref()
	if parentHref == "" {
		return location.NewRootLocationGroup(rep.Name)
	}

	parentHref, err = absolute(href, parentHref)
	if err != nil {
		return nil, err
	}
	parent, err := location.NewParentLink(parentHref)
	if err != nil {
		return nil, err
	}
	return location.NewLocationGroup(rep.Name, parent)
}

// absolute resolves a relative parent href against the URL it was read from.
func absolute(base, href string) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("parent href", err)
	}
	if ref.IsAbs() {
		return href, nil
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("href", err)
	}
	return baseURL.ResolveReference(ref).String(), nil
}
