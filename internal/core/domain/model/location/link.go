package location

import (
	"errors"
	"fmt"
	"net/url"

	"routing/internal/pkg/errs"
	"routing/internal/pkg/guard"
)

// ParentRel is the relation name the location service uses for the parent group.
const ParentRel = "_parent"

var ErrLinkIsNotConstructed = errors.New("Link must be created via NewLink constructor")

// Link is a hypermedia reference. Href is followed as-is, never constructed.
type Link struct {
	rel   string
	href  string
	guard guard.ConstructorGuard
}

// NewLink requires a relation name and an absolute http(s) href.
func NewLink(rel, href string) (Link, error) {
	if rel == "" {
		return Link{}, errs.NewValueIsRequiredError("rel")
	}
	if href == "" {
		return Link{}, errs.NewValueIsRequiredError("href")
	}
	u, err := url.Parse(href)
	if err != nil {
		return Link{}, errs.NewValueIsInvalidErrorWithCause("href", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Link{}, errs.NewValueIsInvalidErrorWithCause("href", fmt.Errorf("unsupported scheme %q", u.Scheme))
	}
	if u.Host == "" {
		return Link{}, errs.NewValueIsInvalidErrorWithCause("href", errors.New("host is missing"))
	}
	return Link{rel: rel, href: href, guard: guard.NewConstructorGuard()}, nil
}

// NewParentLink is NewLink with ParentRel.
func NewParentLink(href string) (Link, error) {
	return NewLink(ParentRel, href)
}

func (l Link) Rel() string {
	return l.rel
}

func (l Link) Href() string {
	return l.href
}

func (l Link) Validate() error {
	return l.guard.Validate(ErrLinkIsNotConstructed)
}
