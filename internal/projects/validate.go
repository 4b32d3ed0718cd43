package projects

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrEmptyID          = errors.New("empty id")
	ErrDuplicateID      = errors.New("duplicate id")
	ErrEmptyName        = errors.New("empty name")
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidURL       = errors.New("invalid url")
	ErrInvalidLogo      = errors.New("invalid logo")
)

// ValidationError reports a single problem with the record at Index.
type ValidationError struct {
	Index int
	ID    string
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("project %d (%s): %s: %v", e.Index, e.ID, e.Field, e.Err)
	}
	return fmt.Sprintf("project %d: %s: %v", e.Index, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// validate checks every record and returns all problems joined together,
// or nil when the sequence is well formed.
func validate(records []Project) error {
	var errs []error
	seen := make(map[string]int, len(records))

	fail := func(i int, p Project, field string, err error) {
		errs = append(errs, &ValidationError{Index: i, ID: p.ID, Field: field, Err: err})
	}

	for i, p := range records {
		switch {
		case strings.TrimSpace(p.ID) == "":
			fail(i, p, "id", ErrEmptyID)
		default:
			if first, ok := seen[p.ID]; ok {
				fail(i, p, "id", fmt.Errorf("%w: already used by project %d", ErrDuplicateID, first))
			} else {
				seen[p.ID] = i
			}
		}

		if strings.TrimSpace(p.Name) == "" {
			fail(i, p, "name", ErrEmptyName)
		}
		if strings.TrimSpace(p.Description) == "" {
			fail(i, p, "description", ErrEmptyDescription)
		}
		if err := checkURL(p.Deployed.URL); err != nil {
			fail(i, p, "deployedLink", err)
		}
		if err := checkURL(p.GitHub.URL); err != nil {
			fail(i, p, "githubLink", err)
		}
		if err := checkLogo(p.Logo); err != nil {
			fail(i, p, "logo", err)
		}
	}

	return errors.Join(errs...)
}

// checkURL accepts absolute http(s) URLs and same-document anchors.
func checkURL(raw string) error {
	if strings.HasPrefix(raw, "#") {
		if strings.ContainsAny(raw, " \t\n") {
			return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
		}
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q is not an absolute http(s) url", ErrInvalidURL, raw)
	}
	return nil
}

func checkLogo(l Logo) error {
	if !strings.HasPrefix(l.Path, "/") {
		return fmt.Errorf("%w: path %q must be rooted", ErrInvalidLogo, l.Path)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidLogo, l.Width, l.Height)
	}
	return nil
}
