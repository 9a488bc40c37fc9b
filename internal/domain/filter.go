package domain

import (
	"fmt"
	"path"
	"strings"
)

// FilterRule accepts requests by method and path pattern.
// An empty method or "any" matches every method. Path uses path.Match
// syntax; a trailing "/**" matches the prefix and everything below it.
type FilterRule struct {
	Method string
	Path   string
}

// Validate reports whether the rule can be matched.
func (r FilterRule) Validate() error {
	if r.Path == "" || !strings.HasPrefix(r.Path, "/") {
		return fmt.Errorf("%w: path %q must start with /", ErrInvalidFilter, r.Path)
	}
	if _, err := path.Match(strings.TrimSuffix(r.Path, "/**"), "/"); err != nil {
		return fmt.Errorf("%w: path %q: %v", ErrInvalidFilter, r.Path, err)
	}
	return nil
}

// Matches reports whether the rule accepts method and urlPath.
func (r FilterRule) Matches(method, urlPath string) bool {
	if r.Method != "" && !strings.EqualFold(r.Method, "any") && !strings.EqualFold(r.Method, method) {
		return false
	}
	if prefix, ok := strings.CutSuffix(r.Path, "/**"); ok {
		if urlPath == prefix {
			return true
		}
		return matchPrefix(prefix, urlPath)
	}
	ok, err := path.Match(r.Path, urlPath)
	return err == nil && ok
}

// matchPrefix matches the leading segments of urlPath against pattern.
func matchPrefix(pattern, urlPath string) bool {
	depth := strings.Count(pattern, "/")
	segments := strings.SplitN(urlPath, "/", depth+2)
	if len(segments) < depth+2 {
		return false
	}
	head := strings.Join(segments[:depth+1], "/")
	ok, err := path.Match(pattern, head)
	return err == nil && ok
}

// FilterSet is an ordered list of accept rules.
type FilterSet []FilterRule

// Allows reports whether any rule accepts the request.
func (f FilterSet) Allows(method, urlPath string) bool {
	for _, rule := range f {
		if rule.Matches(method, urlPath) {
			return true
		}
	}
	return false
}
