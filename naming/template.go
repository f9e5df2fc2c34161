// Package naming builds group names from a template and recognizes them again.
package naming

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"scouting-bot/domain"
	"scouting-bot/errors"
)

const (
	// Slot is the positional slot a template must contain exactly once.
	Slot = "{0}"
	// placeholder is regex-safe so it survives QuoteMeta untouched.
	placeholder = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

type Template struct {
	raw     string
	matcher Matcher
}

// NewTemplate validates a naming template such as "Group-{0}".
// It is meant to run once at startup.
func NewTemplate(raw string) (Template, error) {
	if n := strings.Count(raw, Slot); n != 1 {
		return Template{}, fmt.Errorf("%w: template %q must contain %s exactly once, found %d",
			errors.ErrConfiguration, raw, Slot, n)
	}
	if strings.Contains(raw, placeholder) {
		return Template{}, fmt.Errorf("%w: template %q can't contain %q",
			errors.ErrConfiguration, raw, placeholder)
	}
	return Template{raw: raw, matcher: compile(raw)}, nil
}

func (t Template) String() string {
	return t.raw
}

func (t Template) Format(number domain.GroupNumber) string {
	return strings.Replace(t.raw, Slot, strconv.Itoa(int(number)), 1)
}

func (t Template) Spec(number domain.GroupNumber) domain.GroupSpec {
	return domain.GroupSpec{Number: number, Name: t.Format(number)}
}

// Matcher accepts exactly the names Format can produce, ignoring case.
type Matcher struct {
	re *regexp.Regexp
}

// Matcher returns the predicate compiled when the template was validated.
func (t Template) Matcher() Matcher {
	return t.matcher
}

func compile(raw string) Matcher {
	pattern := regexp.QuoteMeta(strings.Replace(raw, Slot, placeholder, 1))
	pattern = strings.Replace(pattern, placeholder, `\d+`, 1)
	return Matcher{re: regexp.MustCompile(`(?i)^` + pattern + `$`)}
}

func (m Matcher) Match(name string) bool {
	if m.re == nil {
		return false
	}
	return m.re.MatchString(name)
}
