package domain

import "strings"

// Skills is a list of lower-cased skill tags.
// Membership tests are order-insensitive; duplicates are harmless.
type Skills []string

// NormalizeSkills lower-cases every tag. Tags are otherwise kept verbatim:
// " repair" and "" are distinct skills that a requirement must match exactly.
func NormalizeSkills(tags []string) Skills {
	out := make(Skills, 0, len(tags))
	for _, t := range tags {
		out = append(out, strings.ToLower(t))
	}
	return out
}

// Has reports whether tag is present, ignoring case.
func (s Skills) Has(tag string) bool {
	tag = strings.ToLower(tag)
	for _, have := range s {
		if have == tag {
			return true
		}
	}
	return false
}

// Covers reports whether s is a superset of required.
// An empty requirement is covered by any skill set.
func (s Skills) Covers(required Skills) bool {
	for _, r := range required {
		if !s.Has(r) {
			return false
		}
	}
	return true
}
