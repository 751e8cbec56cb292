package category

import "strings"

// Category is a dispatch key using dot notation.
// Examples: "queue.closed", "buffer.saved", "error.like"
type Category string

// Separator is the character used to separate category segments.
const Separator = "."

// String returns the category as a string.
func (c Category) String() string {
	return string(c)
}

// Segments returns the category split by the separator.
func (c Category) Segments() []string {
	if c == "" {
		return nil
	}
	return strings.Split(string(c), Separator)
}

// Base returns the last segment of the category.
//
// Example: "queue.closed" -> "closed"
func (c Category) Base() string {
	s := string(c)
	idx := strings.LastIndex(s, Separator)
	if idx < 0 {
		return s
	}
	return s[idx+1:]
}

// IsValid returns true if the category is valid.
// A valid category:
//   - Is not empty
//   - Does not start or end with a separator
//   - Does not contain empty segments or whitespace
func (c Category) IsValid() bool {
	s := string(c)
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, Separator) || strings.HasSuffix(s, Separator) {
		return false
	}
	if strings.Contains(s, Separator+Separator) {
		return false
	}
	return !strings.ContainsAny(s, " \t\n")
}

// Join joins multiple segments into a category.
func Join(segments ...string) Category {
	return Category(strings.Join(segments, Separator))
}

// FromString creates a Category from a string.
// This is mainly for clarity when converting from string literals.
func FromString(s string) Category {
	return Category(s)
}
