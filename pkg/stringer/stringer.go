package stringer

import (
  "html"
  "regexp"
  "strings"

  "github.com/microcosm-cc/bluemonday"
  "golang.org/x/text/unicode/norm"
)

const Ellipsis = "..."

var (
  policy         = bluemonday.StrictPolicy()
  RegexRepeatSep = regexp.MustCompile(`\s{2,}`)
)

func Strip(s string) string {
  return strings.TrimSpace(s)
}

func IsEmptyStr(s string) bool {
  return Strip(s) == ""
}

// StripTags removes any markup the upstream API leaks into text fields.
func StripTags(s string) string {
  return strings.TrimSpace(policy.Sanitize(s))
}

// SanitizeString prepares upstream text for display: collapsed whitespace,
// decoded entities, NFC form so accented names render the same regardless
// of how they were entered.
func SanitizeString(s string) string {
  s = RegexRepeatSep.ReplaceAllLiteralString(s, " ")
  s = html.UnescapeString(s)
  s = norm.NFC.String(s)
  s = strings.TrimSpace(s)
  return s
}

// Truncate cuts s to at most limit runes, appending an ellipsis marker
// when anything was cut off.
func Truncate(s string, limit int) string {
  runes := []rune(s)

  if len(runes) <= limit {
    return s
  }
  return string(runes[:limit]) + Ellipsis
}
