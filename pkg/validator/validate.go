package validator

import (
  "fmt"
  "net/url"
)

// URL accepts absolute http(s) URLs only. Values land inside rendered
// markup, so schemes like javascript: are rejected outright.
func URL(value string) error {
  parsed, err := url.ParseRequestURI(value)
  if err != nil {
    return fmt.Errorf("url.ParseRequestURI: %w", err)
  }

  if parsed.Scheme != "http" && parsed.Scheme != "https" {
    return fmt.Errorf("unsupported url scheme: %q", parsed.Scheme)
  }
  if parsed.Host == "" {
    return fmt.Errorf("url without a host: %q", value)
  }

  return nil
}
