package imageurl

import (
  neturl "net/url"
  "strings"
)

const (
  cloudinaryHost   = "res.cloudinary.com"
  uploadSegment    = "/upload/"
  deliveryVariant  = "/upload/w_500,q_auto,f_auto/"
)

// Downscale rewrites Cloudinary delivery URLs to request a smaller
// auto-format variant. Other hosts pass through untouched.
func Downscale(url string) string {
  parsed, err := neturl.Parse(url)
  if err != nil {
    return url
  }

  if !strings.Contains(parsed.Host, cloudinaryHost) {
    return url
  }
  if !strings.Contains(parsed.Path, uploadSegment) {
    return url
  }

  return strings.Replace(url, uploadSegment, deliveryVariant, 1)
}
