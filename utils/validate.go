package utils

import (
	"net/url"
	"strings"
)

// ValidURL 只接受带 host 的 http/https 链接
func ValidURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
