package wpcomics

import (
	"net/url"
	"strings"
)

// URLEncode percent-encodes free text for use in a path segment or query value.
// Spaces become %20 so the result decodes the same way in both places.
func URLEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func hostOf(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	return strings.ToLower(u.Hostname()), nil
}

func hostAllowed(host string, allowedHosts []string) bool {
	host = strings.ToLower(strings.TrimSpace(host))
	for _, allowed := range allowedHosts {
		allowed = strings.ToLower(strings.TrimSpace(allowed))
		if allowed == "" {
			continue
		}
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}

	return false
}

// relativeID strips the site origin from href so ids stay stable across mirror domains.
// Links to foreign hosts are kept as they are.
func (p *Profile) relativeID(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}

	u, err := url.Parse(href)
	if err != nil || !u.IsAbs() {
		if strings.HasPrefix(href, "/") {
			return href
		}
		return "/" + href
	}

	if !hostAllowed(u.Hostname(), p.AllowedHosts) {
		return href
	}

	id := u.EscapedPath()
	if u.RawQuery != "" {
		id += "?" + u.RawQuery
	}

	return id
}

// absoluteURL resolves an id or href against the base URL.
func (p *Profile) absoluteURL(ref string) string {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(ref, "//") {
		return "https:" + ref
	}

	u, err := url.Parse(ref)
	if err == nil && u.IsAbs() {
		return ref
	}

	if strings.HasPrefix(ref, "/") {
		return p.BaseURL + ref
	}

	return p.BaseURL + "/" + ref
}
