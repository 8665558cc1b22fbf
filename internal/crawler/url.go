package crawler

import "strings"

// ResolveIconURL absolutizes an icon src. Protocol-relative values get
// https:, root-relative values get the site origin, anything else that is
// not already http(s) is returned unchanged.
func ResolveIconURL(raw, siteURL string) string {
	if raw == "" || strings.HasPrefix(raw, "http") {
		return raw
	}
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	if strings.HasPrefix(raw, "/") {
		return siteURL + raw
	}
	return raw
}

// ResolveLinkURL absolutizes a card href. Any value starting with / gets the
// site origin prepended; there is no protocol-relative case for links, so
// "//host/x" becomes "<site>//host/x".
func ResolveLinkURL(raw, siteURL string) string {
	if raw == "" || strings.HasPrefix(raw, "http") {
		return raw
	}
	if strings.HasPrefix(raw, "/") {
		return siteURL + raw
	}
	return raw
}
