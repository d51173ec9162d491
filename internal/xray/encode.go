package xray

import "net/url"

const googleBase = "https://www.google.com/search?q="

// SearchURL wraps a raw boolean query into a Google search URL. Spaces
// become '+' (form encoding) and quotes and operators are percent-encoded,
// so decoding the query portion reproduces the original string exactly.
// Every builder routes its final query through here.
func SearchURL(query string) string {
	return googleBase + url.QueryEscape(query)
}
