package pipeline

import "strings"

// PlatformDomain identifies articles hosted on the publishing platform.
const PlatformDomain = "mp.weixin.qq.com"

// IsPlatformLink reports whether url points at a platform article.
// Platform articles can be linked from inside the editor; any other URL is
// shown as plain text. The check is a case-insensitive substring test, so
// "https://evil.example/?mp.weixin.qq.com" also matches.
func IsPlatformLink(url string) bool {
	if url == "" {
		return false
	}
	return strings.Contains(strings.ToLower(url), PlatformDomain)
}
