package wpcomics

import (
	"net/http"

	"wpcomics/internal/domain"
)

const (
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	imageAccept      = "image/avif,image/webp,image/apng,image/*,*/*;q=0.8"
)

// TransformImageURL routes rawURL through the profile's image proxy when the user picked the
// proxy server option. Any other setting, or no setting at all, leaves the URL untouched.
func TransformImageURL(p Profile, rawURL string, settings domain.Settings) string {
	if settings == nil || p.Images.ProxyEndpoint == "" || p.Images.ServerSettingKey == "" {
		return rawURL
	}

	if server, ok := settings.Int(p.Images.ServerSettingKey); ok && server == p.Images.ProxyOption {
		return p.Images.ProxyEndpoint + URLEncode(rawURL)
	}

	return rawURL
}

// ModifyImageRequest decorates an outbound page image request. Sites behind vinahost
// protection reject image requests that do not look like they come from a browser.
func ModifyImageRequest(p Profile, req *http.Request) {
	if req == nil {
		return
	}

	req.Header.Set("Referer", p.BaseURL+"/")

	if p.VinahostProtection {
		if req.Header.Get("User-Agent") == "" {
			req.Header.Set("User-Agent", browserUserAgent)
		}
		req.Header.Set("Accept", imageAccept)
	}
}
