// Package httputil provides the file cache and retry helpers shared by the
// upstream clients in pkg/integrations.
//
// [Cache] keeps JSON payloads on disk (by default in ~/.cache/statcard/),
// which matters most for font payloads: they are large, rarely change and
// are needed on every render.
//
//	c, err := httputil.NewCache("", 7*24*time.Hour)
//	fonts := c.Namespace("font:")
//	var payload fonts.Resolved
//	if ok, _ := fonts.Get("baloo_2", &payload); !ok {
//	    payload = fetch()
//	    fonts.Set("baloo_2", payload)
//	}
//
// [Retry] re-runs an operation whose error is wrapped with [Retryable],
// doubling the delay between attempts. Clients wrap network failures and 5xx
// responses; 4xx responses are returned as-is.
//
// The cache is cleared by `statcard cache clear` or by deleting the
// directory.
package httputil
