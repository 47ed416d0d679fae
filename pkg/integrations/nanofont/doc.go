// Package nanofont resolves card fonts from a CDN of JSON-wrapped WOFF2
// subsets.
//
// Each font key maps to `<base>/<key>.json` holding the family name and a
// base64 payload. Payloads rarely change, so they are cached on disk with a
// long TTL through [httputil.Cache].
//
// [httputil.Cache]: github.com/matzehuels/statcard/pkg/httputil.Cache
package nanofont
