// Package integrations provides HTTP clients for the services a stat card
// depends on.
//
// Each upstream has its own subpackage:
//
//   - [leetcode]: public profile statistics over GraphQL
//   - [nanofont]: base64 WOFF2 font payloads served as JSON
//
// Both build on [Client], which applies default headers, classifies
// responses (404 as [ErrNotFound], transport failures and 5xx as retryable
// [ErrNetwork]) and can cache decoded JSON on disk through
// [httputil.Cache]. [Classify] turns these errors into coded errors from
// pkg/errors for the CLI and HTTP layers.
//
// [leetcode]: github.com/matzehuels/statcard/pkg/integrations/leetcode
// [nanofont]: github.com/matzehuels/statcard/pkg/integrations/nanofont
// [httputil.Cache]: github.com/matzehuels/statcard/pkg/httputil.Cache
package integrations
