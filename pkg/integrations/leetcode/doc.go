// Package leetcode fetches public user statistics from LeetCode.
//
// A fetch is two requests: a GET of the site root, which sets the csrftoken
// cookie, and a POST of the UserInfo query to /graphql carrying that token
// in the x-csrftoken header and Cookie. The response's accepted-submission
// counts are joined with the per-difficulty question totals into a
// [stats.Profile].
//
//	client := leetcode.NewClient()
//	profile, err := client.FetchProfile(ctx, "alice")
//
// [stats.Profile]: github.com/matzehuels/statcard/pkg/core/stats.Profile
package leetcode
