package leetcode

import (
	"github.com/matzehuels/statcard/pkg/core/stats"
	"github.com/matzehuels/statcard/pkg/errors"
)

type variables struct {
	ID string `json:"id"`
}

type request struct {
	Query     string    `json:"query"`
	Variables variables `json:"variables"`
}

type response struct {
	Data   data `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type data struct {
	Problems    []count      `json:"problems"`
	MatchedUser *matchedUser `json:"matchedUser"`
}

type count struct {
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
	Submissions int    `json:"submissions"`
}

type matchedUser struct {
	Username string `json:"username"`
	Profile  struct {
		RealName string  `json:"realname"`
		Country  *string `json:"country"`
		Ranking  int     `json:"ranking"`
	} `json:"profile"`
	SubmitStats struct {
		AcSubmissionNum []count `json:"acSubmissionNum"`
	} `json:"submitStats"`
	UserCalendar *struct {
		Streak int `json:"streak"`
	} `json:"userCalendar"`
}

// profile joins accepted counts with question totals by difficulty label.
func (d data) profile(username string) (*stats.Profile, error) {
	u := d.MatchedUser
	if u == nil {
		return nil, errors.New(errors.ErrCodeNotFound, "user %q does not exist", username)
	}

	totals := make(map[stats.Difficulty]int, len(d.Problems))
	for _, p := range d.Problems {
		diff, err := stats.ParseDifficulty(p.Difficulty)
		if err != nil {
			return nil, err
		}
		totals[diff] = p.Count
	}

	p := &stats.Profile{
		Username: u.Username,
		RealName: u.Profile.RealName,
		Ranking:  u.Profile.Ranking,
	}
	if u.Profile.Country != nil {
		p.Country = *u.Profile.Country
	}
	if u.UserCalendar != nil {
		p.Streak = u.UserCalendar.Streak
	}
	for _, s := range u.SubmitStats.AcSubmissionNum {
		diff, err := stats.ParseDifficulty(s.Difficulty)
		if err != nil {
			return nil, err
		}
		total, ok := totals[diff]
		if !ok {
			return nil, errors.New(errors.ErrCodeMissingStat, "no question total for %s", diff)
		}
		p.Items = append(p.Items, stats.StatItem{
			Difficulty:  diff,
			Solved:      s.Count,
			Total:       total,
			Submissions: s.Submissions,
		})
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
