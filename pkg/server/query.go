package server

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/matzehuels/statcard/pkg/config"
	"github.com/matzehuels/statcard/pkg/core/extension"
	"github.com/matzehuels/statcard/pkg/errors"
	"github.com/matzehuels/statcard/pkg/pipeline"
)

// ParseQuery lays the query parameters of a card request over base.
//
// Recognized keys, matched case-insensitively:
//
//	username   required
//	width      positive integer
//	height     positive integer
//	font       catalog key or family
//	theme      one theme, or "light,dark" pair; entries past the second are dropped
//	animation  true/false, invalid values are ignored
//	ext        "animation"; unknown names are ignored
//	strict     true/false
//
// Other keys are ignored.
func ParseQuery(q url.Values, base pipeline.Config) (pipeline.Config, error) {
	cfg := base
	for rawKey, values := range q {
		if len(values) == 0 {
			continue
		}
		value := values[len(values)-1]
		var err error
		switch strings.ToLower(rawKey) {
		case "username":
			cfg = cfg.WithUsername(strings.TrimSpace(value))
		case "width":
			var n int
			if n, err = dimension("width", value); err == nil {
				cfg = cfg.WithWidth(n)
			}
		case "height":
			var n int
			if n, err = dimension("height", value); err == nil {
				cfg = cfg.WithHeight(n)
			}
		case "font":
			cfg, err = config.ApplyFont(cfg, value)
		case "theme":
			cfg, err = config.ApplyThemes(cfg, themeList(value))
		case "animation":
			if on, perr := strconv.ParseBool(value); perr == nil {
				cfg = cfg.WithAnimation(on)
			}
		case "ext":
			for _, name := range strings.Split(value, ",") {
				if ext, ok := namedExtension(name); ok {
					cfg = cfg.WithExtension(ext)
				}
			}
		case "strict":
			on, perr := strconv.ParseBool(value)
			if perr != nil {
				err = errors.New(errors.ErrCodeInvalidInput, "strict must be true or false, got %q", value)
			}
			cfg = cfg.WithStrict(on)
		}
		if err != nil {
			return base, err
		}
	}
	if cfg.Username() == "" {
		return base, errors.New(errors.ErrCodeInvalidInput, "missing username parameter")
	}
	return cfg, nil
}

func dimension(field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s must be an integer, got %q", field, value)
	}
	if err := errors.ValidateDimension(field, n); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid %s", field)
	}
	return n, nil
}

func themeList(value string) []string {
	var names []string
	for _, name := range strings.Split(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) > config.MaxThemes {
		names = names[:config.MaxThemes]
	}
	return names
}

func namedExtension(name string) (extension.Extension, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "animation":
		return extension.Animation{}, true
	}
	return nil, false
}
