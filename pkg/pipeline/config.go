package pipeline

import (
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/repomap/pkg/errors"
)

// LoadOptions reads options from a TOML file:
//
//	mode = "ring"
//	diameter = 800
//	spacing = 2
//	min_size = 8
//	max_size = 160
//	formats = ["yaml"]
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults. The returned options are not validated; callers typically apply
// flag overrides first and then call [Options.ValidateAndSetDefaults].
func LoadOptions(path string) (Options, error) {
	var o Options
	md, err := toml.DecodeFile(path, &o)
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Options{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return o, nil
}
