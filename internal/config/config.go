// Package config loads the optional per-invocation build profile from a
// TOML file (the CLI passes `aurora.toml` in the current directory unless
// -p/--profile names another path): open, slurp, unmarshal with
// github.com/pelletier/go-toml.
package config

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pelletier/go-toml"
)

// Profile is the set of build options a profile file can override.
type Profile struct {
	Target   string `toml:"target"`
	OptLevel int    `toml:"opt-level"`
	EmitLL   bool   `toml:"emit-ll"`
}

// Default returns the profile used when no aurora.toml is present.
func Default() *Profile {
	return &Profile{
		Target:   "native",
		OptLevel: 0,
		EmitLL:   false,
	}
}

// Load reads path and merges it over Default(). A missing file is not an
// error — it just means the defaults apply. A malformed file is fatal.
func Load(path string) (*Profile, error) {
	prof := Default()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return prof, nil
		}
		return nil, fmt.Errorf("unable to open build profile at `%s`: %w", path, err)
	}
	defer f.Close()

	buf, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading build profile at `%s`: %w", path, err)
	}

	if err := toml.Unmarshal(buf, prof); err != nil {
		return nil, fmt.Errorf("error parsing build profile at `%s`: %w", path, err)
	}

	return prof, nil
}
