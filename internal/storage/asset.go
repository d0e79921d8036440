package storage

import (
	"fmt"
	"regexp"

	"github.com/pixil98/go-errors"
)

// CurrentVersion is the newest asset format this build can read.
const CurrentVersion = 1

var identifierPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

type ValidatingSpec interface {
	Validate() error
}

// Identifier names a catalog entry. Skills, resources and cooldowns refer to
// each other by it.
type Identifier string

func (id Identifier) String() string {
	return string(id)
}

// Asset is the on-disk envelope around a spec, in JSON or YAML.
type Asset[T ValidatingSpec] struct {
	Version    uint       `json:"version" yaml:"version" jsonschema:"minimum=1,maximum=1"`
	Identifier Identifier `json:"id" yaml:"id" jsonschema:"pattern=^[a-z0-9][a-z0-9_-]*$"`
	Spec       T          `json:"spec" yaml:"spec"`
}

func (a *Asset[T]) Id() Identifier {
	return a.Identifier
}

func (a *Asset[T]) Validate() error {
	el := errors.NewErrorList()

	switch {
	case a.Version == 0:
		el.Add(fmt.Errorf("version must be set"))
	case a.Version > CurrentVersion:
		el.Add(fmt.Errorf("version %d is newer than the supported version %d", a.Version, CurrentVersion))
	}

	switch {
	case a.Identifier == "":
		el.Add(fmt.Errorf("id must be set"))
	case !identifierPattern.MatchString(string(a.Identifier)):
		el.Add(fmt.Errorf("id %q must be lower case letters, digits, dashes and underscores", a.Identifier))
	}

	var zero T
	if any(a.Spec) == any(zero) {
		el.Add(fmt.Errorf("spec must be set"))
	} else {
		el.Add(a.Spec.Validate())
	}

	return el.Err()
}
