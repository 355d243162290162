// Package ignore decides which candidate files are excluded from a run
package ignore

import (
	gitignore "github.com/denormal/go-gitignore"

	"github.com/mjeanroy/eslint/internal/utils"
)

// DefaultIgnoreFile is the ignore-pattern source looked up under the
// resolution root when no explicit location is configured.
const DefaultIgnoreFile = ".eslintignore"

// Filter answers whether a path is excluded by the loaded rule set.
// Filter state is immutable once constructed for the run.
type Filter struct {
	// The core gitignore object compiled from the rule source
	rules gitignore.GitIgnore

	rootDir    string
	ignorePath string
	patterns   []string
	disabled   bool
	log        utils.Logger
}

// Config holds configuration options for the ignore filter
type Config struct {
	RootDir    string
	IgnorePath string
	Patterns   []string
	Disabled   bool
	Logger     utils.Logger
}
