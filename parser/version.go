package parser

import (
	"github.com/Masterminds/semver/v3"
)

// GrammarVersion is the revision of the pattern grammar this package accepts.
// Pattern collections can pin a range of it in their configuration.
var GrammarVersion = semver.MustParse("0.3.0")
