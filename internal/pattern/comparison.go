package pattern

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dlclark/regexp2"
)

// Type selects how a Comparison interprets its pattern. Bit 0 anchors the
// start, bit 1 anchors the end.
type Type int

const (
	Contains   Type = 0
	StartsWith Type = 1 << 0
	EndsWith   Type = 1 << 1
	EqualsTo   Type = StartsWith | EndsWith
	Regex      Type = 4
)

const caseInsensitiveFlag = "(?i)"

const (
	// MatchTimeout bounds a single match so a backtracking-heavy expression
	// cannot stall a redraw
	MatchTimeout = 100 * time.Millisecond

	maxCachedExpressions = 256
)

// expressions caches compiled expressions by final pattern
var expressions = struct {
	sync.Mutex
	byPattern map[string]*regexp2.Regexp
}{byPattern: make(map[string]*regexp2.Regexp)}

// compileExpression returns the cached expression for pattern, compiling it
// on first use. Failed compiles are not cached.
func compileExpression(pattern string) (*regexp2.Regexp, error) {
	expressions.Lock()
	defer expressions.Unlock()

	if re, ok := expressions.byPattern[pattern]; ok {
		return re, nil
	}
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = MatchTimeout

	if len(expressions.byPattern) >= maxCachedExpressions {
		clear(expressions.byPattern)
	}
	expressions.byPattern[pattern] = re
	return re, nil
}

// ErrInvalidPattern is returned when a regex pattern does not compile
var ErrInvalidPattern = errors.New("invalid pattern")

// String returns a display name for the comparison type
func (t Type) String() string {
	switch t {
	case Contains:
		return "Contains"
	case StartsWith:
		return "Starts With"
	case EndsWith:
		return "Ends With"
	case EqualsTo:
		return "Equals To"
	case Regex:
		return "Regex"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Types lists every comparison type in menu order
func Types() []Type {
	return []Type{Contains, StartsWith, EndsWith, EqualsTo, Regex}
}

// Comparison matches strings against a user supplied pattern
type Comparison struct {
	Type          Type   `json:"comparisonType"`
	CaseSensitive bool   `json:"caseSensitive"`
	Pattern       string `json:"comparisonPattern"`
}

// New creates a comparison of the given type
func New(t Type, pattern string, caseSensitive bool) Comparison {
	return Comparison{Type: t, Pattern: pattern, CaseSensitive: caseSensitive}
}

// FinalPattern returns the expression that is actually matched. Regex mode
// returns the pattern untouched.
func (c Comparison) FinalPattern() string {
	if c.Type == Regex {
		return c.Pattern
	}

	var b strings.Builder
	if c.Type&StartsWith != 0 {
		b.WriteByte('^')
	}
	if !c.CaseSensitive {
		b.WriteString(caseInsensitiveFlag)
	}
	b.WriteString(regexp2.Escape(c.Pattern))
	if c.Type&EndsWith != 0 {
		b.WriteByte('$')
	}
	return b.String()
}

func (c Comparison) compile() (*regexp2.Regexp, error) {
	re, err := compileExpression(c.FinalPattern())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re, nil
}

// IsMatch reports whether input matches. An empty pattern never matches.
func (c Comparison) IsMatch(input string) bool {
	if c.Pattern == "" {
		return false
	}
	re, err := c.compile()
	if err != nil {
		return false
	}
	ok, err := re.MatchString(input)
	return err == nil && ok
}

// MatchAll matches every input against one compiled expression
func (c Comparison) MatchAll(inputs []string) []bool {
	results := make([]bool, len(inputs))
	if c.Pattern == "" {
		return results
	}
	re, err := c.compile()
	if err != nil {
		return results
	}
	for i, input := range inputs {
		ok, err := re.MatchString(input)
		results[i] = err == nil && ok
	}
	return results
}

// IsValid reports whether pattern compiles and can be run. Empty patterns are
// invalid.
func IsValid(pattern string) bool {
	if pattern == "" {
		return false
	}
	re, err := compileExpression(pattern)
	if err != nil {
		return false
	}
	_, err = re.MatchString("")
	return err == nil
}

// SetType switches the comparison mode. Entering regex mode rewrites the
// pattern into its final form so behaviour is unchanged.
func (c *Comparison) SetType(t Type) {
	if c.Type == t {
		return
	}
	if t == Regex {
		c.Pattern = c.FinalPattern()
	}
	c.Type = t
}

// SetPattern replaces the pattern. In regex mode an invalid pattern is
// rejected and the previous one kept.
func (c *Comparison) SetPattern(pattern string) error {
	if c.Type == Regex && !IsValid(pattern) {
		return fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}
	c.Pattern = pattern
	return nil
}

// ExitRegexMode converts a regex back into a literal comparison, deriving the
// anchoring from ^ and $ and the case sensitivity from the (?i) flag.
func (c *Comparison) ExitRegexMode() {
	p := c.Pattern
	starts := strings.HasPrefix(p, "^")
	ends := strings.HasSuffix(p, "$") && len(p) > 0 && !(starts && len(p) == 1)

	switch {
	case starts && ends:
		c.Type = EqualsTo
	case starts:
		c.Type = StartsWith
	case ends:
		c.Type = EndsWith
	default:
		c.Type = Contains
	}

	if starts {
		p = p[1:]
	}
	if ends {
		p = p[:len(p)-1]
	}

	stripped := strings.ReplaceAll(p, caseInsensitiveFlag, "")
	c.CaseSensitive = stripped == p

	if unescaped, err := regexp2.Unescape(stripped); err == nil {
		stripped = unescaped
	}
	c.Pattern = stripped
}

// MatchesAny reports whether any comparison matches input
func MatchesAny(comparisons []Comparison, input string) bool {
	for _, c := range comparisons {
		if c.IsMatch(input) {
			return true
		}
	}
	return false
}
