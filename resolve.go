package prettylog

import (
	"os"
	"unicode/utf8"
)

// resolveFilters treats source as the name of an environment variable and
// returns its value. When no such variable exists, or its value is not valid
// UTF-8, source itself is the directive string. A variable that is set but
// empty yields "".
func resolveFilters(source string) *string {
	if v, ok := os.LookupEnv(source); ok && utf8.ValidString(v) {
		return &v
	}
	return &source
}
