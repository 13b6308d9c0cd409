package flatten

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/placescout-cli/internal/core/domain"
)

// Resolve walks a dot-separated field path through an arbitrary decoded
// JSON value. It returns the value at the path and whether it was found;
// a mid-walk non-object or missing key yields (nil, false, nil), never an
// error. An explicitly null leaf is found: (nil, true, nil) - absence and
// explicit null are distinguishable here even though the flattener
// renders both as nil columns.
//
// The only error condition is an invalid path: empty, or containing an
// empty segment.
func Resolve(root any, path string) (any, bool, error) {
	if path == "" {
		return nil, false, domain.ErrInvalidPath
	}

	cur := root
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			return nil, false, fmt.Errorf("%w: %q", domain.ErrInvalidPath, path)
		}
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false, nil
		}
		cur, ok = obj[seg]
		if !ok {
			return nil, false, nil
		}
	}
	return cur, true, nil
}

// lookup is the expanders' forgiving navigation: absent, invalid and
// explicit-null all collapse to nil.
func lookup(root any, path string) any {
	v, _, err := Resolve(root, path)
	if err != nil {
		return nil
	}
	return v
}
