// Package publicurl resolves the public address of an uploaded object from
// a base-URL policy.
package publicurl

import "strings"

// Resolve joins objectPath to configuredBase when one is set, otherwise to
// fallbackBase. Trailing slashes on the base and leading slashes on the path
// collapse to exactly one separator. No escaping is applied; callers encode
// path segments themselves when the path is also used as a request URL.
func Resolve(configuredBase, objectPath, fallbackBase string) string {
	base := strings.TrimSpace(configuredBase)
	if base == "" {
		base = fallbackBase
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(objectPath, "/")
}
