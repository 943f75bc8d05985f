// Package publicurl owns the address scheme of published instances:
// the storage-side object path and the friendly public form derived
// from it. Parse is the left inverse of BuildStoragePath, so catalog
// rows can be re-rendered from whichever form a row was stored in.
package publicurl

import (
	"fmt"
	"net/url"
	"strings"
)

// ImageToSiteTool is the legacy alias tool key; friendly URLs under it
// resolve identically to the image tool's canonical form.
const ImageToSiteTool = "image-to-site"

const publicObjectPrefix = "object/public"

// BuildStoragePath returns the object path for an instance asset:
// {username}/{toolID}/{usageID} plus optional trailing parts.
func BuildStoragePath(username, toolID, usageID string, parts ...string) string {
	segs := append([]string{username, toolID, usageID}, parts...)
	return strings.Join(segs, "/")
}

// Friendly returns the stable public address for a published instance.
func Friendly(host, username, toolID, usageID string) string {
	return fmt.Sprintf("https://%s/%s/%s/%s", host, username, toolID, usageID)
}

// Parse extracts (username, toolID, usageID) from either a friendly
// URL, a raw storage object URL, or a bare storage path. Trailing
// asset segments such as index.html are ignored.
func Parse(raw string) (username, toolID, usageID string, ok bool) {
	path := raw
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", "", "", false
		}
		path = u.Path
	}
	path = strings.Trim(path, "/")

	// Raw storage URLs carry an object/public/{namespace} prefix
	// before the instance path.
	if i := strings.Index(path, publicObjectPrefix+"/"); i >= 0 {
		path = path[i+len(publicObjectPrefix)+1:]
		if j := strings.Index(path, "/"); j >= 0 {
			path = path[j+1:]
		}
	}

	segs := strings.Split(path, "/")
	if len(segs) < 3 {
		return "", "", "", false
	}
	if segs[0] == "" || segs[1] == "" || segs[2] == "" {
		return "", "", "", false
	}
	return segs[0], segs[1], segs[2], true
}
