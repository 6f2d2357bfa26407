package atlas

import "path"

// AtlasName derives the sort/display name used for a rect both by the
// MaxRects search driver's final ordering and by the manifest writer's
// per-page region ordering. When flattenPaths is set, only the
// file-name component of a slash-separated name is used.
func AtlasName(name string, flattenPaths bool) string {
	if !flattenPaths {
		return name
	}
	return path.Base(name)
}
