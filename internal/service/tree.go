package service

import (
	"strings"

	"github.com/dropspace/dropspace/internal/model"
)

// RootPrefix is the fixed pathname prefix of every root folder. A
// pathname whose parent segment equals this prefix addresses a root
// folder; everything else is a nested folder.
const RootPrefix = "/folders"

// parentPath returns the pathname with its final segment stripped.
func parentPath(pathname string) string {
	i := strings.LastIndex(pathname, "/")
	if i <= 0 {
		return ""
	}
	return pathname[:i]
}

func isRootPath(pathname string) bool {
	return parentPath(pathname) == RootPrefix
}

func lastSegment(pathname string) string {
	return pathname[strings.LastIndex(pathname, "/")+1:]
}

// encodeName makes a display name safe for use as a pathname segment.
func encodeName(name string) string {
	return strings.ReplaceAll(name, " ", "%20")
}

// descendants computes the descendant closure of pathname over the
// user's complete folder list: every folder whose parent prefix equals
// the current pathname is collected, then its own subtree. The target
// itself is not included. Terminates because a child's pathname is
// always strictly longer than its parent's.
func descendants(pathname string, folders []*model.Folder) (ids []string, paths []string) {
	for _, folder := range folders {
		if parentPath(folder.Pathname) != pathname {
			continue
		}
		ids = append(ids, folder.ID)
		paths = append(paths, folder.Pathname)

		childIDs, childPaths := descendants(folder.Pathname, folders)
		ids = append(ids, childIDs...)
		paths = append(paths, childPaths...)
	}
	return ids, paths
}

// subtreeFiles returns the files living directly in the target folder
// or in any folder of its descendant closure.
func subtreeFiles(target string, closure []string, files []*model.File) []*model.File {
	paths := make(map[string]bool, len(closure)+1)
	paths[target] = true
	for _, p := range closure {
		paths[p] = true
	}

	var matched []*model.File
	for _, file := range files {
		if paths[file.Pathname] {
			matched = append(matched, file)
		}
	}
	return matched
}
