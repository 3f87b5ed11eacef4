package output

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	// Tree characters
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// DescriptionColumn is the default column descriptions align to.
	DescriptionColumn = 30
)

// FileEntry is a created path with an optional description.
type FileEntry struct {
	Path        string
	Description string
}

// treeNode represents a node in the file tree.
type treeNode struct {
	name        string
	description string
	isDir       bool
	children    []*treeNode
}

// RenderFileTree renders entries below rootName with descriptions aligned
// at column. Paths use forward slashes; a trailing slash marks a directory.
func RenderFileTree(rootName string, entries []FileEntry, column int) string {
	if len(entries) == 0 {
		return ""
	}

	root := &treeNode{name: rootName, isDir: true}

	for _, e := range entries {
		slashed := filepath.ToSlash(e.Path)
		isDir := strings.HasSuffix(slashed, "/")
		parts := strings.Split(strings.Trim(slashed, "/"), "/")
		current := root

		for i, part := range parts {
			isLast := i == len(parts)-1

			var child *treeNode
			for _, c := range current.children {
				if c.name == part {
					child = c
					break
				}
			}

			if child == nil {
				child = &treeNode{name: part, isDir: !isLast || isDir}
				current.children = append(current.children, child)
			}

			if isLast && e.Description != "" {
				child.description = e.Description
			}

			current = child
		}
	}

	sortTree(root)

	var sb strings.Builder
	renderNode(&sb, root, "", true, true, column)
	return sb.String()
}

// sortTree recursively sorts tree nodes (directories first, then alphabetically).
func sortTree(node *treeNode) {
	sort.SliceStable(node.children, func(i, j int) bool {
		if node.children[i].isDir != node.children[j].isDir {
			return node.children[i].isDir
		}
		return node.children[i].name < node.children[j].name
	})

	for _, child := range node.children {
		sortTree(child)
	}
}

// renderNode recursively renders a tree node with indentation and styling.
func renderNode(sb *strings.Builder, node *treeNode, prefix string, isRoot, isLast bool, column int) {
	if isRoot {
		sb.WriteString(StyleBold.Render(node.name + "/"))
		sb.WriteString("\n")
	} else {
		connector := treeEdge
		if isLast {
			connector = treeLast
		}

		name := node.name
		if node.isDir {
			name += "/"
		}

		line := prefix + connector + name

		if node.description != "" {
			padding := column - len([]rune(line))
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding)
			line += StyleMuted.Render(node.description)
		}

		sb.WriteString(line)
		sb.WriteString("\n")
	}

	for i, child := range node.children {
		childIsLast := i == len(node.children)-1

		childPrefix := ""
		if !isRoot {
			if isLast {
				childPrefix = prefix + treeSpace
			} else {
				childPrefix = prefix + treeVert
			}
		}

		renderNode(sb, child, childPrefix, false, childIsLast, column)
	}
}
