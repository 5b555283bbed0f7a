package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/l3aro/go-langsurvey/internal/output"
	"github.com/l3aro/go-langsurvey/internal/scanner"
	"github.com/l3aro/go-langsurvey/pkg/language"
)

// TreeNode represents a node in the file tree for JSON output
type TreeNode struct {
	Name     string      `json:"name"`
	Path     string      `json:"path"`
	Type     string      `json:"type"` // "file" or "directory"
	Language string      `json:"language,omitempty"`
	Children []*TreeNode `json:"children,omitempty"`
}

// treeFile is a file found under the tree root
type treeFile struct {
	rel      string // slash-separated, relative to root
	full     string
	language string
}

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Display the file tree with each file's language",
	Long:  `Shows a tree view of every regular file under the given path, annotated with its language.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("getting absolute path: %w", err)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		files, err := collectTree(absPath, scanner.Options{FollowSymlinks: cfg.FollowSymlinks}, language.Default())
		if err != nil {
			return fmt.Errorf("scanning directory: %w", err)
		}

		tree := buildTree(absPath, files)

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return output.WriteJSON(cmd.OutOrStdout(), tree)
		}
		printTree(cmd.OutOrStdout(), tree, "", true, true)
		return nil
	},
}

func init() {
	treeCmd.Flags().BoolP("json", "j", false, "Output as JSON")
}

func collectTree(root string, opts scanner.Options, table *language.Table) ([]treeFile, error) {
	var files []treeFile
	err := scanner.New(opts).Walk(root, func(path string) error {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		name, _ := table.Classify(path)
		files = append(files, treeFile{
			rel:      filepath.ToSlash(rel),
			full:     path,
			language: name,
		})
		return nil
	})
	return files, err
}

// buildTree builds a tree structure from file list
func buildTree(root string, files []treeFile) *TreeNode {
	rootNode := &TreeNode{
		Name: filepath.Base(root),
		Path: root,
		Type: "directory",
	}

	dirs := make(map[string]*TreeNode)

	for _, file := range files {
		parts := strings.Split(file.rel, "/")
		current := rootNode

		for i, part := range parts {
			if i == len(parts)-1 {
				current.Children = append(current.Children, &TreeNode{
					Name:     part,
					Path:     file.full,
					Type:     "file",
					Language: file.language,
				})
				break
			}

			dirPath := strings.Join(parts[:i+1], "/")
			child, ok := dirs[dirPath]
			if !ok {
				child = &TreeNode{
					Name:     part,
					Path:     filepath.Join(root, filepath.FromSlash(dirPath)),
					Type:     "directory",
					Children: []*TreeNode{},
				}
				current.Children = append(current.Children, child)
				dirs[dirPath] = child
			}
			current = child
		}
	}

	sortTree(rootNode)

	return rootNode
}

// sortTree sorts tree nodes (directories first, then alphabetically)
func sortTree(node *TreeNode) {
	sort.SliceStable(node.Children, func(i, j int) bool {
		if node.Children[i].Type != node.Children[j].Type {
			return node.Children[i].Type == "directory"
		}
		return node.Children[i].Name < node.Children[j].Name
	})

	for _, child := range node.Children {
		if child.Type == "directory" {
			sortTree(child)
		}
	}
}

func printTree(w io.Writer, node *TreeNode, prefix string, isLast, isRoot bool) {
	if isRoot {
		fmt.Fprintf(w, "%s/\n", node.Name)
	} else {
		connector := "├── "
		if isLast {
			connector = "└── "
		}
		if node.Type == "file" {
			lang := ""
			if node.Language != "" {
				lang = " (" + node.Language + ")"
			}
			fmt.Fprintf(w, "%s%s%s%s\n", prefix, connector, node.Name, lang)
		} else {
			fmt.Fprintf(w, "%s%s%s/\n", prefix, connector, node.Name)
		}

		if isLast {
			prefix += "    "
		} else {
			prefix += "│   "
		}
	}

	for i, child := range node.Children {
		printTree(w, child, prefix, i == len(node.Children)-1, false)
	}
}
