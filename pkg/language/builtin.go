package language

import "sync"

// builtinEntries is the built-in table. Order is significant: for an
// extension listed more than once, the earlier entry wins.
//
// Entries are roughly alphabetical. The historical desktop table's languages
// (Assembly, C, C++, C#, CG, CSS, GLSL, Go, HLSL, HTML, Ini, JSON, Java,
// JavaScript, Lua, MATLAB, Makefile, Markdown, MaxScript, Objective-C, Perl,
// PHP, Python, R, Ruby, Rust, Shaderlab, Shell, SQL, Swift, TypeScript, XML)
// keep their relative order; the rest are inserted around them.
//
// Shared extensions and their winners:
//
//	.h   C       over C++
//	.fs  F#      over GLSL
//	.m   MATLAB  over Objective-C
//	.pl  Perl    over Prolog
var builtinEntries = []Entry{
	{Name: "Assembly", Extensions: []string{".asm", ".s", ".nasm"}},
	{Name: "C", Extensions: []string{".c", ".h"}},
	{Name: "C++", Extensions: []string{".cc", ".cpp", ".cxx", ".c++", ".hpp", ".hh", ".hxx", ".h"}},
	{Name: "C#", Extensions: []string{".cs", ".csx"}},
	{Name: "CG", Extensions: []string{".cginc"}},
	{Name: "Clojure", Extensions: []string{".clj", ".cljs", ".cljc", ".edn"}},
	{Name: "CMake", Extensions: []string{".cmake"}},
	{Name: "CoffeeScript", Extensions: []string{".coffee"}},
	{Name: "CSS", Extensions: []string{".css"}},
	{Name: "Dart", Extensions: []string{".dart"}},
	{Name: "Elixir", Extensions: []string{".ex", ".exs"}},
	{Name: "Erlang", Extensions: []string{".erl", ".hrl"}},
	{Name: "F#", Extensions: []string{".fs", ".fsi", ".fsx"}},
	{Name: "Fortran", Extensions: []string{".f", ".f90", ".f95", ".for"}},
	{Name: "GLSL", Extensions: []string{".vert", ".frag", ".glsl", ".geom", ".comp", ".fs"}},
	{Name: "Go", Extensions: []string{".go"}},
	{Name: "GraphQL", Extensions: []string{".graphql", ".gql"}},
	{Name: "Groovy", Extensions: []string{".groovy", ".gradle"}},
	{Name: "Haskell", Extensions: []string{".hs", ".lhs"}},
	{Name: "HLSL", Extensions: []string{".hlsl", ".fx", ".fxh"}},
	{Name: "HTML", Extensions: []string{".html", ".htm", ".xhtml"}},
	{Name: "Ini", Extensions: []string{".ini", ".cfg"}},
	{Name: "JSON", Extensions: []string{".json", ".jsonc", ".json5"}},
	{Name: "Java", Extensions: []string{".java"}},
	{Name: "JavaScript", Extensions: []string{".js", ".jsx", ".mjs", ".cjs"}},
	{Name: "Julia", Extensions: []string{".jl"}},
	{Name: "Kotlin", Extensions: []string{".kt", ".kts"}},
	{Name: "Less", Extensions: []string{".less"}},
	{Name: "Lua", Extensions: []string{".lua"}},
	{Name: "MATLAB", Extensions: []string{".m"}},
	{Name: "Makefile", Extensions: []string{".mk", ".mak"}},
	{Name: "Markdown", Extensions: []string{".md", ".markdown", ".mdx"}},
	{Name: "MaxScript", Extensions: []string{".maxscript", ".ms", ".mcr"}},
	{Name: "Nim", Extensions: []string{".nim"}},
	{Name: "OCaml", Extensions: []string{".ml", ".mli"}},
	{Name: "Objective-C", Extensions: []string{".m", ".mm"}},
	{Name: "Pascal", Extensions: []string{".pas", ".pp"}},
	{Name: "Perl", Extensions: []string{".pl", ".pm", ".t"}},
	{Name: "PHP", Extensions: []string{".php", ".phtml"}},
	{Name: "PowerShell", Extensions: []string{".ps1", ".psm1", ".psd1"}},
	{Name: "Prolog", Extensions: []string{".pro", ".pl"}},
	{Name: "Protocol Buffers", Extensions: []string{".proto"}},
	{Name: "Python", Extensions: []string{".py", ".pyw", ".pyi"}},
	{Name: "R", Extensions: []string{".r", ".rmd"}},
	{Name: "Ruby", Extensions: []string{".rb", ".erb", ".gemspec", ".rake"}},
	{Name: "Rust", Extensions: []string{".rs"}},
	{Name: "Sass", Extensions: []string{".scss", ".sass"}},
	{Name: "Scala", Extensions: []string{".scala", ".sc"}},
	{Name: "Shaderlab", Extensions: []string{".shader"}},
	{Name: "Shell", Extensions: []string{".bat", ".cmd", ".sh", ".bash", ".zsh", ".fish"}},
	{Name: "SQL", Extensions: []string{".sql"}},
	{Name: "Svelte", Extensions: []string{".svelte"}},
	{Name: "Swift", Extensions: []string{".swift"}},
	{Name: "Terraform", Extensions: []string{".tf", ".tfvars"}},
	{Name: "TOML", Extensions: []string{".toml"}},
	{Name: "TypeScript", Extensions: []string{".ts", ".tsx", ".mts", ".cts"}},
	{Name: "Vue", Extensions: []string{".vue"}},
	{Name: "XML", Extensions: []string{".xml", ".xsd", ".xsl", ".xslt", ".plist"}},
	{Name: "YAML", Extensions: []string{".yml", ".yaml"}},
	{Name: "Zig", Extensions: []string{".zig"}},
}

var (
	defaultTable *Table
	once         sync.Once
)

// Default returns the built-in table. It is built on first use and shared
// for the life of the process.
func Default() *Table {
	once.Do(func() {
		t, err := NewTable(builtinEntries)
		if err != nil {
			panic("language: invalid built-in table: " + err.Error())
		}
		defaultTable = t
	})
	return defaultTable
}
