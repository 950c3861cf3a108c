// Package lang classifies files by programming language using their
// extension. Renderers use the class to color circles.
package lang

import (
	"path"
	"strings"
)

// Unknown is returned for files without a recognized extension.
const Unknown = ""

var byExtension = map[string]string{
	"c": "c",
	"h": "c",

	"cpp": "cpp",
	"cc":  "cpp",
	"c++": "cpp",
	"hpp": "cpp",
	"hh":  "cpp",
	"h++": "cpp",

	"cs": "c-sharp",

	"java": "java",

	"py":  "python",
	"cgi": "python",
	"pyt": "python",
	"pyp": "python",

	"js": "javascript",
	"es": "javascript",

	"rb":   "ruby",
	"rake": "ruby",
	"ruby": "ruby",

	"vb":  "visual-basic",
	"bas": "visual-basic",
	"vbs": "visual-basic",

	"go": "go",

	"f90": "fortran",
	"f":   "fortran",
	"f03": "fortran",
	"f08": "fortran",

	"lisp": "lisp",

	"m": "objective-c",

	"pas": "pascal",

	"php": "php",

	"matlab": "matlab",

	"rs": "rust",

	"swift": "swift",

	"r": "r",

	"asm":  "asm",
	"nasm": "asm",

	"kt":  "kotlin",
	"ktm": "kotlin",

	"cob": "cobol",

	"sh":   "shell",
	"bash": "shell",

	"pro":    "prolog",
	"prolog": "prolog",

	"sas": "sas",

	"adb": "ada",
	"ada": "ada",

	// .pl is far more often Perl than Prolog.
	"pl":   "perl",
	"perl": "perl",

	"jl": "julia",

	"scala": "scala",

	"dart": "dart",

	"lua": "lua",

	"hs": "haskell",

	"ex": "elixir",

	"ts": "typescript",

	"clj": "clojure",

	"erl": "erlang",

	"ml": "ocaml",

	"st": "smalltalk",

	"scm": "scheme",

	"zig": "zig",
}

// Classify returns the language class for filename, or [Unknown]. Matching
// is on the last extension and ignores case.
func Classify(filename string) string {
	ext := path.Ext(filename)
	if len(ext) < 2 {
		return Unknown
	}
	return byExtension[strings.ToLower(ext[1:])]
}

// Known reports whether filename has a recognized extension.
func Known(filename string) bool {
	return Classify(filename) != Unknown
}
