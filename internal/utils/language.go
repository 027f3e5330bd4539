package utils

import (
	"path/filepath"
	"sort"
	"strings"
)

// LanguagePlainText is the fallback classification for input we cannot place.
const LanguagePlainText = "plaintext"

// extensionLanguages maps file extensions to language identifiers. Extension
// always wins over content inspection.
var extensionLanguages = map[string]string{
	".py":    "python",
	".js":    "javascript",
	".mjs":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".go":    "go",
	".java":  "java",
	".cs":    "csharp",
	".rb":    "ruby",
	".rs":    "rust",
	".php":   "php",
	".c":     "c",
	".h":     "c",
	".cc":    "cpp",
	".cpp":   "cpp",
	".hpp":   "cpp",
	".kt":    "kotlin",
	".swift": "swift",
	".sh":    "shell",
	".sql":   "sql",
	".html":  "html",
	".css":   "css",
}

// languageKeywords holds superficial per-language markers used when no file
// extension is available. Scoring is a plain substring count, so the result
// is a best-effort guess, not a classification guarantee.
var languageKeywords = map[string][]string{
	"python":     {"def ", "import ", "self.", "elif ", "print("},
	"javascript": {"function ", "const ", "=>", "console.log", "require("},
	"typescript": {"interface ", ": string", ": number", "export ", "=>"},
	"go":         {"func ", "package ", ":=", "fmt.", "chan "},
	"java":       {"public class", "void ", "System.out", "extends ", "@Override"},
	"csharp":     {"namespace ", "using System", "public class", "Console."},
	"ruby":       {"def ", "end", "puts ", "require '", "attr_"},
	"rust":       {"fn ", "let mut", "impl ", "pub ", "match "},
	"c":          {"#include", "printf(", "void ", "struct ", "malloc("},
	"shell":      {"#!/bin", "echo ", "fi", "esac", "$1"},
	"sql":        {"SELECT ", "FROM ", "WHERE ", "INSERT INTO", "CREATE TABLE"},
}

// DetectLanguage classifies source text. The file name's extension is
// consulted first; otherwise the code is scanned for per-language keywords.
// Ties and unrecognized input resolve to plaintext. Given identical input the
// result is always the same.
func DetectLanguage(fileName, code string) string {
	if ext := strings.ToLower(filepath.Ext(fileName)); ext != "" {
		if lang, ok := extensionLanguages[ext]; ok {
			return lang
		}
	}
	return detectByKeywords(code)
}

func detectByKeywords(code string) string {
	if strings.TrimSpace(code) == "" {
		return LanguagePlainText
	}

	best := LanguagePlainText
	bestScore := 0

	// Iterate languages in sorted order so equal scores always resolve the
	// same way.
	langs := make([]string, 0, len(languageKeywords))
	for lang := range languageKeywords {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	for _, lang := range langs {
		score := 0
		for _, kw := range languageKeywords[lang] {
			score += strings.Count(code, kw)
		}
		if score > bestScore {
			best = lang
			bestScore = score
		}
	}

	// A single hit is too weak to call.
	if bestScore < 2 {
		return LanguagePlainText
	}
	return best
}

// ExtensionFor returns the conventional file extension for a language
// identifier, used when offering generated code for download.
func ExtensionFor(language string) string {
	for ext, lang := range extensionLanguages {
		if lang == language {
			// Prefer the canonical extension over header/variant ones.
			switch language {
			case "javascript":
				return ".js"
			case "typescript":
				return ".ts"
			case "c":
				return ".c"
			case "cpp":
				return ".cpp"
			}
			return ext
		}
	}
	return ".txt"
}
