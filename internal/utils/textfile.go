package utils

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// MaxCodeFileSize caps uploads; model prompts embed the whole file.
const MaxCodeFileSize = 512 * 1024

// ReadCodeFile reads a source file for analysis. It rejects empty files,
// files above MaxCodeFileSize and files that look binary.
func ReadCodeFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("%s is empty", path)
	}
	if info.Size() > MaxCodeFileSize {
		return "", fmt.Errorf("%s is too large (%d bytes, limit %d)", path, info.Size(), MaxCodeFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if isBinary(data) {
		return "", fmt.Errorf("%s does not look like a text file", path)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%s is empty", path)
	}
	return string(data), nil
}

// isBinary applies the usual sniff: NUL bytes or invalid UTF-8 in the head of
// the file.
func isBinary(data []byte) bool {
	head := data
	if len(head) > 8000 {
		head = head[:8000]
		// Back off a partial rune cut at the truncation point.
		for len(head) > 0 && !utf8.Valid(head) {
			head = head[:len(head)-1]
			if len(head) < 7996 {
				break
			}
		}
	}
	if bytes.IndexByte(head, 0) >= 0 {
		return true
	}
	return !utf8.Valid(head)
}

// ReadNonEmptyLines reads a text file and returns all non-empty, trimmed lines.
// Lines consisting only of whitespace or starting with # (comments) are ignored.
func ReadNonEmptyLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
