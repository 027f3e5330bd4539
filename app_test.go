package main

import "testing"

func TestDownloadFileName(t *testing.T) {
	app := NewApp()

	cases := map[string]string{
		"python":    "generated.py",
		"go":        "generated.go",
		"plaintext": "generated.txt",
		"":          "generated.txt",
	}
	for language, want := range cases {
		if got := app.DownloadFileName(language); got != want {
			t.Fatalf("%q: got %q, want %q", language, got, want)
		}
	}
}
