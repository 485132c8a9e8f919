package download

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple filename", input: "report.pdf", expected: "report.pdf"},
		{name: "unix path traversal", input: "../../../etc/passwd", expected: "passwd"},
		{name: "windows path traversal", input: "..\\..\\Windows\\System32\\config", expected: "config"},
		{name: "absolute path", input: "/home/u/secret.txt", expected: "secret.txt"},
		{name: "dot", input: ".", expected: DefaultFilename},
		{name: "dot dot", input: "..", expected: DefaultFilename},
		{name: "empty", input: "", expected: DefaultFilename},
		{name: "whitespace only", input: "   ", expected: DefaultFilename},
		{name: "spaces kept", input: "my file.txt", expected: "my file.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestResolveSuggestedName(t *testing.T) {
	tests := []struct {
		name      string
		suggested string
		uri       string
		expected  string
	}{
		{name: "suggested wins", suggested: "report.pdf", uri: "https://drive.proton.me/x/other.bin", expected: "report.pdf"},
		{name: "falls back to uri path", suggested: "", uri: "https://drive.proton.me/files/invoice.pdf?dl=1", expected: "invoice.pdf"},
		{name: "uri without path", suggested: "", uri: "https://drive.proton.me", expected: DefaultFilename},
		{name: "nothing known", suggested: "", uri: "", expected: DefaultFilename},
		{name: "suggested is sanitized", suggested: "../x.pdf", uri: "", expected: "x.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveSuggestedName(tt.suggested, tt.uri))
		})
	}
}

func TestSplitSavePath(t *testing.T) {
	dir, name := SplitSavePath("/home/u/Downloads/report.pdf")
	assert.Equal(t, "/home/u/Downloads", dir)
	assert.Equal(t, "report.pdf", name)

	dir, name = SplitSavePath("file:///tmp/a.txt")
	assert.Equal(t, "/tmp", dir)
	assert.Equal(t, "a.txt", name)
}
