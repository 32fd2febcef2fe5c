package document

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/tagcloud/pkg/cloud"
)

const scenarioText = "the Cat sat on the mat. The cat ran."

// lineRecorder keeps every written line
type lineRecorder struct {
	lines []string
}

func (r *lineRecorder) WriteLine(line string) error {
	r.lines = append(r.lines, line)
	return nil
}

// failingWriter rejects every write
type failingWriter struct{}

func (failingWriter) WriteLine(string) error { return errors.New("disk full") }

func TestGenerateScenario(t *testing.T) {
	out := &lineRecorder{}
	src := StringSource{Label: "cat.txt", Text: scenarioText}

	report, err := Generate(src, out, Options{Size: 3, Fonts: cloud.DefaultFonts()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{
		"<html>",
		"<head>",
		"<title>Top 3 words in cat.txt</title>",
		`<link href="` + DefaultStylesheet + `" rel="stylesheet" type="text/css">`,
		"</head>",
		"<body>",
		"<h2>Top 3 words in cat.txt</h2>",
		"<hr>",
		`<div class="cdiv">`,
		`<p class="cbox">`,
		`<span style="cursor:default" class="f12" title="count: 2">cat</span>`,
		`<span style="cursor:default" class="f11" title="count: 1">mat</span>`,
		`<span style="cursor:default" class="f13" title="count: 3">the</span>`,
		"</p>",
		"</div>",
		"</body>",
		"</html>",
	}
	if len(out.lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(expected), len(out.lines), strings.Join(out.lines, "\n"))
	}
	for i := range expected {
		if out.lines[i] != expected[i] {
			t.Errorf("line %d: expected %q, got %q", i, expected[i], out.lines[i])
		}
	}

	if report.Tokens != 9 || report.Distinct != 6 {
		t.Errorf("expected tokens=9 distinct=6, got tokens=%d distinct=%d", report.Tokens, report.Distinct)
	}
	if report.Selection.MaxFrequency != 3 || report.Selection.MinFrequency != 1 {
		t.Errorf("unexpected selection bounds: %+v", report.Selection)
	}
}

func TestGenerateRejectsBadSize(t *testing.T) {
	src := StringSource{Label: "cat.txt", Text: scenarioText}
	for _, n := range []int{0, 7} {
		out := &lineRecorder{}
		_, err := Generate(src, out, Options{Size: n})
		if !errors.Is(err, cloud.ErrInvalidSelectionSize) {
			t.Errorf("n=%d: expected invalid size error, got %v", n, err)
		}
		if len(out.lines) != 0 {
			t.Errorf("n=%d: nothing should be written on error, got %d lines", n, len(out.lines))
		}
	}
}

func TestGenerateEmptyInput(t *testing.T) {
	_, err := Generate(StringSource{Label: "empty", Text: " ... "}, &lineRecorder{}, Options{Size: 1})
	if !errors.Is(err, cloud.ErrEmptyInput) {
		t.Errorf("expected empty input error, got %v", err)
	}
}

func TestGenerateWriteFailure(t *testing.T) {
	_, err := Generate(StringSource{Label: "x", Text: "a b"}, failingWriter{}, Options{Size: 1})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("expected write failure to surface, got %v", err)
	}
}

func TestPageEscapesLocation(t *testing.T) {
	out := &lineRecorder{}
	page := Page{Location: `a<b>&"c".txt`, Size: 1, Stylesheet: "style.css"}
	if err := page.Write(out, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.lines[2] != "<title>Top 1 words in a&lt;b&gt;&amp;&#34;c&#34;.txt</title>" {
		t.Errorf("title not escaped: %q", out.lines[2])
	}
	if !strings.Contains(out.lines[3], `href="style.css"`) {
		t.Errorf("custom stylesheet missing: %q", out.lines[3])
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	outPath := filepath.Join(dir, "out.html")
	if err := os.WriteFile(in, []byte("b a b\nc b a"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := CreateFile(outPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Generate(FileSource{Path: in}, w, Options{Size: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)
	if !strings.Contains(html, `title="count: 3">b</span>`) || !strings.Contains(html, `title="count: 2">a</span>`) {
		t.Errorf("unexpected output:\n%s", html)
	}
	if strings.Contains(html, `>c</span>`) {
		t.Errorf("c should not be selected:\n%s", html)
	}
	if !strings.HasSuffix(html, "</html>\n") {
		t.Errorf("output must end with the footer")
	}
}

func TestFileSourceMissing(t *testing.T) {
	_, err := Analyze(FileSource{Path: filepath.Join(t.TempDir(), "nope.txt")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist error, got %v", err)
	}
}

func TestBufferedLineWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewLineWriter(&buf)
	w.WriteLine("one")
	w.WriteLine("two")
	if buf.Len() != 0 {
		t.Errorf("lines should stay buffered until Flush")
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "one\ntwo\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
