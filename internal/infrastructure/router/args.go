package router

import (
	"strconv"
	"strings"
)

// Argument extraction for the security tool routes. These parsers are
// deliberately loose: voice transcription mangles flags, so we pick out
// recognizable tokens and leave defaults for the rest.

func parsePayloadArgs(s string) (platform, kind, lhost, lport string) {
	platform = "windows"
	switch {
	case strings.Contains(s, "linux"):
		platform = "linux"
	case strings.Contains(s, "android"):
		platform = "android"
	}

	kind = "reverse"
	if !strings.Contains(s, "reverse") && strings.Contains(s, "bind") {
		kind = "bind"
	}

	// Listener host and port come from the tail of the utterance: the last
	// bare integer is the port, the first dotted quad is the host.
	lhost = "127.0.0.1"
	lport = "4444"
	fields := strings.Fields(s)
	portSet := false
	for i := len(fields) - 1; i >= 0; i-- {
		if !portSet && isAllDigits(fields[i]) {
			lport = fields[i]
			portSet = true
			continue
		}
		if looksLikeIPv4(fields[i]) {
			lhost = fields[i]
		}
	}
	return platform, kind, lhost, lport
}

// parseCrackArgs understands "crack password hashes.txt with rockyou".
// A bare wordlist name after "with" expands to the Kali wordlists path.
func parseCrackArgs(s string) (hashFile, wordlist string) {
	fields := strings.Fields(s)
	for i, tok := range fields {
		if strings.Contains(tok, ".txt") || strings.Contains(tok, "/") {
			hashFile = tok
		}
		if tok == "with" && i+1 < len(fields) {
			wordlist = "/usr/share/wordlists/" + fields[i+1] + ".txt"
		}
	}
	return hashFile, wordlist
}

// parseCaptureArgs understands "capture packets on eth0 for 60". An empty
// interface means auto-detect.
func parseCaptureArgs(s string) (iface string, durationSec int) {
	durationSec = 15
	fields := strings.Fields(s)
	for i, tok := range fields {
		if i+1 >= len(fields) {
			break
		}
		switch tok {
		case "on":
			iface = fields[i+1]
		case "for":
			if n, err := strconv.Atoi(fields[i+1]); err == nil {
				durationSec = n
			}
		}
	}
	return iface, durationSec
}

// parseBruteForceArgs understands "brute force ssh on 192.168.1.10 with
// rockyou".
func parseBruteForceArgs(s string) (service, target, wordlist string) {
	service = "ssh"
	target = "127.0.0.1"
	fields := strings.Fields(s)
	for i, tok := range fields {
		if i+1 >= len(fields) {
			break
		}
		switch tok {
		case "force":
			service = fields[i+1]
		case "on":
			target = fields[i+1]
		case "with":
			wordlist = "/usr/share/wordlists/" + fields[i+1] + ".txt"
		}
	}
	return service, target, wordlist
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func looksLikeIPv4(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}
