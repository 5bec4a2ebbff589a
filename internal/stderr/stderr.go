//go:build !windows

// Package stderr captures output that C audio libraries and child processes
// write straight to file descriptor 2, which would otherwise tear through
// the TUI.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// Messages receives captured lines worth showing to the user.
var Messages = make(chan string, 100)

var capture struct {
	orig    int
	r, w    *os.File
	started bool
}

// Start redirects fd 2 into a pipe. Call it before the speaker or any
// player process starts. On error the program keeps the real stderr.
func Start() error {
	if capture.started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}
	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}
	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return err
	}

	capture.orig, capture.r, capture.w = orig, r, w
	capture.started = true
	go forward(r)
	return nil
}

func forward(r *os.File) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isNoise(line) {
			continue
		}
		select {
		case Messages <- line:
		default:
		}
	}
}

// isNoise filters device probing chatter that ALSA prints on most systems
// even when playback works.
func isNoise(line string) bool {
	if !strings.HasPrefix(line, "ALSA lib ") {
		return false
	}
	for _, s := range []string{"Unknown PCM", "unable to open slave", "Invalid card", "Invalid value for card"} {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

// WriteOriginal writes to the terminal's stderr, bypassing the capture.
func WriteOriginal(msg string) {
	if capture.started {
		_, _ = syscall.Write(capture.orig, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}

// Stop restores the original stderr.
func Stop() {
	if !capture.started {
		return
	}
	_ = syscall.Dup2(capture.orig, int(os.Stderr.Fd()))
	_ = syscall.Close(capture.orig)
	capture.w.Close()
	capture.r.Close()
	close(Messages)
	capture.started = false
}
