//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
	"unsafe"

	"github.com/creack/pty"
)

const ringSize = 1 << 20         // 1 MiB of scrollback
var binPath = "suggestbox_e2e" // set by TestMain

// Key sequences as a terminal sends them
const (
	KeyEnter    = "\r"
	KeyTab      = "\t"
	KeyShiftTab = "\x1b[Z"
	KeyCtrlC    = "\x03"
	KeySpace    = " "
	KeyUp       = "\x1b[A"
	KeyDown     = "\x1b[B"
	KeyBack     = "\x7f"
)

// Terminal size given to the app
const (
	termRows = 40
	termCols = 120
)

// ANSI escape sequence regex for normalization - covers CSI, OSC, charset, keypad modes
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` + // CSI sequences
		`(?:\x1b\][^\x07]*\x07)|` + // OSC sequences
		`(?:\x1b[\(\)][A-Za-z])|` + // charset sequences
		`(?:\x1b=|\x1b>)|` + // keypad mode sequences
		`\r`, // carriage returns
)

// TUITestFramework drives the app inside a PTY
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	tty       *os.File
	cmd       *exec.Cmd
	workspace string

	// Ring buffer for continuous output capture
	mu   sync.Mutex
	buf  []byte
	head int
	full bool
	cond *sync.Cond
}

// NewTUITest creates a new TUI test framework instance
func NewTUITest(t *testing.T) *TUITestFramework {
	tf := &TUITestFramework{
		t:         t,
		buf:       make([]byte, ringSize),
		workspace: t.TempDir(),
	}
	tf.cond = sync.NewCond(&tf.mu)
	return tf
}

// env isolates the app from the user's config and log locations
func (tf *TUITestFramework) env() []string {
	return append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C.UTF-8",
		"LANG=C.UTF-8",
		"HOME="+tf.workspace,
		"XDG_CONFIG_HOME="+filepath.Join(tf.workspace, ".config"),
	)
}

// LogFile returns where the app under test writes its log
func (tf *TUITestFramework) LogFile() string {
	return filepath.Join(tf.workspace, "suggestbox.log")
}

// StartApp launches suggestbox with the given arguments in a PTY
func (tf *TUITestFramework) StartApp(args ...string) error {
	args = append(args, "--log-file", tf.LogFile(), "--log-level", "debug")
	tf.cmd = exec.Command(binPath, args...)
	tf.cmd.Env = tf.env()
	tf.cmd.Dir = tf.workspace

	ptyFile, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("failed to open pty: %w", err)
	}

	tf.pty = ptyFile
	tf.tty = tty
	tf.cmd.Stdout = tty
	tf.cmd.Stdin = tty
	tf.cmd.Stderr = tty

	ws := struct {
		Row uint16
		Col uint16
		X   uint16
		Y   uint16
	}{termRows, termCols, 0, 0}
	syscall.Syscall(syscall.SYS_IOCTL, ptyFile.Fd(), uintptr(syscall.TIOCSWINSZ), uintptr(unsafe.Pointer(&ws)))

	if err := tf.cmd.Start(); err != nil {
		ptyFile.Close()
		tty.Close()
		return fmt.Errorf("failed to start command: %w", err)
	}

	tf.startReader()
	return nil
}

// RunCommand runs a non-interactive subcommand and returns its combined output
func (tf *TUITestFramework) RunCommand(args ...string) (string, error) {
	args = append(args, "--log-file", tf.LogFile())
	cmd := exec.Command(binPath, args...)
	cmd.Env = tf.env()
	cmd.Dir = tf.workspace
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// startReader starts the continuous reader goroutine
func (tf *TUITestFramework) startReader() {
	go func() {
		buf := make([]byte, 8192)
		for {
			n, err := tf.pty.Read(buf)
			if n > 0 {
				tf.mu.Lock()
				for i := 0; i < n; i++ {
					tf.buf[tf.head] = buf[i]
					tf.head = (tf.head + 1) % ringSize
					if tf.head == 0 {
						tf.full = true
					}
				}
				tf.cond.Broadcast()
				tf.mu.Unlock()
			}
			if err != nil {
				tf.mu.Lock()
				tf.cond.Broadcast()
				tf.mu.Unlock()
				return
			}
		}
	}()
}

// SendKeys sends keystrokes to the application
func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

// Type sends text one rune at a time, as a person typing would
func (tf *TUITestFramework) Type(text string) error {
	tf.t.Helper()
	for _, r := range text {
		if err := tf.SendKeys(string(r)); err != nil {
			return err
		}
		time.Sleep(20 * time.Millisecond)
	}
	return nil
}

// SendCtrlC sends Ctrl+C to terminate the application
func (tf *TUITestFramework) SendCtrlC() error {
	tf.t.Helper()
	return tf.SendKeys(KeyCtrlC)
}

// Down moves the highlight down
func (tf *TUITestFramework) Down() error {
	tf.t.Helper()
	return tf.SendKeys(KeyDown)
}

// Up moves the highlight up
func (tf *TUITestFramework) Up() error {
	tf.t.Helper()
	return tf.SendKeys(KeyUp)
}

// Enter sends enter key
func (tf *TUITestFramework) Enter() error {
	tf.t.Helper()
	return tf.SendKeys(KeyEnter)
}

// Tab sends the tab key
func (tf *TUITestFramework) Tab() error {
	tf.t.Helper()
	return tf.SendKeys(KeyTab)
}

// Click sends an SGR mouse press and release at the 0-based cell x, y
func (tf *TUITestFramework) Click(x, y int) error {
	tf.t.Helper()
	if err := tf.SendKeys(fmt.Sprintf("\x1b[<0;%d;%dM", x+1, y+1)); err != nil {
		return err
	}
	time.Sleep(30 * time.Millisecond)
	return tf.SendKeys(fmt.Sprintf("\x1b[<0;%d;%dm", x+1, y+1))
}

// Ready waits for the first full frame
func (tf *TUITestFramework) Ready() bool {
	tf.t.Helper()
	return tf.OutputContainsPlain("Query:", 5*time.Second)
}

// SeePlain waits for specific plain text to appear (normalized output)
func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.OutputContainsPlain(text, 3*time.Second)
}

// OutputContainsPlain checks if the normalized output contains specific text within a timeout
func (tf *TUITestFramework) OutputContainsPlain(text string, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
	}, timeout)
}

// WaitFor waits for a predicate to be true in the output
func (tf *TUITestFramework) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if pred(tf.Snapshot()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond) // simple, reliable polling; tests only
	}
}

// WaitForExit waits for the process to exit
func (tf *TUITestFramework) WaitForExit(timeout time.Duration) error {
	tf.t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return fmt.Errorf("process did not exit within %s", timeout)
	}
}

// Snapshot returns the current contents of the ring buffer (thread-safe)
func (tf *TUITestFramework) Snapshot() string {
	tf.t.Helper()
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return tf.snapshot()
}

// snapshot returns the current contents of the ring buffer
// NOTE: This assumes the mutex is already locked by the caller
func (tf *TUITestFramework) snapshot() string {
	if !tf.full {
		return string(tf.buf[:tf.head])
	}
	out := make([]byte, ringSize)
	copy(out, tf.buf[tf.head:])
	copy(out[ringSize-tf.head:], tf.buf[:tf.head])
	return string(out)
}

// SnapshotPlain returns the current contents of the ring buffer with ANSI sequences removed
func (tf *TUITestFramework) SnapshotPlain() string {
	tf.t.Helper()
	return ansiRe.ReplaceAllString(tf.Snapshot(), "")
}

// DumpTailOnFail saves the last N bytes of normalized output to a file for debugging
func (tf *TUITestFramework) DumpTailOnFail(t *testing.T, name string, n int) {
	tf.t.Helper()
	s := tf.SnapshotPlain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	p := filepath.Join(t.TempDir(), name+".txt")
	_ = os.WriteFile(p, []byte(s), 0644)
	t.Logf("Saved tail to %s", p)
}

// Cleanup closes the PTY and terminates the application
func (tf *TUITestFramework) Cleanup() {
	// Close PTY first to deliver SIGHUP to child process
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.tty != nil {
		_ = tf.tty.Close()
		tf.tty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil && tf.cmd.ProcessState == nil {
		_ = tf.cmd.Process.Kill()
		_, _ = tf.cmd.Process.Wait()
	}
	tf.cmd = nil
}
