package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

const (
	// DefaultMaxOutput bounds the text read from one label.
	DefaultMaxOutput = 4 << 20
	// waitDelay is how long Run waits for output pipes after the process is
	// killed on ctx expiry.
	waitDelay    = 2 * time.Second
	maxStderrLog = 8 << 10
)

// ErrOutputTooLarge is returned when stdout exceeds ExecRunner.MaxOutput.
var ErrOutputTooLarge = errors.New("command output too large")

// Runner executes an external command. Tests replace it with a stub.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// RunError is a command that started but failed. Stderr is the first line
// the command wrote there, which is where pdftotext explains itself.
type RunError struct {
	Cmd      string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *RunError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s: %v", e.Cmd, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Cmd, e.Err, e.Stderr)
}

func (e *RunError) Unwrap() error { return e.Err }

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Log *slog.Logger
	// MaxOutput caps stdout in bytes. 0 means DefaultMaxOutput.
	MaxOutput int
}

// Run implements Runner.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	log := r.Log
	if log == nil {
		log = slog.Default()
	}
	limit := r.MaxOutput
	if limit <= 0 {
		limit = DefaultMaxOutput
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay
	out := &cappedBuffer{limit: limit}
	var errb bytes.Buffer
	cmd.Stdout = out
	cmd.Stderr = &errb

	start := time.Now()
	err := cmd.Run()
	dur := time.Since(start)

	if err == nil && out.overflow {
		err = ErrOutputTooLarge
	}
	if err != nil {
		log.WarnContext(ctx, "exec failed",
			slog.String("cmd", name),
			slog.String("args", strings.Join(args, " ")),
			slog.Int64("duration_ms", dur.Milliseconds()),
			slog.String("error", err.Error()),
			slog.String("stderr", truncate(errb.String(), maxStderrLog)),
		)
		return out.Bytes(), errb.Bytes(), wrapRunError(name, err, errb.String())
	}

	log.DebugContext(ctx, "exec ok",
		slog.String("cmd", name),
		slog.Int64("duration_ms", dur.Milliseconds()),
		slog.Int("stdout_bytes", out.Len()),
	)
	return out.Bytes(), errb.Bytes(), nil
}

func wrapRunError(name string, err error, stderr string) error {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) && !errors.Is(err, ErrOutputTooLarge) {
		// Not started (missing binary) or killed by ctx: nothing to add.
		return err
	}
	re := &RunError{Cmd: name, ExitCode: -1, Err: err}
	if exitErr != nil {
		re.ExitCode = exitErr.ExitCode()
	}
	if line, _, _ := strings.Cut(strings.TrimSpace(stderr), "\n"); line != "" {
		re.Stderr = truncate(line, 512)
	}
	return re
}

// cappedBuffer keeps the first limit bytes and silently drops the rest, so
// the child never blocks on a full pipe.
type cappedBuffer struct {
	bytes.Buffer
	limit    int
	overflow bool
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	if room := b.limit - b.Len(); room < len(p) {
		b.overflow = true
		if room > 0 {
			b.Buffer.Write(p[:room])
		}
		return len(p), nil
	}
	return b.Buffer.Write(p)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
