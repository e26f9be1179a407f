// Package convert turns a finished package into a PDF by trying a chain of
// mechanisms in priority order: an in-process converter first, then each
// candidate external binary once, with a bounded timeout. There are no
// retries of a mechanism; exhausting the chain is a recoverable outcome
// that prints remediation instructions instead of failing the process.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"wordkit/observability"
)

// State is the converter's position in its linear chain.
type State int

const (
	StateStart State = iota
	StateTryNative
	StateTryBinary
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateTryNative:
		return "try-native"
	case StateTryBinary:
		return "try-binary"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// NativeConverter is an in-process conversion API. The default
// implementation is always unavailable; callers with a real in-process
// mechanism inject their own.
type NativeConverter interface {
	Convert(ctx context.Context, input, output string) error
}

// ErrNativeUnavailable is returned by the default NativeConverter.
var ErrNativeUnavailable = errors.New("no in-process converter available")

type nativeUnavailable struct{}

func (nativeUnavailable) Convert(context.Context, string, string) error {
	return ErrNativeUnavailable
}

// DefaultCandidates lists the external binaries tried in order.
func DefaultCandidates() []string {
	return []string{
		"libreoffice",
		"soffice",
		"/Applications/LibreOffice.app/Contents/MacOS/soffice",
	}
}

// DefaultTimeout bounds each external attempt.
const DefaultTimeout = 30 * time.Second

// Options configures a conversion run. Zero values select the defaults;
// an explicitly empty candidate list skips external binaries entirely.
type Options struct {
	Candidates []string
	Timeout    time.Duration
	Native     NativeConverter
	OutDir     string    // defaults to the input's directory
	Stdout     io.Writer // remediation text target; defaults to os.Stdout
	Logger     observability.Logger
}

// Attempt records one exhausted mechanism.
type Attempt struct {
	Candidate string // "native" or the binary path
	Err       error
}

// Result is the terminal outcome of a run.
type Result struct {
	State     State
	Candidate string // winning mechanism, when State is StateSucceeded
	Output    string // produced PDF path, when State is StateSucceeded
	Attempts  []Attempt
}

// Run drives the chain for one input file. Exhausting every mechanism is
// not an error: the remediation message is printed once and the Result
// reports StateFailed with a nil error. Errors are reserved for inputs
// that cannot be converted by any mechanism, such as a missing file.
func Run(ctx context.Context, input string, opts Options) (Result, error) {
	log := opts.Logger
	if log == nil {
		log = observability.NopLogger{}
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	native := opts.Native
	if native == nil {
		native = nativeUnavailable{}
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	outDir := opts.OutDir
	if outDir == "" {
		outDir = filepath.Dir(input)
	}

	if _, err := os.Stat(input); err != nil {
		return Result{State: StateFailed}, fmt.Errorf("input not found: %w", err)
	}
	output := filepath.Join(outDir, pdfName(input))

	res := Result{State: StateTryNative}
	if err := native.Convert(ctx, input, output); err == nil && exists(output) {
		log.Info("converted with in-process API", observability.String("output", output))
		return Result{State: StateSucceeded, Candidate: "native", Output: output, Attempts: res.Attempts}, nil
	} else {
		if err == nil {
			err = fmt.Errorf("converter reported success but %s does not exist", output)
		}
		log.Debug("native conversion unavailable", observability.Error("err", err))
		res.Attempts = append(res.Attempts, Attempt{Candidate: "native", Err: err})
	}

	res.State = StateTryBinary
	for _, candidate := range opts.Candidates {
		err := runBinary(ctx, candidate, input, outDir, timeout)
		if err == nil && exists(output) {
			log.Info("converted with external binary",
				observability.String("binary", candidate), observability.String("output", output))
			return Result{State: StateSucceeded, Candidate: candidate, Output: output, Attempts: res.Attempts}, nil
		}
		if err == nil {
			err = fmt.Errorf("%s exited cleanly but %s does not exist", candidate, output)
		}
		log.Debug("candidate failed, advancing",
			observability.String("binary", candidate), observability.Error("err", err))
		res.Attempts = append(res.Attempts, Attempt{Candidate: candidate, Err: err})
	}

	res.State = StateFailed
	fmt.Fprintln(stdout, remediationMessage(input))
	return res, nil
}

// runBinary spawns one candidate with a bounded timeout. A missing binary,
// a timeout or a non-zero exit all fail this candidate only.
func runBinary(ctx context.Context, path, input, outDir string, timeout time.Duration) error {
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stderr bytes.Buffer
	cmd := exec.CommandContext(cctx, path, "--headless", "--convert-to", "pdf", "--outdir", outDir, input)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if cctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%s timed out after %s", path, timeout)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", path, err, msg)
		}
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func pdfName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".pdf"
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// remediationMessage is printed verbatim, once, when every mechanism is
// exhausted.
func remediationMessage(input string) string {
	divider := strings.Repeat("=", 60)
	return fmt.Sprintf(`
%s
PDF conversion failed. Please try one of these options:
%s

Option 1: Use Microsoft Word
  - Open %s in Microsoft Word
  - Go to File > Export > PDF
  - Save as PDF

Option 2: Use online converter
  - Visit: https://www.ilovepdf.com/word-to-pdf
  - Upload the file and convert

Option 3: Install LibreOffice
  - Download from: https://www.libreoffice.org/
  - Then run the conversion again
%s`, divider, divider, filepath.Base(input), divider)
}
