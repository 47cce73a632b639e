package gitcli

import (
	"context"
	"log/slog"
	"os/exec"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bayesimpact/gitreview/pkg/domain/interfaces"
	"github.com/bayesimpact/gitreview/pkg/utils/logging"
)

// Client wraps the git command line tool.
type Client struct {
	path   string
	dir    string
	xtrace string
	env    []string
}

var _ interfaces.GitClient = (*Client)(nil)

type Option func(*Client)

// WithDir runs every command in the given working directory.
func WithDir(dir string) Option {
	return func(x *Client) {
		x.dir = dir
	}
}

// WithXtrace prints each command to the log before running it, prefixed
// with the given marker, like bash xtrace.
func WithXtrace(prefix string) Option {
	return func(x *Client) {
		x.xtrace = prefix
	}
}

// WithEnv appends extra environment entries ("KEY=value") to every command.
func WithEnv(env ...string) Option {
	return func(x *Client) {
		x.env = append(x.env, env...)
	}
}

func New(path string, options ...Option) *Client {
	if path == "" {
		path = "git"
	}
	client := &Client{path: path}
	for _, opt := range options {
		opt(client)
	}
	return client
}

var ptnIFS = regexp.MustCompile(`[ \n]`)

func (x *Client) trace(ctx context.Context, args []string) {
	if x.xtrace == "" {
		return
	}
	words := make([]string, 0, len(args)+1)
	words = append(words, "git")
	for _, arg := range args {
		if ptnIFS.MatchString(arg) {
			arg = "'" + arg + "'"
		}
		words = append(words, arg)
	}
	logging.From(ctx).Debug(x.xtrace + " " + strings.Join(words, " "))
}

// Output runs git with the given arguments and returns its trimmed standard
// output. On failure the returned error carries the exit code and the
// command's standard error.
func (x *Client) Output(ctx context.Context, args ...string) (string, error) {
	x.trace(ctx, args)

	cmd := exec.CommandContext(ctx, x.path, args...)
	cmd.Dir = x.dir
	if len(x.env) > 0 {
		cmd.Env = append(cmd.Environ(), x.env...)
	}

	out, err := cmd.Output()
	if err != nil {
		var stderr string
		var exitCode int
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = strings.TrimSpace(string(exitErr.Stderr))
			exitCode = exitErr.ExitCode()
		}
		logging.From(ctx).Debug("git command failed",
			slog.Any("args", args),
			slog.Int("exit_code", exitCode),
			slog.String("stderr", stderr),
		)
		return "", goerr.Wrap(err, "git command failed",
			goerr.V("args", args),
			goerr.V("exit_code", exitCode),
			goerr.V("stderr", stderr),
		)
	}

	return strings.TrimSpace(string(out)), nil
}
