package testutil

import (
	"strings"

	"github.com/nutthead/samoyed-sub000/pkg/types"
)

// RunnerCall records one subprocess spawn requested through the fake.
type RunnerCall struct {
	Program string
	Args    []string
}

// RunnerResponse is the scripted outcome for a matching program.
type RunnerResponse struct {
	Result types.RunResult
	Err    error
}

// FakeRunner implements types.CommandRunner and types.Streamer with
// scripted responses. Responses are keyed by "program arg0 arg1 ..."
// prefix; the longest matching key wins, so a test can script
// "git config" differently from "git --version".
type FakeRunner struct {
	Responses map[string]RunnerResponse
	Calls     []RunnerCall
}

// NewFakeRunner creates a runner whose every call succeeds with exit 0
// until responses are scripted.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{Responses: make(map[string]RunnerResponse)}
}

// Script registers a response for any invocation whose command line
// starts with prefix.
func (r *FakeRunner) Script(prefix string, resp RunnerResponse) {
	r.Responses[prefix] = resp
}

// Run implements types.CommandRunner.
func (r *FakeRunner) Run(program string, args ...string) (types.RunResult, error) {
	r.Calls = append(r.Calls, RunnerCall{Program: program, Args: args})
	resp := r.match(program, args)
	return resp.Result, resp.Err
}

// RunStreaming implements types.Streamer. The fake has no real child
// process, so "streaming" reduces to the scripted exit code.
func (r *FakeRunner) RunStreaming(program string, args ...string) (int, error) {
	r.Calls = append(r.Calls, RunnerCall{Program: program, Args: args})
	resp := r.match(program, args)
	if resp.Err != nil {
		return -1, resp.Err
	}
	return resp.Result.ExitCode, nil
}

func (r *FakeRunner) match(program string, args []string) RunnerResponse {
	line := strings.Join(append([]string{program}, args...), " ")
	var best string
	for prefix := range r.Responses {
		if strings.HasPrefix(line, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return RunnerResponse{}
	}
	return r.Responses[best]
}

// CommandLines renders every recorded call as a single string, making
// order and argument assertions readable.
func (r *FakeRunner) CommandLines() []string {
	lines := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		lines[i] = strings.Join(append([]string{c.Program}, c.Args...), " ")
	}
	return lines
}
