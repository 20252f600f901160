package operations

import "strings"

type call struct {
	name string
	args []string
	dir  string
}

func (c call) String() string {
	return strings.TrimSpace(c.name + " " + strings.Join(c.args, " "))
}

// fakeRunner records every invocation and answers through an optional
// handler. With no handler every command succeeds with empty output.
type fakeRunner struct {
	calls   []call
	handler func(name string, args []string, dir string) (string, error)
}

func (f *fakeRunner) Run(name string, args []string, dir string) (string, error) {
	f.calls = append(f.calls, call{name: name, args: args, dir: dir})
	if f.handler != nil {
		return f.handler(name, args, dir)
	}
	return "", nil
}

func (f *fakeRunner) commandLines() []string {
	lines := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		lines = append(lines, c.String())
	}
	return lines
}
