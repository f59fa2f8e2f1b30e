package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hackverse/internal/domain"
)

// assignment is one path=value pair given with -set.
type assignment struct {
	Path  string
	Value string
}

// assignments collects repeated -set path=value flags in order.
type assignments []assignment

func (a *assignments) String() string {
	parts := make([]string, len(*a))
	for i, s := range *a {
		parts[i] = s.Path + "=" + s.Value
	}
	return strings.Join(parts, ",")
}

func (a *assignments) Set(v string) error {
	path, value, ok := strings.Cut(v, "=")
	if !ok || strings.TrimSpace(path) == "" {
		return fmt.Errorf("expected path=value, got %q", v)
	}
	*a = append(*a, assignment{Path: strings.TrimSpace(path), Value: value})
	return nil
}

type itemOp int

const (
	opAdd itemOp = iota
	opRemove
	opSetItem
)

// itemEdit is one list edit: -add list=value, -remove list=index or
// -set-item list.index[.attr]=value.
type itemEdit struct {
	Op     itemOp
	List   string
	Index  int
	Attr   string
	Value  string
	source string
}

// itemEdits collects list edits from several flags in command-line order.
type itemEdits []itemEdit

// itemFlag is the flag.Value that appends edits of one kind to a shared itemEdits.
type itemFlag struct {
	edits *itemEdits
	op    itemOp
}

func (f itemFlag) String() string {
	if f.edits == nil {
		return ""
	}
	var parts []string
	for _, e := range *f.edits {
		if e.Op == f.op {
			parts = append(parts, e.source)
		}
	}
	return strings.Join(parts, ",")
}

func (f itemFlag) Set(v string) error {
	var a assignments
	if err := a.Set(v); err != nil {
		return err
	}
	e := itemEdit{Op: f.op, List: a[0].Path, Value: a[0].Value, source: v}
	switch f.op {
	case opRemove:
		var x indexes
		if err := x.Set(e.Value); err != nil {
			return err
		}
		e.Index = x[0]
	case opSetItem:
		parts := strings.SplitN(e.List, ".", 3)
		if len(parts) < 2 {
			return fmt.Errorf("expected list.index[.field]=value, got %q", v)
		}
		var x indexes
		if err := x.Set(parts[1]); err != nil {
			return err
		}
		e.List, e.Index = parts[0], x[0]
		if len(parts) == 3 {
			e.Attr = parts[2]
		}
	}
	*f.edits = append(*f.edits, e)
	return nil
}

// indexes collects repeated non-negative integer flags.
type indexes []int

func (x *indexes) String() string {
	parts := make([]string, len(*x))
	for i, n := range *x {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (x *indexes) Set(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return fmt.Errorf("expected a non-negative index, got %q", v)
	}
	*x = append(*x, n)
	return nil
}

// members collects repeated -member "name,email,role" flags.
type members []domain.TeamMember

func (m *members) String() string {
	parts := make([]string, len(*m))
	for i, tm := range *m {
		parts[i] = tm.Name + "," + tm.Email + "," + string(tm.Role)
	}
	return strings.Join(parts, ";")
}

func (m *members) Set(v string) error {
	fields := strings.Split(v, ",")
	if len(fields) < 2 || len(fields) > 3 {
		return fmt.Errorf("expected name,email[,role], got %q", v)
	}
	tm := domain.TeamMember{
		Name:  strings.TrimSpace(fields[0]),
		Email: strings.TrimSpace(fields[1]),
		Role:  domain.RoleFrontend,
	}
	if len(fields) == 3 {
		role, err := domain.ParseMemberRole(fields[2])
		if err != nil {
			return err
		}
		tm.Role = role
	}
	*m = append(*m, tm)
	return nil
}

// scores collects repeated -score criterion=value flags.
type scores map[string]int

func (s scores) String() string {
	parts := make([]string, 0, len(s))
	for k, v := range s {
		parts = append(parts, k+"="+strconv.Itoa(v))
	}
	return strings.Join(parts, ",")
}

func (s scores) Set(v string) error {
	name, raw, ok := strings.Cut(v, "=")
	if !ok {
		return fmt.Errorf("expected criterion=value, got %q", v)
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("score for %s must be a number: %w", name, err)
	}
	s[strings.TrimSpace(name)] = n
	return nil
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

// parseArgs parses flags that may appear before or after positional arguments
// and returns the positionals in order.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if fs.NArg() == 0 {
			return positional, nil
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}
}

// oneID parses args and returns the single positional id.
func oneID(fs *flag.FlagSet, args []string, what string) (domain.EntityID, error) {
	positional, err := parseArgs(fs, args)
	if err != nil {
		return "", err
	}
	if len(positional) != 1 || strings.TrimSpace(positional[0]) == "" {
		return "", fmt.Errorf("%s: expected exactly one %s: %w", fs.Name(), what, domain.ErrInvalidInput)
	}
	return domain.EntityID(strings.TrimSpace(positional[0])), nil
}
