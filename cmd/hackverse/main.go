package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"hackverse/config"
)

const usage = `usage: hackverse <command> [flags] [args]

commands:
  login                  sign in with Google and store the session
  logout                 forget the stored session
  home                   show the landing view for the current user
  list                   list hackathons (-q, -status, -venue, -sort, -order)
  show <id>              show one hackathon
  host                   fill in, validate and create a hackathon
  register <id>          register for a hackathon, alone or as a team
  judge <hackathonId>    list, score and submit projects
  submit <hackathonId>   hand in a project
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return flag.ErrHelp
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a, err := newApp(cfg, config.NewLogger(), out)
	if err != nil {
		return err
	}

	name, rest := args[0], args[1:]
	cmd, ok := a.commands()[name]
	if !ok {
		fmt.Fprint(out, usage)
		return fmt.Errorf("unknown command %q", name)
	}
	return cmd(ctx, rest)
}
