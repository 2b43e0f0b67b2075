// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// addCommand appends a new task to the local collection
func addCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "add",
		Aliases: []string{"a"},
		Usage:   "Add a task",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "text",
			},
		},
		Action: r.Add,
	}
}

// listCommand prints the local collection
func listCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List tasks",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, csv, md",
				Value:   "text",
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Show all tasks (default)",
			},
			&cli.BoolFlag{
				Name:  "done",
				Usage: "Only completed tasks",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Only open tasks",
			},
		},
		Action: r.List,
	}
}

// toggleCommand flips a task's completed flag
func toggleCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "toggle",
		Aliases: []string{"t", "done"},
		Usage:   "Toggle a task by id or unique id prefix",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "id",
			},
		},
		Action: r.Toggle,
	}
}

// rmCommand removes a task
func rmCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "rm",
		Aliases: []string{"delete"},
		Usage:   "Remove a task by id or unique id prefix",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "id",
			},
		},
		Action: r.Remove,
	}
}

// syncCommand pushes the local collection to the server
func syncCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Push the full local collection to the sync server",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "history",
				Usage: "Show recent sync attempts instead of syncing",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of history entries to show",
				Value: 20,
			},
			&cli.IntFlag{
				Name:  "prune",
				Usage: "Prune the journal to the newest N entries instead of syncing",
			},
		},
		Action: r.Sync,
	}
}

// fetchCommand reads the server's current collection
func fetchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "fetch",
		Usage: "Print the server's current collection",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Fetch,
	}
}

// healthCommand probes the server's health endpoint
func healthCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "health",
		Usage:  "Check sync server liveness",
		Action: r.Health,
	}
}

// serveCommand runs the sync server
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the task sync server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Listen port (overrides config and TDX_PORT)",
			},
		},
		Action: r.Serve,
	}
}

// tuiCommand launches the interactive terminal UI
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Launch the interactive task list",
		Action: r.TUI,
	}
}

// setupCommand writes the default config and initializes the journal database
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create config file and initialize the sync journal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}
