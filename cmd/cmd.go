/*
Copyright © 2025 czx-lab www.aiweimeng.top

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// ICommand is implemented by every entry point command.
type ICommand interface {
	Command() *cobra.Command
}

// Execute runs c with the process arguments and exits with its status.
func Execute(c ICommand) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Run(ctx, os.Args[1:], os.Stdout, os.Stderr, c)
	stop()
	os.Exit(code)
}

// Run executes c as the root command and returns the exit status:
// 0 on success, 1 on any error.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, c ICommand) int {
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}

	root := c.Command()
	// cobra routes "__complete" to a hidden command even on a leaf root;
	// a leading "--" stops the lookup so the args reach RunE untouched.
	if root.DisableFlagParsing && !root.HasSubCommands() {
		args = append([]string{"--"}, args...)
	}
	root.SilenceErrors = true
	root.SilenceUsage = true
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		errorColor(stderr).Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// errorColor colours only when w itself is a terminal; color.NoColor
// reflects stdout, not the error stream.
func errorColor(w io.Writer) *color.Color {
	c := color.New(color.FgRed)
	if isTerminal(w) && os.Getenv("NO_COLOR") == "" && os.Getenv("TERM") != "dumb" {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
