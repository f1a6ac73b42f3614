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
package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"studentdump/cmd"
	"studentdump/db/model"

	"github.com/spf13/cobra"
)

type (
	// Client is the scoped handle the runner acquires for one run.
	Client interface {
		FindAll(ctx context.Context) ([]*model.StudentGy23, error)
		Close() error
	}
	// OpenFn constructs a client. It must not require a live connection.
	OpenFn = func(ctx context.Context) (Client, error)

	IQueryOption interface {
		apply(*QueryOption)
	}
	QueryOptionFunc func(*QueryOption)
	QueryOption     struct {
		open OpenFn
	}
	Query struct {
		opt QueryOption
	}
)

var errNoOpener = errors.New("database client is not provided")

func (f QueryOptionFunc) apply(o *QueryOption) {
	f(o)
}

func NewQueryCommand(opts ...IQueryOption) *Query {
	opt := &QueryOption{}
	for _, o := range opts {
		o.apply(opt)
	}
	return &Query{opt: *opt}
}

// Command implements cmd.ICommand. The command has no subcommands and
// parses no flags, so every argument (help included) is ignored.
func (q *Query) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "studentdump",
		Short: "Print every row of student_gy23",
		Long: `Fetch all rows of the student_gy23 table without filtering,
ordering or pagination and print them to standard output as JSON.

Arguments and flags are ignored. The connection is configured through
the environment.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE:               q.run,
	}
}

func (q *Query) run(c *cobra.Command, _ []string) error {
	return q.Run(c.Context(), c.OutOrStdout())
}

// Run acquires a client, reads every record, writes them to out and releases
// the client exactly once on every path after acquisition.
func (q *Query) Run(ctx context.Context, out io.Writer) (err error) {
	if q.opt.open == nil {
		return errNoOpener
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := q.opt.open(ctx)
	if err != nil {
		return fmt.Errorf("open client: %w", err)
	}
	defer func() {
		if cerr := client.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close client: %w", cerr)
		}
	}()

	records, err := client.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("find student_gy23: %w", err)
	}
	return render(out, records)
}

// render writes records as an indented JSON array; no records prints [].
func render(out io.Writer, records []*model.StudentGy23) error {
	if records == nil {
		records = []*model.StudentGy23{}
	}
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	if _, err := fmt.Fprintln(out, string(payload)); err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	return nil
}

var _ cmd.ICommand = (*Query)(nil)

// WithOpener sets how the runner constructs its client.
func WithOpener(open OpenFn) IQueryOption {
	return QueryOptionFunc(func(o *QueryOption) {
		o.open = open
	})
}
