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
package orm

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"

	"studentdump/annotae"
	"studentdump/cmd"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gorm.io/gen"
	"gorm.io/gorm"
)

const (
	styleModel = "model"
	styleDao   = "dao"
)

// DefaultTables are generated when no -t flag is given.
var DefaultTables = []string{"student_gy23"}

type (
	// DataTypeFn defines a function type for custom data type mapping.
	DataTypeFn = func(gorm.ColumnType) string
	// OpenFn opens the database the generator reads the schema from.
	OpenFn = func() (db *gorm.DB, release func() error, err error)

	IOrmOption interface {
		apply(*OrmOption)
	}
	OrmOptionFunc func(*OrmOption)
	OrmOption     struct {
		open  OpenFn
		gconf gen.Config
		// file name per table
		rename map[string]string
		// ignored columns
		// global ignore:
		// []string{ "*->created_at,updated_at" }
		//
		// table-specific ignore:
		// []string{ "student_gy23->created_at" }
		ignore []string
		// json tag renames
		// []string{ "*->created_at->c_date" }
		retags []string
		// gorm column renames
		// []string{ "student_gy23->created_at->c_date" }
		reGormTags []string
		// extra imports for the generated models
		imports []string
		// go type per database type
		// map[string]DataTypeFn{"*->timestamp": func(gorm.ColumnType) string { return "types.DbTime" }}
		dataType map[string]DataTypeFn
		// tables that get a dao; "*" means all
		daoTables []string
		// query interfaces applied to daos; "*" means all
		daoApi map[string]any
	}
	Orm struct {
		opt       OrmOption
		generator *gen.Generator
		rules     *rules
		structs   []any
	}
)

func (f OrmOptionFunc) apply(o *OrmOption) {
	f(o)
}

func NewOrmCommand(opts ...IOrmOption) *Orm {
	opt := &OrmOption{}
	for _, o := range opts {
		o.apply(opt)
	}
	return &Orm{opt: *opt}
}

// Command implements ICommand.
func (o *Orm) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Regenerate the gorm model and dao packages",
		Long: `Read the table schema from the configured database and regenerate
the typed model and query packages used by studentdump.

site: https://gorm.io/gen`,
		Example: `# Regenerate model and dao for student_gy23
go generate ./...

# Only the model
go run ./cmd/gen --style model

# Generate under another model name
go run ./cmd/gen -t student_gy23@Student`,
		Args: cobra.MaximumNArgs(0),
		RunE: o.run,
	}

	o.flags(cmd)
	return cmd
}

// flags adds command-line flags to the Orm command.
func (o *Orm) flags(c *cobra.Command) {
	c.Flags().String("style", styleDao, `The file type. options: model, dao`)
	c.Flags().StringArrayP("tables", "t", DefaultTables, "Tables to generate, table@ModelName renames the model")
}

func (o *Orm) run(c *cobra.Command, _ []string) error {
	if o.opt.open == nil {
		return errors.New("database connection is not provided")
	}

	if err := o.prepare(c.Flags(), c.ErrOrStderr()); err != nil {
		return err
	}
	if err := o.execute(); err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(c.OutOrStdout(), "\nGorm code generation completed successfully.\n\n")
	return nil
}

// prepare parses the rules, reads the schema and registers models and daos
// on a fresh generator. Nothing is written until Execute.
func (o *Orm) prepare(args *pflag.FlagSet, warn io.Writer) (err error) {
	style, err := args.GetString("style")
	if err != nil {
		return err
	}
	if style != styleModel && style != styleDao {
		return fmt.Errorf("unsupported style %q, must be model or dao", style)
	}
	tables, err := args.GetStringArray("tables")
	if err != nil {
		return err
	}

	if o.rules, err = parseRules(o.opt); err != nil {
		return err
	}

	db, release, err := o.opt.open()
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if rerr := release(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	o.generator = gen.NewGenerator(o.opt.gconf)
	o.generator.UseDB(db)
	if len(o.opt.imports) > 0 {
		o.generator.WithImportPkgPath(o.opt.imports...)
	}
	o.generator.WithJSONTagNameStrategy(func(columnName string) string {
		return columnName
	})
	if len(o.opt.rename) > 0 {
		o.generator.WithFileNameStrategy(func(tableName string) string {
			if name, ok := o.opt.rename[tableName]; ok {
				return name
			}
			return strings.ToLower(tableName)
		})
	}

	o.structs = nil
	if err := o.model(db, warn, tables...); err != nil {
		return err
	}
	if style == styleModel {
		return nil
	}
	return o.dao()
}

// execute writes the registered files. gen reports write failures by
// panicking; they are returned as errors instead.
func (o *Orm) execute() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generate: %v", r)
		}
	}()
	o.generator.Execute()
	return nil
}

// model registers a model for each table, all tables when none are given.
func (o *Orm) model(db *gorm.DB, warn io.Writer, tables ...string) error {
	if len(tables) == 0 {
		var err error
		if tables, err = db.Migrator().GetTables(); err != nil {
			return err
		}
	}

	for _, val := range tables {
		vals := strings.Split(val, "@")
		if len(vals) > 2 {
			color.New(color.FgYellow).Fprintf(warn, "Skipping invalid table format: %s. Expected format: table@modelName\n", val)
			continue
		}
		table := vals[0]
		if !db.Migrator().HasTable(table) {
			return fmt.Errorf("table %q not found", table)
		}

		if types := o.rules.dataTypes(table); len(types) > 0 {
			o.generator.WithDataTypeMap(types)
		}
		opts := o.rules.modelOpts(table)

		if len(vals) == 1 {
			o.structs = append(o.structs, o.generator.GenerateModel(table, opts...))
			continue
		}
		o.structs = append(o.structs, o.generator.GenerateModelAs(table, vals[1], opts...))
	}

	return nil
}

// dao registers the basic query api and the annotated interfaces.
func (o *Orm) dao() error {
	if len(o.structs) == 0 {
		return errors.New("no structs available for DAO generation")
	}

	var structs []any
	byTable := make(map[string]any)
	for _, meta := range o.structs {
		table := tableOf(meta)
		if len(o.opt.daoTables) > 0 && !slices.Contains(o.opt.daoTables, "*") && !slices.Contains(o.opt.daoTables, table) {
			continue
		}
		structs = append(structs, meta)
		byTable[table] = meta
	}
	if len(structs) == 0 {
		return errors.New("no matching structs found for DAO generation")
	}

	o.generator.ApplyBasic(structs...)
	if api, ok := o.opt.daoApi["*"]; ok {
		o.generator.ApplyInterface(api, structs...)
	}
	for table, api := range o.opt.daoApi {
		if table == "*" {
			continue
		}
		if s, ok := byTable[table]; ok {
			o.generator.ApplyInterface(api, s)
		}
	}
	return nil
}

// tableOf reads TableName off a generated struct meta.
func tableOf(meta any) string {
	return reflect.ValueOf(meta).Elem().FieldByName("TableName").String()
}

var _ cmd.ICommand = (*Orm)(nil)

// DefaultConfig is the gen.Config db/dao and db/model are generated with.
func DefaultConfig(outPath, modelPkgPath string) gen.Config {
	return gen.Config{
		OutPath:           outPath,
		OutFile:           "",
		ModelPkgPath:      modelPkgPath,
		Mode:              gen.WithDefaultQuery,
		FieldNullable:     false,
		FieldCoverable:    false,
		FieldSignable:     false,
		FieldWithIndexTag: false,
		FieldWithTypeTag:  true,
	}
}

// Defaults are the type mappings and query interfaces of the checked-in code.
func Defaults() []IOrmOption {
	timeFunc := func(gorm.ColumnType) string {
		return "types.DbTime"
	}
	return []IOrmOption{
		WithImportPkgPath("studentdump/types"),
		WithDataType(map[string]DataTypeFn{
			"*->timestamp": timeFunc,
			"*->datetime":  timeFunc,
		}),
		WithDaoTables([]string{"*"}),
		WithDaoApi(map[string]any{
			"*": func(annotae.Querier) {},
		}),
	}
}

// WithOpener sets how the generator opens its database.
func WithOpener(open OpenFn) IOrmOption {
	return OrmOptionFunc(func(o *OrmOption) {
		o.open = open
	})
}

// WithConfig sets the gen.Config for the Orm.
func WithConfig(gconf gen.Config) IOrmOption {
	return OrmOptionFunc(func(o *OrmOption) {
		o.gconf = gconf
	})
}

// WithRename sets the file name per table.
func WithRename(rename map[string]string) IOrmOption {
	return OrmOptionFunc(func(o *OrmOption) {
		o.rename = rename
	})
}

// WithIgnore sets the ignored columns.
func WithIgnore(ignore []string) IOrmOption {
	return OrmOptionFunc(func(o *OrmOption) {
		o.ignore = ignore
	})
}

// WithRetags sets the json tag renames.
func WithRetags(retags []string) IOrmOption {
	return OrmOptionFunc(func(o *OrmOption) {
		o.retags = retags
	})
}

// WithReGormTags sets the gorm column renames.
func WithReGormTags(reGormTags []string) IOrmOption {
	return OrmOptionFunc(func(o *OrmOption) {
		o.reGormTags = reGormTags
	})
}

// WithImportPkgPath adds imports to the generated models.
func WithImportPkgPath(paths ...string) IOrmOption {
	return OrmOptionFunc(func(o *OrmOption) {
		o.imports = append(o.imports, paths...)
	})
}

// WithDataType sets the data type mapping.
func WithDataType(dataType map[string]DataTypeFn) IOrmOption {
	return OrmOptionFunc(func(o *OrmOption) {
		o.dataType = dataType
	})
}

// WithDaoTables limits dao generation to tables.
func WithDaoTables(tables []string) IOrmOption {
	return OrmOptionFunc(func(o *OrmOption) {
		o.daoTables = tables
	})
}

// WithDaoApi sets the query interfaces per table.
func WithDaoApi(daoApi map[string]any) IOrmOption {
	return OrmOptionFunc(func(o *OrmOption) {
		o.daoApi = daoApi
	})
}
