package orm

import (
	"bytes"
	"context"
	"errors"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"studentdump/cmd"
	"studentdump/db/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "schema.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.StudentGy23{}))
	return db
}

func opener(db *gorm.DB, released *int) OpenFn {
	return func() (*gorm.DB, func() error, error) {
		return db, func() error { *released++; return nil }, nil
	}
}

func structName(meta any) string {
	return reflect.ValueOf(meta).Elem().FieldByName("ModelStructName").String()
}

func TestParseRules(t *testing.T) {
	r, err := parseRules(OrmOption{
		ignore:     []string{"*->updated_at", "student_gy23->deleted_at,note"},
		retags:     []string{"*->created_at->c_date", "student_gy23->name->full_name"},
		reGormTags: []string{"student_gy23->created_at->created"},
		dataType: map[string]DataTypeFn{
			"*->timestamp":           func(gorm.ColumnType) string { return "types.DbTime" },
			"student_gy23->datetime": func(gorm.ColumnType) string { return "time.Time" },
		},
	})
	require.NoError(t, err)

	assert.Len(t, r.global, 2)
	assert.Equal(t, []string{"deleted_at", "note"}, r.ignore["student_gy23"])
	assert.Equal(t, [][2]string{{"name", "full_name"}}, r.jsonTags["student_gy23"])
	assert.Equal(t, [][2]string{{"created_at", "created"}}, r.gormTags["student_gy23"])

	// global + ignore + json + gorm
	assert.Len(t, r.modelOpts("student_gy23"), 5)
	assert.Len(t, r.modelOpts("other"), 2)

	types := r.dataTypes("student_gy23")
	assert.Len(t, types, 2)
	assert.Len(t, r.dataTypes("other"), 1)
	assert.NotContains(t, r.globalTypes, "datetime")
}

func TestParseRulesInvalid(t *testing.T) {
	tests := []struct {
		name string
		opt  OrmOption
		want string
	}{
		{name: "retag", opt: OrmOption{retags: []string{"name->full"}}, want: "invalid retag format"},
		{name: "gorm retag", opt: OrmOption{reGormTags: []string{"a->b->c->d"}}, want: "invalid gorm retag format"},
		{name: "ignore", opt: OrmOption{ignore: []string{"created_at"}}, want: "invalid ignore format"},
		{name: "data type", opt: OrmOption{dataType: map[string]DataTypeFn{"timestamp": nil}}, want: "invalid data type mapping format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRules(tt.opt)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestCommandFlags(t *testing.T) {
	c := NewOrmCommand().Command()

	style, err := c.Flags().GetString("style")
	require.NoError(t, err)
	assert.Equal(t, "dao", style)

	tables, err := c.Flags().GetStringArray("tables")
	require.NoError(t, err)
	assert.Equal(t, []string{"student_gy23"}, tables)
}

func TestPrepareModels(t *testing.T) {
	db := setupTestDB(t)
	released := 0

	o := NewOrmCommand(
		WithOpener(opener(db, &released)),
		WithConfig(gen.Config{OutPath: filepath.Join(t.TempDir(), "dao"), ModelPkgPath: "model"}),
		WithIgnore([]string{"*->created_at"}),
	)
	c := o.Command()
	require.NoError(t, c.Flags().Set("style", "model"))
	require.NoError(t, c.Flags().Set("tables", "student_gy23"))
	require.NoError(t, c.Flags().Set("tables", "student_gy23@Student"))
	require.NoError(t, c.Flags().Set("tables", "a@b@c"))

	var warn bytes.Buffer
	require.NoError(t, o.prepare(c.Flags(), &warn))

	require.Len(t, o.structs, 2)
	assert.Equal(t, "StudentGy23", structName(o.structs[0]))
	assert.Equal(t, "Student", structName(o.structs[1]))
	assert.Equal(t, "student_gy23", tableOf(o.structs[1]))
	assert.Contains(t, warn.String(), "a@b@c")
	assert.Equal(t, 1, released)
}

func TestPrepareRejectsBadInput(t *testing.T) {
	db := setupTestDB(t)
	released := 0

	o := NewOrmCommand(WithOpener(opener(db, &released)), WithRetags([]string{"broken"}))
	c := o.Command()
	err := o.prepare(c.Flags(), &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid retag format")
	assert.Zero(t, released, "database must not be opened for malformed rules")

	o = NewOrmCommand(WithOpener(opener(db, &released)))
	c = o.Command()
	require.NoError(t, c.Flags().Set("style", "xml"))
	assert.ErrorContains(t, o.prepare(c.Flags(), &bytes.Buffer{}), "unsupported style")
}

func TestPrepareUnknownTable(t *testing.T) {
	db := setupTestDB(t)
	released := 0

	o := NewOrmCommand(WithOpener(opener(db, &released)))
	c := o.Command()
	require.NoError(t, c.Flags().Set("tables", "nope"))

	err := o.prepare(c.Flags(), &bytes.Buffer{})
	assert.EqualError(t, err, `table "nope" not found`)
	assert.Empty(t, o.structs)
	assert.Equal(t, 1, released)
}

func TestRunUnknownTableExitsWithError(t *testing.T) {
	released := 0
	o := NewOrmCommand(
		WithOpener(opener(setupTestDB(t), &released)),
		WithConfig(DefaultConfig(filepath.Join(t.TempDir(), "dao"), "model")),
	)

	var stdout, stderr bytes.Buffer
	code := cmd.Run(context.Background(), []string{"-t", "nope"}, &stdout, &stderr, o)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), `table "nope" not found`)
	assert.Equal(t, 1, released)
}

func TestPrepareOpenFailure(t *testing.T) {
	o := NewOrmCommand(WithOpener(func() (*gorm.DB, func() error, error) {
		return nil, nil, errors.New("connection refused")
	}))
	err := o.prepare(o.Command().Flags(), &bytes.Buffer{})
	assert.ErrorContains(t, err, "open database: connection refused")
}

func TestRunWithoutDatabase(t *testing.T) {
	c := NewOrmCommand().Command()
	assert.Error(t, c.RunE(c, nil))
}

func TestDaoWithoutStructs(t *testing.T) {
	o := NewOrmCommand()
	assert.ErrorContains(t, o.dao(), "no structs available")
}

func TestGenerateMatchesCheckedInCode(t *testing.T) {
	released := 0
	out := filepath.Join(t.TempDir(), "dao")
	opts := append(Defaults(),
		WithOpener(opener(setupTestDB(t), &released)),
		WithConfig(DefaultConfig(out, "model")),
	)

	var stdout, stderr bytes.Buffer
	code := cmd.Run(context.Background(), nil, &stdout, &stderr, NewOrmCommand(opts...))
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, 1, released)

	assert.Equal(t,
		modelFields(t, filepath.Join("..", "..", "db", "model", "student_gy23.gen.go")),
		modelFields(t, filepath.Join(filepath.Dir(out), "model", "student_gy23.gen.go")),
	)
	assert.Equal(t,
		funcSignatures(t, filepath.Join("..", "..", "db", "dao", "student_gy23.gen.go")),
		funcSignatures(t, filepath.Join(out, "student_gy23.gen.go")),
	)
}

func TestGenerateRenamesFiles(t *testing.T) {
	released := 0
	out := filepath.Join(t.TempDir(), "dao")
	opts := append(Defaults(),
		WithOpener(opener(setupTestDB(t), &released)),
		WithConfig(DefaultConfig(out, "model")),
		WithRename(map[string]string{"student_gy23": "students"}),
	)

	var stderr bytes.Buffer
	code := cmd.Run(context.Background(), []string{"--style", "model"}, &bytes.Buffer{}, &stderr, NewOrmCommand(opts...))
	require.Equal(t, 0, code, stderr.String())

	_, err := os.Stat(filepath.Join(filepath.Dir(out), "model", "students.gen.go"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(filepath.Dir(out), "model", "student_gy23.gen.go"))
	assert.True(t, os.IsNotExist(err))
}

// modelFields lists "Name Type json column" for every field of StudentGy23.
func modelFields(t *testing.T, path string) []string {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, nil, 0)
	require.NoError(t, err)

	var fields []string
	ast.Inspect(f, func(n ast.Node) bool {
		spec, ok := n.(*ast.TypeSpec)
		if !ok || spec.Name.Name != "StudentGy23" {
			return true
		}
		for _, fd := range spec.Type.(*ast.StructType).Fields.List {
			raw, err := strconv.Unquote(fd.Tag.Value)
			require.NoError(t, err)
			tag := reflect.StructTag(raw)
			fields = append(fields, strings.Join([]string{
				fd.Names[0].Name, node(t, fset, fd.Type), tag.Get("json"), columnOf(tag.Get("gorm")),
			}, " "))
		}
		return false
	})
	require.NotEmpty(t, fields, path)
	return fields
}

// funcSignatures maps "Receiver.Method" to the printed signature.
func funcSignatures(t *testing.T, path string) map[string]string {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, nil, 0)
	require.NoError(t, err)

	sigs := make(map[string]string)
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		name := fn.Name.Name
		if fn.Recv != nil {
			name = node(t, fset, fn.Recv.List[0].Type) + "." + name
		}
		sigs[name] = node(t, fset, fn.Type)
	}
	return sigs
}

// columnOf reads column:<name> from a gorm tag.
func columnOf(tag string) string {
	for _, part := range strings.Split(tag, ";") {
		if name, ok := strings.CutPrefix(part, "column:"); ok {
			return name
		}
	}
	return ""
}

func node(t *testing.T, fset *token.FileSet, n any) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, printer.Fprint(&buf, fset, n))
	return buf.String()
}
