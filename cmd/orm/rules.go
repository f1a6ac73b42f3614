package orm

import (
	"errors"
	"maps"
	"strings"

	"gorm.io/gen"
	"gorm.io/gen/field"
)

// rules holds the parsed per-table and global generator options. A rule
// whose table part is "*" applies to every table.
type rules struct {
	global      []gen.ModelOpt
	ignore      map[string][]string
	jsonTags    map[string][][2]string
	gormTags    map[string][][2]string
	types       map[string]map[string]DataTypeFn
	globalTypes map[string]DataTypeFn
}

func parseRules(opt OrmOption) (*rules, error) {
	r := &rules{
		ignore:      make(map[string][]string),
		jsonTags:    make(map[string][][2]string),
		gormTags:    make(map[string][][2]string),
		types:       make(map[string]map[string]DataTypeFn),
		globalTypes: make(map[string]DataTypeFn),
	}

	// json retags: table->column->tag
	for _, retag := range opt.retags {
		parts := strings.Split(retag, "->")
		if len(parts) != 3 {
			return nil, errors.New("invalid retag format: " + retag)
		}
		if parts[0] == "*" {
			r.global = append(r.global, gen.FieldJSONTag(parts[1], parts[2]))
			continue
		}
		r.jsonTags[parts[0]] = append(r.jsonTags[parts[0]], [2]string{parts[1], parts[2]})
	}

	// gorm column retags: table->column->newColumn
	for _, retag := range opt.reGormTags {
		parts := strings.Split(retag, "->")
		if len(parts) != 3 {
			return nil, errors.New("invalid gorm retag format: " + retag)
		}
		if parts[0] == "*" {
			r.global = append(r.global, gormColumn(parts[1], parts[2]))
			continue
		}
		r.gormTags[parts[0]] = append(r.gormTags[parts[0]], [2]string{parts[1], parts[2]})
	}

	// ignored columns: table->c1,c2
	for _, ignore := range opt.ignore {
		parts := strings.Split(ignore, "->")
		if len(parts) != 2 {
			return nil, errors.New("invalid ignore format: " + ignore)
		}
		fields := strings.Split(parts[1], ",")
		if parts[0] == "*" {
			r.global = append(r.global, gen.FieldIgnore(fields...))
			continue
		}
		r.ignore[parts[0]] = append(r.ignore[parts[0]], fields...)
	}

	// data types: table->dbtype
	for key, typ := range opt.dataType {
		parts := strings.Split(key, "->")
		if len(parts) != 2 {
			return nil, errors.New("invalid data type mapping format: " + key)
		}
		if parts[0] == "*" {
			r.globalTypes[parts[1]] = typ
			continue
		}
		if _, ok := r.types[parts[0]]; !ok {
			r.types[parts[0]] = make(map[string]DataTypeFn)
		}
		r.types[parts[0]][parts[1]] = typ
	}

	return r, nil
}

// modelOpts returns the global options followed by the ones for table.
func (r *rules) modelOpts(table string) []gen.ModelOpt {
	opts := append([]gen.ModelOpt(nil), r.global...)
	if ign, ok := r.ignore[table]; ok {
		opts = append(opts, gen.FieldIgnore(ign...))
	}
	for _, t := range r.jsonTags[table] {
		opts = append(opts, gen.FieldJSONTag(t[0], t[1]))
	}
	for _, t := range r.gormTags[table] {
		opts = append(opts, gormColumn(t[0], t[1]))
	}
	return opts
}

// dataTypes merges the global mapping with the one for table; table wins.
func (r *rules) dataTypes(table string) map[string]DataTypeFn {
	types := maps.Clone(r.globalTypes)
	maps.Copy(types, r.types[table])
	return types
}

func gormColumn(columnName, column string) gen.ModelOpt {
	return gen.FieldGORMTag(columnName, func(tag field.GormTag) field.GormTag {
		return tag.Set("column", column)
	})
}
