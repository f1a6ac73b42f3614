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
// Command gen regenerates db/model and db/dao from the live schema.
//
//	go generate ./...
//	go run ./cmd/gen --style model -t student_gy23
package main

import (
	"studentdump/cmd"
	"studentdump/cmd/orm"
	"studentdump/config"
	"studentdump/db"

	"gorm.io/gorm"
)

func main() {
	cfg := config.New()

	opts := append(orm.Defaults(),
		orm.WithConfig(orm.DefaultConfig(cfg.Gen.OutPath, cfg.Gen.ModelPkgPath)),
		orm.WithOpener(func() (*gorm.DB, func() error, error) {
			c, err := db.Open(cfg.DB)
			if err != nil {
				return nil, nil, err
			}
			return c.DB(), c.Close, nil
		}),
	)
	cmd.Execute(orm.NewOrmCommand(opts...))
}
