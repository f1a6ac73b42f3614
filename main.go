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
package main

import (
	"context"

	"studentdump/cmd"
	"studentdump/cmd/query"
	"studentdump/config"
	"studentdump/db"
)

//go:generate go run ./cmd/gen

func main() {
	cfg := config.New()

	cmd.Execute(query.NewQueryCommand(
		query.WithOpener(func(context.Context) (query.Client, error) {
			c, err := db.Open(cfg.DB)
			if err != nil {
				return nil, err
			}
			return c, nil
		}),
	))
}
