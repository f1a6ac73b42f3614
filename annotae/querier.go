package annotae

import "gorm.io/gen"

// Querier is applied to every generated dao.
type Querier interface {
	// SELECT * FROM @@table
	FindAll() ([]*gen.T, error)
}
