// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ContractAnalysis is the predicate function for contractanalysis builders.
type ContractAnalysis func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
