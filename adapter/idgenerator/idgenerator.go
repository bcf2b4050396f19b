// Package idgenerator contains the default [domain.IDGenerator] implementation,
// which hands out ids from the counter stored in each collection.
package idgenerator

import (
	"math"

	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

// IDGenerator implements [domain.IDGenerator]. Ids start at 1 and are never
// reused, even after the documents holding them are deleted.
type IDGenerator struct{}

// NewIDGenerator returns a new implementation of [domain.IDGenerator].
func NewIDGenerator() domain.IDGenerator {
	return &IDGenerator{}
}

// NextID implements [domain.IDGenerator].
func (i *IDGenerator) NextID(col *domain.Collection) (uint64, error) {
	if col.IDCount == math.MaxUint64 {
		return 0, domain.ErrIDSpaceExhausted
	}
	col.IDCount++
	return col.IDCount, nil
}
