package xray

import (
	"sync"

	"github.com/benchsales/xraycli/internal/models"
)

// Engine owns the builder registry and aggregates builder output into one
// ordered collection. Same params always yield identical output: there is
// no randomness, no timestamps, and no deduplication.
type Engine struct {
	builders []Builder
	hotlist  Hotlist
}

func NewEngine() *Engine {
	return &Engine{builders: Registry()}
}

// GenerateAll runs every builder and concatenates the results in registry
// order. Builders are pure, so they fan out on goroutines; each writes to
// its own slot and the slots are joined in fixed order afterwards, keeping
// the output sequence deterministic.
func (e *Engine) GenerateAll(params models.SearchParams) []models.SearchQuery {
	results := make([][]models.SearchQuery, len(e.builders))

	var wg sync.WaitGroup
	for i, builder := range e.builders {
		wg.Add(1)
		go func(i int, builder Builder) {
			defer wg.Done()
			results[i] = builder.Build(params)
		}(i, builder)
	}
	wg.Wait()

	var queries []models.SearchQuery
	for _, result := range results {
		queries = append(queries, result...)
	}
	return queries
}

// GenerateHotlist runs only the hotlist builder.
func (e *Engine) GenerateHotlist(params models.SearchParams) []models.SearchQuery {
	return e.hotlist.Build(params)
}

// RoleSynonyms returns alternative job titles for broader searching.
func (e *Engine) RoleSynonyms(title string) []string {
	return RoleSynonyms(title)
}
