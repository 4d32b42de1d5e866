// Package search provides the free-text candidate search collaborator.
// Relevance is delegated wholesale to bleve; the ranking core only ever
// sees the identifiers this package returns.
package search

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"

	"github.com/jonathan/hireai/internal/types"
)

// Searcher is the narrow interface the rest of the system depends on:
// a natural-language query in, candidate identifiers out, best first.
type Searcher interface {
	Search(query string, limit int) ([]string, error)
}

// candidateDoc is the indexed projection of a candidate profile.
type candidateDoc struct {
	Skills    []string `json:"skills"`
	Location  string   `json:"location"`
	Education string   `json:"education"`
	RawText   string   `json:"raw_text"`
}

// Index is an in-memory bleve index over candidate profiles.
type Index struct {
	index bleve.Index
}

// NewIndex builds an in-memory index and loads the given candidates.
func NewIndex(candidates []types.CandidateProfile) (*Index, error) {
	mapping := bleve.NewIndexMapping()
	index, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, fmt.Errorf("failed to create search index: %w", err)
	}

	idx := &Index{index: index}
	for i := range candidates {
		if err := idx.Add(&candidates[i]); err != nil {
			index.Close()
			return nil, err
		}
	}
	return idx, nil
}

// Add indexes one candidate. Re-adding an identifier replaces the
// previous document.
func (i *Index) Add(candidate *types.CandidateProfile) error {
	doc := candidateDoc{
		Skills:    candidate.Skills,
		Location:  candidate.Location,
		Education: string(candidate.Education),
		RawText:   candidate.RawText,
	}
	if err := i.index.Index(candidate.ID, doc); err != nil {
		return fmt.Errorf("failed to index candidate %s: %w", candidate.ID, err)
	}
	return nil
}

// Search runs a natural-language query and returns matching candidate
// identifiers, best match first.
func (i *Index) Search(query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}

	req := bleve.NewSearchRequestOptions(bleve.NewQueryStringQuery(query), limit, 0, false)
	result, err := i.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	ids := make([]string, 0, len(result.Hits))
	for _, hit := range result.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}

// Close releases the index.
func (i *Index) Close() error {
	return i.index.Close()
}
