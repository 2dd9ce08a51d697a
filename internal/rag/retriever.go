package rag

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yaklabco/cppgrader/internal/logging"
)

// Document is one stored knowledge-base document.
type Document struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Content  string    `json:"-"`
	Chunks   int       `json:"chunks"`
	Metadata string    `json:"metadata,omitempty"`
	Added    time.Time `json:"added"`
}

// chunkRecord is one indexed chunk.
type chunkRecord struct {
	docID string
	text  string
	terms map[string]bool
}

// Retriever is the in-memory context retriever.
type Retriever struct {
	chunkSize int

	mu     sync.RWMutex
	docs   map[string]Document
	chunks []chunkRecord
}

// New creates a Retriever that chunks documents at chunkSize bytes.
func New(chunkSize int) *Retriever {
	return &Retriever{
		chunkSize: chunkSize,
		docs:      make(map[string]Document),
	}
}

// AddDocument chunks and indexes a document, returning its generated id.
func (r *Retriever) AddDocument(ctx context.Context, content, docType, metadata string) string {
	id := uuid.NewString()
	chunks := ChunkDocument(content, r.chunkSize)

	r.mu.Lock()
	r.docs[id] = Document{
		ID:       id,
		Type:     docType,
		Content:  content,
		Chunks:   len(chunks),
		Metadata: metadata,
		Added:    time.Now().UTC(),
	}
	for _, text := range chunks {
		r.chunks = append(r.chunks, chunkRecord{
			docID: id,
			text:  text,
			terms: termSet(text),
		})
	}
	r.mu.Unlock()

	logging.FromContext(ctx).Debug("document indexed",
		logging.FieldDocID, id,
		"chunks", len(chunks),
	)

	return id
}

// DeleteDocument removes a document and its chunks. It reports whether the
// document existed.
func (r *Retriever) DeleteDocument(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return false
	}
	delete(r.docs, id)

	kept := r.chunks[:0]
	for _, c := range r.chunks {
		if c.docID != id {
			kept = append(kept, c)
		}
	}
	r.chunks = kept

	return true
}

// ListDocuments returns all stored documents sorted by insertion time.
func (r *Retriever) ListDocuments() []Document {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]Document, 0, len(r.docs))
	for _, d := range r.docs {
		docs = append(docs, d)
	}

	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].Added.Equal(docs[j].Added) {
			return docs[i].Added.Before(docs[j].Added)
		}
		return docs[i].ID < docs[j].ID
	})

	return docs
}

// Search returns up to topK chunks ranked by keyword overlap with the
// query. An empty result is valid; search never fails.
func (r *Retriever) Search(ctx context.Context, query string, topK int) ([]string, error) {
	if topK <= 0 {
		return nil, nil
	}

	queryTerms := termSet(query)
	if len(queryTerms) == 0 {
		return nil, nil
	}

	type scored struct {
		idx   int
		score int
	}

	r.mu.RLock()
	var ranked []scored
	for i, c := range r.chunks {
		score := 0
		for term := range queryTerms {
			if c.terms[term] {
				score++
			}
		}
		if score > 0 {
			ranked = append(ranked, scored{idx: i, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > topK {
		ranked = ranked[:topK]
	}

	results := make([]string, 0, len(ranked))
	for _, s := range ranked {
		results = append(results, r.chunks[s.idx].text)
	}
	r.mu.RUnlock()

	logging.FromContext(ctx).Debug("context search",
		logging.FieldTopK, topK,
		"matches", len(results),
	)

	return results, nil
}

// termRe splits text into word terms.
var termRe = regexp.MustCompile(`[a-z0-9_]+`)

// termSet lowercases text and collects its distinct terms, dropping
// single-character noise.
func termSet(text string) map[string]bool {
	terms := make(map[string]bool)
	for _, term := range termRe.FindAllString(strings.ToLower(text), -1) {
		if len(term) > 1 {
			terms[term] = true
		}
	}
	return terms
}
