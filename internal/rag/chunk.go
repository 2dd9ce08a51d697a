// Package rag provides the context-retrieval collaborator: an in-memory
// knowledge base of style-guide and reference documents, chunked for
// retrieval. Embedding generation and nearest-neighbor internals are out of
// scope; retrieval uses keyword overlap scoring over the stored chunks.
package rag

import "strings"

// overlapLines is the number of trailing lines carried into the next chunk.
const overlapLines = 3

// ChunkDocument splits content into chunks of roughly maxSize bytes, broken
// at line boundaries. Each chunk after the first starts with the last three
// lines of its predecessor so context spanning a boundary survives.
func ChunkDocument(content string, maxSize int) []string {
	if maxSize <= 0 {
		return nil
	}

	var chunks []string
	var current []string
	size := 0

	for _, line := range strings.Split(content, "\n") {
		lineSize := len(line)

		if size+lineSize > maxSize && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, "\n"))

			overlap := current
			if len(overlap) > overlapLines {
				overlap = overlap[len(overlap)-overlapLines:]
			}
			current = append(append([]string{}, overlap...), line)

			size = 0
			for _, l := range current {
				size += len(l)
			}
			continue
		}

		current = append(current, line)
		size += lineSize
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, "\n"))
	}

	return chunks
}
