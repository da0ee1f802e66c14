package ports

import "go.trai.ch/babblewitz/internal/core/domain"

// CorpusLoader reads a categorized corpus directory.
//
//go:generate mockgen -source=corpus.go -destination=mocks/mock_corpus.go -package=mocks
type CorpusLoader interface {
	// Load walks root and indexes every file. Files with a malformed directive
	// are listed in Corpus.Rejected. Only an unreadable root is an error.
	Load(root string) (*domain.Corpus, error)
}

// SaveFileSource enumerates and reads performance inputs.
type SaveFileSource interface {
	// List returns the save files under root, ordered by name. Only an
	// unreadable root is an error.
	List(root string) ([]domain.SaveFile, error)
	// Read returns the bytes fed to implementations, decompressing archives.
	Read(sf domain.SaveFile) ([]byte, error)
}
