package corpus

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/babblewitz/internal/adapters/fs"
	"go.trai.ch/babblewitz/internal/adapters/logger"
	"go.trai.ch/babblewitz/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the corpus loader Graft node.
	LoaderNodeID graft.ID = "adapter.corpus.loader"
	// SavesNodeID is the unique identifier for the save file source Graft node.
	SavesNodeID graft.ID = "adapter.corpus.saves"
)

func init() {
	graft.Register(graft.Node[ports.CorpusLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID, fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CorpusLoader, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(walker, hasher, log), nil
		},
	})

	graft.Register(graft.Node[ports.SaveFileSource]{
		ID:        SavesNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID, fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.SaveFileSource, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewSaveSource(walker, hasher), nil
		},
	})
}
