package syllable

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Constituent slices are short-lived scratch objects, one per word. To
// avoid multiple allocation of small objects we will pool them.
type scratch struct {
	constituents []Constituent
}

type scratchPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScratchPool *scratchPool

func init() {
	globalScratchPool = &scratchPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			s := &scratch{constituents: make([]Constituent, 0, 16)}
			return s, nil
		})
	globalScratchPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScratchPool.opool = pool.NewObjectPool(globalScratchPool.ctx, factory, config)
}

// borrowScratch fetches a scratch object from the pool.
func borrowScratch() *scratch {
	o, err := globalScratchPool.opool.BorrowObject(globalScratchPool.ctx)
	if err != nil || o == nil {
		return &scratch{constituents: make([]Constituent, 0, 16)}
	}
	s := o.(*scratch)
	s.constituents = s.constituents[:0]
	return s
}

// returnScratch puts a scratch object back into the pool.
func returnScratch(s *scratch) {
	_ = globalScratchPool.opool.ReturnObject(globalScratchPool.ctx, s)
}
