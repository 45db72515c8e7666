package genetics

import "sync"

// nodeSplitRecord memoizes the outcome of splitting one connection, so that
// any two genomes which independently perform the same add-node mutation are
// assigned identical ids - the invariant crossover and compatibility distance
// rely on.
type nodeSplitRecord struct {
	newNodeId         int
	inInnovationId    int64
	outInnovationId   int64
}

// InnovationRegistry assigns globally-consistent ids to new nodes, new
// connections, and connection-splits within a single run. It is exclusively
// owned and mutated by the orchestrating goroutine (see Population) - it must
// never be touched from parallel fitness-evaluation workers.
type InnovationRegistry struct {
	mu sync.Mutex

	nextNodeId       int
	nextConnectionId int64

	// connectionInnovations maps a (source,target) pair to the connection
	// innovation id it was first assigned, this run.
	connectionInnovations map[nodePair]int64

	// nodeSplits maps a connection innovation id to the node-split outcome
	// recorded the first time that connection was split.
	nodeSplits map[int64]nodeSplitRecord
}

type nodePair struct {
	source, target int
}

// NewInnovationRegistry creates an empty registry. firstNodeId/firstConnectionId
// let the caller reserve ids already consumed by genesis (e.g. input/output/bias
// nodes assigned outside the registry, or genesis connections already recorded
// through RecordConnectionInnovation).
func NewInnovationRegistry(firstNodeId int, firstConnectionId int64) *InnovationRegistry {
	return &InnovationRegistry{
		nextNodeId:            firstNodeId,
		nextConnectionId:      firstConnectionId,
		connectionInnovations: make(map[nodePair]int64),
		nodeSplits:            make(map[int64]nodeSplitRecord),
	}
}

// RecordNodeInnovation allocates and returns a fresh node id.
func (r *InnovationRegistry) RecordNodeInnovation() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextNodeId
	r.nextNodeId++
	return id
}

// RecordConnectionInnovation returns the existing innovation id for (source,
// target) if that edge was ever recorded this run, otherwise it allocates,
// stores, and returns a fresh one.
func (r *InnovationRegistry) RecordConnectionInnovation(source, target int) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recordConnectionInnovationLocked(source, target)
}

func (r *InnovationRegistry) recordConnectionInnovationLocked(source, target int) int64 {
	key := nodePair{source, target}
	if id, ok := r.connectionInnovations[key]; ok {
		return id
	}
	id := r.nextConnectionId
	r.nextConnectionId++
	r.connectionInnovations[key] = id
	return id
}

// RecordNodeSplit records (or recalls, if memoized) the structural edit of
// splitting connection innovation connInnovationId - which ran between src
// and dst - into src->new and new->dst. Returns the new node's id and the two
// new connection innovation ids, in (in-half, out-half) order.
func (r *InnovationRegistry) RecordNodeSplit(connInnovationId int64, src, dst int) (newNodeId int, inInnovationId, outInnovationId int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec, ok := r.nodeSplits[connInnovationId]; ok {
		return rec.newNodeId, rec.inInnovationId, rec.outInnovationId
	}

	newNodeId = r.nextNodeId
	r.nextNodeId++

	inInnovationId = r.recordConnectionInnovationLocked(src, newNodeId)
	outInnovationId = r.recordConnectionInnovationLocked(newNodeId, dst)

	r.nodeSplits[connInnovationId] = nodeSplitRecord{
		newNodeId:       newNodeId,
		inInnovationId:  inInnovationId,
		outInnovationId: outInnovationId,
	}
	return newNodeId, inInnovationId, outInnovationId
}
