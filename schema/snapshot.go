package schema

// Snapshot is the immutable (nodes, edges) pair handed to the generator for
// one invocation. Order is meaningful: it is the editor's insertion order and
// the generator preserves it wherever output order is not explicitly sorted.
type Snapshot struct {
	Nodes []*DiagramNode      `json:"nodes"`
	Edges []*RelationshipEdge `json:"edges"`
}

// NodeByID returns the node with the given id, or nil.
func (s *Snapshot) NodeByID(id string) *DiagramNode {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// NodeByName returns the first node whose payload name matches, or nil.
func (s *Snapshot) NodeByName(name string) *DiagramNode {
	for _, n := range s.Nodes {
		if n.Name() == name {
			return n
		}
	}
	return nil
}

// EnumByName returns the first standalone enum node with the given name, or nil.
func (s *Snapshot) EnumByName(name string) *EnumData {
	for _, n := range s.Nodes {
		if n.Kind == KindEnum && n.Enum != nil && n.Enum.Name == name {
			return n.Enum
		}
	}
	return nil
}

// EdgeBetween returns the first edge connecting the named source and target
// nodes, or nil. Used by the editor and AI layers to validate edits before
// they reach the generator.
func (s *Snapshot) EdgeBetween(sourceName, targetName string) *RelationshipEdge {
	src := s.NodeByName(sourceName)
	dst := s.NodeByName(targetName)
	if src == nil || dst == nil {
		return nil
	}
	for _, e := range s.Edges {
		if e.Source == src.ID && e.Target == dst.ID {
			return e
		}
	}
	return nil
}

// EdgesFrom returns the outgoing edges of the given node in snapshot order.
func (s *Snapshot) EdgesFrom(nodeID string) []*RelationshipEdge {
	var out []*RelationshipEdge
	for _, e := range s.Edges {
		if e.Source == nodeID {
			out = append(out, e)
		}
	}
	return out
}
