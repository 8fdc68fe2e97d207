package share

// peerType is the entity type used for both ends of a message
const peerType = "peer"

// peer wraps an identifier to implement core.Entity
type peer struct {
	id string
}

func newPeer(id string) *peer {
	return &peer{id: id}
}

// GetID returns the peer's ID
func (p *peer) GetID() string {
	return p.id
}

// GetType returns the entity type for rpg-toolkit
func (p *peer) GetType() string {
	return peerType
}
