package item

// FullPathKey is the metadata key under which a host supplies a node's fully-qualified path.
const FullPathKey = "FullPath"

// Metadata is the per-node key/value bag handed to order queries by the host tree pipeline.
type Metadata map[string]string

// FullPath returns the node's fully-qualified path, if the host supplied one.
func (m Metadata) FullPath() (Path, bool) {
	value, ok := m[FullPathKey]
	if !ok || value == "" {
		return "", false
	}
	return Path(value), true
}
