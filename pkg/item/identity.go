package item

// FolderType is the item type given to folder items within a project item list.
const FolderType = "Folder"

// Identity is one entry of a project's ordered item list.
type Identity struct {
	// EvaluatedInclude is the item's path exactly as supplied by the project (may be relative,
	// may mix separators).
	EvaluatedInclude Path

	// ItemType is the project item type for the entry (e.g. "Compile", "Folder"), when known.
	ItemType string
}

// Identities is an ordered item list; insertion order defines display-order assignment.
type Identities []Identity

// NewIdentities wraps raw include paths as an ordered item list.
func NewIdentities(includes ...string) Identities {
	identities := make(Identities, len(includes))
	for i, include := range includes {
		identities[i] = Identity{
			EvaluatedInclude: Path(include),
		}
	}
	return identities
}
