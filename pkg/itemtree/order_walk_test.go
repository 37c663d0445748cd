package itemtree

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treescope/treescope/pkg/item"
	"github.com/treescope/treescope/pkg/itemtree/itemnode"
	"github.com/treescope/treescope/pkg/treeorder"
)

// orderedFixture builds a tree where the item list deliberately disagrees with alphabetical
// order, plus nodes the item list never mentions.
func orderedFixture(t *testing.T) (*ItemTree, *treeorder.OrderIndex) {
	t.Helper()

	items := item.Identities{
		{EvaluatedInclude: "Folder2/FileB.cs", ItemType: "Compile"},
		{EvaluatedInclude: "Folder1/FileB.cs", ItemType: "Compile"},
		{EvaluatedInclude: "Folder1/FileA.cs", ItemType: "Compile"},
		{EvaluatedInclude: "readme.md", ItemType: "None"},
	}

	idx, err := treeorder.NewOrderIndex(items, item.NewDirRooter("/proj"))
	require.NoError(t, err)

	tree, err := NewBuilder("app", items).WithRooter(item.NewDirRooter("/proj")).Build()
	require.NoError(t, err)

	// content the item list never mentioned: an extra folder and a hidden file
	_, err = tree.AddFolder("Extra")
	require.NoError(t, err)
	_, err = tree.AddFile("stray.tmp", "None")
	require.NoError(t, err)

	return tree, idx
}

func TestItemTree_WalkByDisplayOrder(t *testing.T) {
	tree, idx := orderedFixture(t)

	var visited []string
	tree.WalkByDisplayOrder(idx, func(n *itemnode.ItemNode) {
		visited = append(visited, string(n.Path))
	})

	// Folder2 was listed before Folder1, so it sorts first despite its name; unlisted folders
	// come after ordered content and unlisted files come last
	assert.Equal(t, []string{
		"/",
		"/Folder2",
		"/Folder2/FileB.cs",
		"/Folder1",
		"/Folder1/FileB.cs",
		"/Folder1/FileA.cs",
		"/readme.md",
		"/Extra",
		"/stray.tmp",
	}, visited)
}

func TestItemTree_Render(t *testing.T) {
	tree, idx := orderedFixture(t)
	snaps.MatchSnapshot(t, tree.Render(idx))
}
