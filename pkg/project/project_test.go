package project

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treescope/treescope/pkg/item"
)

const tomlManifest = `name = "app"

[[items]]
include = "Folder1/FileA.cs"
type = "Compile"

[[items]]
include = "Folder1/FileB.cs"
type = "Compile"

[[items]]
include = "Folder2/FileB.cs"
type = "Compile"
`

const yamlManifest = `name: app
items:
  - include: Folder1/FileA.cs
    type: Compile
  - include: Folder1/FileB.cs
    type: Compile
  - include: Folder2/FileB.cs
    type: Compile
`

func fsWithManifest(t *testing.T, path, contents string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(contents), 0o644))
	return fsys
}

func assertAppProject(t *testing.T, p *Project) {
	t.Helper()

	assert.Equal(t, "app", p.Manifest.Name)
	assert.Equal(t, "/src/app", p.Dir)

	items := p.Items()
	require.Len(t, items, 3)
	assert.Equal(t, item.Path("Folder1/FileA.cs"), items[0].EvaluatedInclude)
	assert.Equal(t, item.Path("Folder1/FileB.cs"), items[1].EvaluatedInclude)
	assert.Equal(t, item.Path("Folder2/FileB.cs"), items[2].EvaluatedInclude)
	assert.Equal(t, "Compile", items[0].ItemType)
}

func TestLoad_TOML(t *testing.T) {
	fsys := fsWithManifest(t, "/src/app/project.toml", tomlManifest)

	p, err := Load(fsys, "/src/app/project.toml")
	require.NoError(t, err)
	assertAppProject(t, p)
}

func TestLoad_YAML(t *testing.T) {
	fsys := fsWithManifest(t, "/src/app/project.yaml", yamlManifest)

	p, err := Load(fsys, "/src/app/project.yaml")
	require.NoError(t, err)
	assertAppProject(t, p)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	fsys := fsWithManifest(t, "/src/app/project.xml", "<project/>")

	_, err := Load(fsys, "/src/app/project.xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported manifest format")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/nope/project.toml")
	assert.Error(t, err)
}

func TestLoad_MalformedManifest(t *testing.T) {
	fsys := fsWithManifest(t, "/src/app/project.toml", "name = [not toml")

	_, err := Load(fsys, "/src/app/project.toml")
	assert.Error(t, err)
}

func TestProject_Rooter(t *testing.T) {
	fsys := fsWithManifest(t, "/src/app/project.toml", tomlManifest)
	p, err := Load(fsys, "/src/app/project.toml")
	require.NoError(t, err)

	rooted, err := p.Rooter().MakeRooted(`Folder1\FileA.cs`)
	require.NoError(t, err)
	assert.Equal(t, item.Path("/src/app/Folder1/FileA.cs"), rooted)
}

func TestProject_OrderIndex(t *testing.T) {
	fsys := fsWithManifest(t, "/src/app/project.toml", tomlManifest)
	p, err := Load(fsys, "/src/app/project.toml")
	require.NoError(t, err)

	idx, err := p.OrderIndex()
	require.NoError(t, err)

	order, ok := idx.Evaluate("Folder1", true, "Folder", nil)
	require.True(t, ok)
	assert.Equal(t, 1, order)

	// the duplicated leaf is keyed by its rooted path under the project directory
	order, ok = idx.Evaluate("FileB.cs", false, "Compile", item.Metadata{
		item.FullPathKey: "/src/app/Folder1/FileB.cs",
	})
	require.True(t, ok)
	assert.Equal(t, 3, order)
}

func TestProject_Tree(t *testing.T) {
	fsys := fsWithManifest(t, "/src/app/project.yaml", yamlManifest)
	p, err := Load(fsys, "/src/app/project.yaml")
	require.NoError(t, err)

	tree, err := p.Tree()
	require.NoError(t, err)

	assert.True(t, tree.HasPath("Folder1/FileA.cs"))
	assert.Len(t, tree.AllFiles(), 3)

	n := tree.Node("Folder1/FileB.cs")
	require.NotNil(t, n)
	assert.Equal(t, item.Path("/src/app/Folder1/FileB.cs"), n.RootedPath)
}
