package release

import (
	"fmt"
	"sort"
	"strings"
)

// Component describes one upstream distribution whose release archive the
// installer bundles.
type Component struct {
	Name string
	// Repo is the GitHub owner/name pair.
	Repo string
	// AssetTemplate names the release asset; {version} is replaced with
	// the tag (without a leading "v").
	AssetTemplate string
}

var components = map[string]Component{
	"smapi": {
		Name:          "smapi",
		Repo:          "Pathoschild/SMAPI",
		AssetTemplate: "SMAPI-{version}-installer.zip",
	},
	"stardrop": {
		Name:          "stardrop",
		Repo:          "Floogen/Stardrop",
		AssetTemplate: "Stardrop-win-x64.zip",
	},
}

// KnownComponents returns the managed component names.
func KnownComponents() []string {
	names := make([]string, 0, len(components))
	for name := range components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definition returns the component definition for the provided name.
func Definition(name string) (Component, bool) {
	c, ok := components[strings.ToLower(name)]
	return c, ok
}

func (c Component) assetName(version string) string {
	return strings.ReplaceAll(c.AssetTemplate, "{version}", version)
}

func (c Component) releaseEndpoint() string {
	return fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", c.Repo)
}
