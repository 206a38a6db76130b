package carousel

// Item is one configured slide source
// IsMulti items expand into one visual entry per resource found at ResourcePath
type Item struct {
	ResourcePath string
	IsMulti      bool
	Actions      []string
}

// Resource is one resolved visual, Body carries whatever the view layer needs to draw it
type Resource struct {
	Name string
	Path string
	Body []byte
}

// Resolver looks up the resources stored under a path
type Resolver interface {
	Resolve(path string) ([]Resource, error)
}

// ResolverFunc adapts a function to Resolver
type ResolverFunc func(path string) ([]Resource, error)

func (f ResolverFunc) Resolve(path string) ([]Resource, error) { return f(path) }

// Entry is one visual item after expansion
type Entry struct {
	Source   int // Index into the configured item list
	Ordinal  int // Position within the source item's resources
	Resource Resource
}

// Catalog is the flattened, immutable item list the engine runs on
type Catalog struct {
	Entries []Entry
	Actions []string
}

// Len returns the number of visual items
func (c Catalog) Len() int {
	return len(c.Entries)
}

// Expand resolves every item into visual entries and flattens the action strings
// A path resolving to nothing is a configuration error, never a silent skip
func Expand(items []Item, resolver Resolver) (Catalog, error) {
	if len(items) == 0 {
		return Catalog{}, configError("", "no items configured")
	}
	if resolver == nil {
		return Catalog{}, configError("", "no resolver")
	}

	var cat Catalog
	for src, item := range items {
		resources, err := resolver.Resolve(item.ResourcePath)
		if err != nil {
			return Catalog{}, &ConfigurationError{Path: item.ResourcePath, Reason: "resolve failed", Err: err}
		}
		if len(resources) == 0 {
			return Catalog{}, configError(item.ResourcePath, "resolved to zero resources")
		}

		if !item.IsMulti {
			resources = resources[:1]
		}
		for ord, res := range resources {
			cat.Entries = append(cat.Entries, Entry{Source: src, Ordinal: ord, Resource: res})
		}
		cat.Actions = append(cat.Actions, item.Actions...)
	}

	return cat, nil
}

// CatalogOf builds a catalog of n anonymous entries, used by hosts that manage content themselves
func CatalogOf(n int, actions ...string) Catalog {
	cat := Catalog{Entries: make([]Entry, n), Actions: actions}
	for i := range cat.Entries {
		cat.Entries[i] = Entry{Source: i}
	}
	return cat
}
