package assets

// DefaultName names the built-in page, script and style.
const DefaultName = "comment"

// AssetLoader loads host assets by name, without extension.
type AssetLoader interface {
	// LoadPage returns pages/{name}.html or ErrPageNotFound.
	LoadPage(name string) (string, error)
	// LoadScript returns scripts/{name}.js or ErrScriptNotFound.
	LoadScript(name string) (string, error)
	// LoadStyle returns styles/{name}.css or ErrStyleNotFound.
	LoadStyle(name string) (string, error)
}

// kind describes one asset directory.
type kind struct {
	dir      string
	ext      string
	notFound error
}

var (
	pageKind   = kind{dir: "pages", ext: ".html", notFound: ErrPageNotFound}
	scriptKind = kind{dir: "scripts", ext: ".js", notFound: ErrScriptNotFound}
	styleKind  = kind{dir: "styles", ext: ".css", notFound: ErrStyleNotFound}
)

func (k kind) file(name string) string {
	return k.dir + "/" + name + k.ext
}
