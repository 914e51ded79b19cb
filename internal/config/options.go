package config

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for default values and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		// Output and asset paths
		{Key: "output_dir", Default: "public", Comment: "Directory the static site is written to"},
		{Key: "partials_dir", Default: "", Comment: "Directory of partial overrides (header.html, footer.html); empty uses built-ins"},
		{Key: "static_dir", Default: "", Comment: "Extra static assets copied into the output directory"},

		{Key: "http_addr", Default: ":8080", Comment: "HTTP listen address for the serve command"},

		{Key: "site.title", Default: "Portfolio", Comment: "Site title used in the header and page titles"},
		{Key: "site.base_url", Default: "", Comment: "Absolute base URL for generated pages; empty uses relative paths"},

		{Key: "source.url", Default: "", Comment: "Remote catalogue URL (YAML or JSON), tried first"},
		{Key: "source.file", Default: "projects.yaml", Comment: "Local catalogue file, tried when the remote fails"},
		{Key: "source.inline_file", Default: "", Comment: "Last-resort catalogue file bundled with the site"},

		{Key: "render.dialect", Default: "markdown", Comment: "Content dialect: markdown or plain"},

		{Key: "serve.debounce_ms", Default: 250, Comment: "Rebuild debounce for watched files, in milliseconds"},
		{Key: "list.page_size", Default: 200, Comment: "Maximum projects printed per list invocation"},
	}
}
