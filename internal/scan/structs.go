package scan

// goListPackage matches the JSON shape produced by `go list -json` for
// a synthesized single-file package. Only the fields the toolchain
// provider reads are declared.
type goListPackage struct {
	ImportPath string   `json:"ImportPath"`
	Incomplete bool     `json:"Incomplete,omitempty"`
	Imports    []string `json:"Imports,omitempty"`
}

// goModFile matches the JSON shape produced by `go mod edit -json`.
type goModFile struct {
	Module  goModModule    `json:"Module"`
	Require []goModRequire `json:"Require,omitempty"`
}

type goModModule struct {
	Path string `json:"Path"`
}

type goModRequire struct {
	Path     string `json:"Path"`
	Version  string `json:"Version"`
	Indirect bool   `json:"Indirect,omitempty"`
}
