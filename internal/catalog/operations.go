package catalog

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// ArgType enumerates the JSON types an operation argument can take.
type ArgType string

const (
	// ArgTypeString accepts JSON strings.
	ArgTypeString ArgType = "string"
	// ArgTypeNumber accepts JSON numbers.
	ArgTypeNumber ArgType = "number"
	// ArgTypeBoolean accepts JSON booleans.
	ArgTypeBoolean ArgType = "boolean"
)

// ArgSpec declares one argument in an operation's schema.
type ArgSpec struct {
	Name        string  `json:"name" yaml:"name"`
	Type        ArgType `json:"type" yaml:"type"`
	Required    bool    `json:"required" yaml:"required"`
	Description string  `json:"description" yaml:"description"`
}

// Operation describes one named catalog query: the surface shown to MCP
// clients and the CKAN action it maps to. The argument schema is
// closed; anything outside it is rejected before a request is issued.
type Operation struct {
	Name        string    `json:"name" yaml:"name"`
	Action      string    `json:"-" yaml:"-"`
	Description string    `json:"description" yaml:"description"`
	Args        []ArgSpec `json:"arguments" yaml:"arguments"`
}

// operations is the static catalog. Order is the order tools are
// advertised in.
var operations = []Operation{
	{
		Name:        "search-packages",
		Action:      "package_search",
		Description: "Search for datasets (packages) in the data.gov catalog",
		Args: []ArgSpec{
			{Name: "q", Type: ArgTypeString, Description: "Search query matched against dataset metadata"},
			{Name: "sort", Type: ArgTypeString, Description: "Sort order, e.g. 'relevance asc, metadata_modified desc'"},
			{Name: "rows", Type: ArgTypeNumber, Description: "Maximum number of datasets to return"},
			{Name: "start", Type: ArgTypeNumber, Description: "Offset of the first dataset returned"},
		},
	},
	{
		Name:        "show-package",
		Action:      "package_show",
		Description: "Get the full metadata of a single dataset, including its resources",
		Args: []ArgSpec{
			{Name: "id", Type: ArgTypeString, Required: true, Description: "Id or name of the dataset"},
		},
	},
	{
		Name:        "list-groups",
		Action:      "group_list",
		Description: "List the groups (categories) datasets are organized into",
		Args: []ArgSpec{
			{Name: "order_by", Type: ArgTypeString, Description: "Field to order groups by, e.g. 'name' or 'packages'"},
			{Name: "limit", Type: ArgTypeNumber, Description: "Maximum number of groups to return"},
			{Name: "offset", Type: ArgTypeNumber, Description: "Offset of the first group returned"},
			{Name: "all_fields", Type: ArgTypeBoolean, Description: "Return full group dictionaries instead of names"},
		},
	},
	{
		Name:        "list-tags",
		Action:      "tag_list",
		Description: "List tags used across the catalog",
		Args: []ArgSpec{
			{Name: "query", Type: ArgTypeString, Description: "Restrict the listing to tags matching this string"},
			{Name: "all_fields", Type: ArgTypeBoolean, Description: "Return full tag dictionaries instead of names"},
		},
	},
}

// Operations returns the catalog of query operations. The result is a
// copy; callers may mutate it freely.
func Operations() []Operation {
	ops := make([]Operation, len(operations))
	copy(ops, operations)
	for i := range ops {
		args := make([]ArgSpec, len(ops[i].Args))
		copy(args, ops[i].Args)
		ops[i].Args = args
	}
	return ops
}

// Find looks an operation up by name.
func Find(name string) (Operation, bool) {
	for _, op := range operations {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}

// Tool renders the operation as an MCP tool declaration.
func (op Operation) Tool() mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(op.Description)}
	for _, arg := range op.Args {
		propOpts := []mcp.PropertyOption{mcp.Description(arg.Description)}
		if arg.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		switch arg.Type {
		case ArgTypeNumber:
			opts = append(opts, mcp.WithNumber(arg.Name, propOpts...))
		case ArgTypeBoolean:
			opts = append(opts, mcp.WithBoolean(arg.Name, propOpts...))
		default:
			opts = append(opts, mcp.WithString(arg.Name, propOpts...))
		}
	}
	return mcp.NewTool(op.Name, opts...)
}

// argSpec looks an argument up in the operation's schema.
func (op Operation) argSpec(name string) (ArgSpec, bool) {
	for _, spec := range op.Args {
		if spec.Name == name {
			return spec, true
		}
	}
	return ArgSpec{}, false
}
