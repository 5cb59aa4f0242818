/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/botobag/qlcore/graphql"
	"github.com/botobag/qlcore/graphql/ast"
	"github.com/botobag/qlcore/graphql/parser"
	"github.com/botobag/qlcore/graphql/token"
)

// parseVariableFlags parses "name=value" pairs where value is a value literal (e.g.,
// `ids=[1000, "1001"]`) and adds them to vars.
func parseVariableFlags(vars ast.Variables, flags []string) error {
	const op graphql.Op = "cli.parseVariableFlags"

	for _, flag := range flags {
		name, literal, found := strings.Cut(flag, "=")
		if !found || len(name) == 0 {
			return graphql.NewError(fmt.Sprintf(`Variable %q must be given as "name=value".`, flag), op)
		}

		value, err := parser.ParseValue(token.NewSource(&token.SourceConfig{
			Body: token.SourceBody(literal),
			Name: "--var " + name,
		}))
		if err != nil {
			return graphql.NewError(fmt.Sprintf("Invalid value for variable %q.", name), op, err)
		}
		vars[name] = value
	}

	return nil
}

// decodeVariablesFile reads a YAML mapping from variable names to values. Strings become string
// literals. Numbers and booleans become names, as they would be written in an operation.
func decodeVariablesFile(vars ast.Variables, path string) error {
	const op graphql.Op = "cli.decodeVariablesFile"

	f, err := os.Open(path)
	if err != nil {
		return graphql.NewError("Cannot read variables file.", op, err)
	}
	defer f.Close()

	var doc yaml.Node
	if err := yaml.NewDecoder(f).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil
		}
		return graphql.NewError("Cannot decode variables file.", op, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return graphql.NewError("Variables file must contain a mapping.", op)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		value, err := valueFromNode(root.Content[i+1])
		if err != nil {
			return graphql.NewError(fmt.Sprintf("Invalid value for variable %q.", name), op, err)
		}
		vars[name] = value
	}

	return nil
}

// valueFromNode converts a YAML node into a value literal.
func valueFromNode(node *yaml.Node) (ast.Value, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return valueFromNode(node.Alias)

	case yaml.SequenceNode:
		values := make([]ast.Value, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := valueFromNode(item)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}
		return ast.ArrayValue{Values: values}, nil

	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!null":
			return ast.NullValue{}, nil
		case "!!int", "!!float", "!!bool":
			return ast.NameValue{Name: ast.Name(node.Value)}, nil
		}
		return ast.StringValue{Value: node.Value}, nil
	}

	return nil, graphql.NewError(
		fmt.Sprintf("Unsupported value at line %d: input objects are not supported.", node.Line),
		graphql.ErrKindUnsupported)
}
