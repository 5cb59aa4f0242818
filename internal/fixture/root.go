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

package fixture

import (
	"fmt"

	"github.com/botobag/qlcore/graphql/ast"
	"github.com/botobag/qlcore/graphql/executor"
	"github.com/botobag/qlcore/graphql/result"
	"github.com/botobag/qlcore/graphql/schema"
	"github.com/botobag/qlcore/graphql/value"

	"go.uber.org/zap"
)

// Root resolves queries against a Data set. It is safe for concurrent use once created.
type Root struct {
	data *Data
	byID map[string]*Character
}

var _ executor.Root = (*Root)(nil)

// NewRoot creates a Root serving data.
func NewRoot(data *Data) *Root {
	byID := make(map[string]*Character, len(data.Characters))
	for _, c := range data.Characters {
		byID[c.ID] = c
	}
	return &Root{
		data: data,
		byID: byID,
	}
}

// Schema implements executor.Root.
func (root *Root) Schema() *schema.Schema {
	return Schema()
}

// Resolve implements executor.Resolver.
func (root *Root) Resolve(ctx *executor.Context, fields []*ast.Field) (result.Value, error) {
	object := make(result.Object, 0, len(fields))
	for _, field := range fields {
		sub := ctx.Sub(field)

		var (
			v   result.Value
			err error
		)
		switch field.Name {
		case "hero":
			v, err = root.resolveHero(sub, field)
		case "human":
			v, err = root.resolveByID(sub, field, "Human")
		case "droid":
			v, err = root.resolveByID(sub, field, "Droid")
		case "characters":
			v, err = root.resolveCharacters(sub, field)
		case "__typename":
			v = result.String("Query")
		default:
			err = fmt.Errorf(`Cannot query field "%s" on type "Query".`, field.Name)
		}
		if err != nil {
			return nil, sub.WrapError(err)
		}

		object = append(object, result.Field(field.ResponseKey(), v))
	}
	return object, nil
}

func (root *Root) resolveHero(ctx *executor.Context, field *ast.Field) (result.Value, error) {
	episode, err := value.OptionalArg(field, "episode", value.Name)
	if err != nil {
		return nil, err
	}

	id, ok := "", false
	if episode != nil {
		id, ok = root.data.Heroes[string(*episode)]
	}
	if !ok {
		id, ok = root.data.Heroes[DefaultHero]
	}
	if !ok {
		return result.Null{}, nil
	}

	return root.resolveCharacter(ctx, field, root.byID[id])
}

// idArg reads the "id" argument, which may also be given positionally.
func idArg(field *ast.Field) (ast.ID, error) {
	if _, ok := field.FindArg("id"); ok {
		return value.Arg(field, "id", value.ID)
	}
	return value.Arg(field, "", value.ID)
}

func (root *Root) resolveByID(ctx *executor.Context, field *ast.Field, typeName string) (result.Value, error) {
	id, err := idArg(field)
	if err != nil {
		return nil, err
	}

	c := root.byID[string(id)]
	if c == nil || c.Type != typeName {
		ctx.Logger().Debug("character not found",
			zap.String("id", string(id)),
			zap.String("type", typeName))
		return result.Null{}, nil
	}
	return root.resolveCharacter(ctx, field, c)
}

func (root *Root) resolveCharacters(ctx *executor.Context, field *ast.Field) (result.Value, error) {
	ids, err := value.Arg(field, "ids", value.List(value.ID))
	if err != nil {
		return nil, err
	}

	list := make(result.List, len(ids))
	for i, id := range ids {
		c := root.byID[string(id)]
		if c == nil {
			list[i] = result.Null{}
			continue
		}
		v, err := root.resolveCharacter(ctx.Index(i), field, c)
		if err != nil {
			return nil, err
		}
		list[i] = v
	}
	return list, nil
}

// resolveCharacter resolves the sub-selection of field on c. Fields of the other implementation of
// Character resolve to null.
func (root *Root) resolveCharacter(ctx *executor.Context, field *ast.Field, c *Character) (result.Value, error) {
	if c == nil {
		return result.Null{}, nil
	}

	object := make(result.Object, 0, len(field.Fields))
	for _, child := range field.Fields {
		var v result.Value = result.Null{}

		switch child.Name {
		case "__typename":
			v = result.String(c.Type)
		case "id":
			v = result.String(c.ID)
		case "name":
			v = result.String(c.Name)
		case "appearsIn":
			episodes := make(result.List, len(c.AppearsIn))
			for i, episode := range c.AppearsIn {
				episodes[i] = result.Enum(episode)
			}
			v = episodes
		case "friends":
			sub := ctx.Sub(child)
			friends := make(result.List, len(c.Friends))
			for i, id := range c.Friends {
				friend, err := root.resolveCharacter(sub.Index(i), child, root.byID[id])
				if err != nil {
					return nil, err
				}
				friends[i] = friend
			}
			v = friends
		case "homePlanet":
			if c.HomePlanet != nil {
				v = result.String(*c.HomePlanet)
			}
		case "primaryFunction":
			if c.PrimaryFunction != nil {
				v = result.String(*c.PrimaryFunction)
			}
		default:
			return nil, ctx.Sub(child).WrapError(
				fmt.Errorf(`Cannot query field "%s" on type "%s".`, child.Name, c.Type))
		}

		object = append(object, result.Field(child.ResponseKey(), v))
	}
	return object, nil
}
