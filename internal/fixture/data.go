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

// Package fixture provides a sample Root serving the Star Wars schema from YAML data. It backs the
// qlcore command and the end-to-end tests.
package fixture

import (
	"bytes"
	_ "embed" // for go:embed
	"fmt"
	"io"
	"os"

	"github.com/botobag/qlcore/graphql"
	"github.com/botobag/qlcore/graphql/schema"

	"gopkg.in/yaml.v3"
)

// SchemaSDL is the schema definition served by Root.
//
//go:embed starwars.graphql
var SchemaSDL string

//go:embed starwars.yaml
var defaultData []byte

var starWarsSchema = schema.MustParse("starwars.graphql", SchemaSDL)

// Schema returns the schema served by every Root.
func Schema() *schema.Schema {
	return starWarsSchema
}

// Character is an entry of the data file.
type Character struct {
	ID              string   `yaml:"id"`
	Type            string   `yaml:"type"`
	Name            string   `yaml:"name"`
	Friends         []string `yaml:"friends"`
	AppearsIn       []string `yaml:"appearsIn"`
	HomePlanet      *string  `yaml:"homePlanet"`
	PrimaryFunction *string  `yaml:"primaryFunction"`
}

// Data is the content of a data file.
type Data struct {
	Characters []*Character `yaml:"characters"`

	// Heroes maps an episode to the id of its hero. The "default" entry is used for an episode
	// without an entry and when no episode is given.
	Heroes map[string]string `yaml:"heroes"`
}

// DefaultHero is the key of Data.Heroes used when no episode matches.
const DefaultHero = "default"

// Decode reads a data file and checks that it is consistent with the schema.
func Decode(r io.Reader) (*Data, error) {
	const op graphql.Op = "fixture.Decode"

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	data := &Data{}
	if err := decoder.Decode(data); err != nil && err != io.EOF {
		return nil, graphql.NewError("Cannot decode data file.", op, err)
	}

	if err := data.check(); err != nil {
		return nil, graphql.NewError(err.Error(), op)
	}
	return data, nil
}

// DecodeFile is like Decode but reads the named file.
func DecodeFile(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// DefaultData returns a fresh copy of the built-in data set.
func DefaultData() *Data {
	data, err := Decode(bytes.NewReader(defaultData))
	if err != nil {
		panic(err)
	}
	return data
}

func (data *Data) check() error {
	episodes := Schema().Type("Episode")

	ids := make(map[string]bool, len(data.Characters))
	for _, c := range data.Characters {
		if len(c.ID) == 0 {
			return fmt.Errorf("character %q has no id", c.Name)
		}
		if ids[c.ID] {
			return fmt.Errorf("character id %q is used more than once", c.ID)
		}
		ids[c.ID] = true

		if c.Type != "Human" && c.Type != "Droid" {
			return fmt.Errorf("character %q has unknown type %q", c.ID, c.Type)
		}
		for _, episode := range c.AppearsIn {
			if !episodes.HasEnumValue(episode) {
				return fmt.Errorf("character %q appears in unknown episode %q", c.ID, episode)
			}
		}
	}

	for _, c := range data.Characters {
		for _, friend := range c.Friends {
			if !ids[friend] {
				return fmt.Errorf("character %q has unknown friend %q", c.ID, friend)
			}
		}
	}

	for episode, id := range data.Heroes {
		if episode != DefaultHero && !episodes.HasEnumValue(episode) {
			return fmt.Errorf("hero of unknown episode %q", episode)
		}
		if !ids[id] {
			return fmt.Errorf("hero of %q is unknown character %q", episode, id)
		}
	}
	return nil
}
