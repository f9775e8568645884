// Package yaml loads topic tables from YAML files.
package yaml

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fwojciec/docbot"
	yamlv3 "gopkg.in/yaml.v3"
)

//go:embed topics.yaml
var defaultTopics []byte

// File is the on-disk layout of a topic file.
type File struct {
	Topics []docbot.Topic `yaml:"topics"`
}

// LoadTopics reads a topic table from the YAML file at path.
// Returns ENOTFOUND if the file does not exist.
func LoadTopics(path string) (*docbot.Topics, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided topic file
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, docbot.Errorf(docbot.ENOTFOUND, "topic file %q not found", path)
		}
		return nil, fmt.Errorf("read topic file: %w", err)
	}
	topics, err := ParseTopics(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return topics, nil
}

// ParseTopics builds a topic table from YAML data.
func ParseTopics(data []byte) (*docbot.Topics, error) {
	var f File
	if err := yamlv3.Unmarshal(data, &f); err != nil {
		return nil, docbot.Errorf(docbot.EINVALID, "parse topics: %v", err)
	}
	if len(f.Topics) == 0 {
		return nil, docbot.Errorf(docbot.EINVALID, "no topics defined")
	}
	return docbot.NewTopics(f.Topics)
}

// DefaultTopics returns the built-in topic table.
func DefaultTopics() (*docbot.Topics, error) {
	return ParseTopics(defaultTopics)
}
