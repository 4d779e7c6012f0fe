package user

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Users []User `yaml:"users"`
}

// LoadSeed reads the initial users of the stub service from a YAML file of
// the form:
//
//	users:
//	  - name: Ana
//	    age: 30
//	    email: ana@example.com
func LoadSeed(path string) ([]User, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	var seed seedFile
	if err := yaml.NewDecoder(file).Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}

	return seed.Users, nil
}
