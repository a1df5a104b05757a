// Package testsupport holds helpers shared by fixture-driven tests.
package testsupport

import (
	"encoding/json"
	"os"
	"reflect"
)

func LoadFixture(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func LoadGolden(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// JSONEqual reports whether got holds the same JSON value as the golden file
// at path. Formatting and object key order are ignored.
func JSONEqual(path string, got []byte) (bool, error) {
	var want any
	if err := LoadGolden(path, &want); err != nil {
		return false, err
	}
	var actual any
	if err := json.Unmarshal(got, &actual); err != nil {
		return false, err
	}
	return reflect.DeepEqual(want, actual), nil
}
