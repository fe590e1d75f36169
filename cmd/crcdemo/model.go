package main

import (
	"fmt"
	"os"
	"strings"

	"sigs.k8s.io/yaml"

	crc "github.com/noxworld-dev/noxcrc"
)

func resolveModel(name, file string) (*crc.Model, error) {
	if file != "" {
		return loadModel(file)
	}
	m, ok := crc.Lookup(name)
	if !ok {
		var names []string
		for _, m := range crc.Presets() {
			names = append(names, m.Params().Name)
		}
		return nil, fmt.Errorf("unknown model %q (known: %s)", name, strings.Join(names, ", "))
	}
	return m, nil
}

// loadModel reads CRC parameters from a YAML document such as
//
//	name: CRC-16/IBM-3740
//	width: 16
//	poly: 0x1021
//	init: 0xffff
func loadModel(path string) (*crc.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseModel(data)
}

func parseModel(data []byte) (*crc.Model, error) {
	var p crc.Params
	if err := yaml.Unmarshal(data, &p, yaml.DisallowUnknownFields); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return crc.New(p)
}

func marshalModel(m *crc.Model) ([]byte, error) {
	return yaml.Marshal(m.Params())
}
