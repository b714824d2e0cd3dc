// SPDX-License-Identifier: MIT
// Package: topolab/linkfile
//
// inventory.go - device/interface inventory loaded from YAML.
//
// Document shape:
//
//	devices:
//	  R1:
//	    device_type: router
//	    interfaces:
//	      Gig0/0: {bandwidth: 1000, mtu: 1500}
//	      Gig0/1: {shutdown: true}
//
// The inventory is the output shape of device-configuration ingestion; this
// package only consumes it.

package linkfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// InterfaceAttrs are the known attributes of one interface.
type InterfaceAttrs struct {
	Bandwidth   int    `yaml:"bandwidth" validate:"gte=0"`
	MTU         int    `yaml:"mtu" validate:"omitempty,gte=68,lte=65535"`
	Shutdown    bool   `yaml:"shutdown"`
	Description string `yaml:"description"`
}

// Device is one inventory entry.
type Device struct {
	DeviceType string                    `yaml:"device_type"`
	Interfaces map[string]InterfaceAttrs `yaml:"interfaces" validate:"dive,keys,required,endkeys"`
}

// Inventory maps device names to their interfaces.
type Inventory struct {
	Devices map[string]Device `yaml:"devices" validate:"dive,keys,required,endkeys"`
}

// HasDevice reports whether dev is present (exact match).
func (inv *Inventory) HasDevice(dev string) bool {
	if inv == nil {
		return false
	}
	_, ok := inv.Devices[dev]
	return ok
}

// Interface looks iface up on dev, comparing interface names
// case-insensitively.
func (inv *Inventory) Interface(dev, iface string) (InterfaceAttrs, bool) {
	if inv == nil {
		return InterfaceAttrs{}, false
	}
	d, ok := inv.Devices[dev]
	if !ok {
		return InterfaceAttrs{}, false
	}
	if a, ok := d.Interfaces[iface]; ok {
		return a, true
	}
	for name, a := range d.Interfaces {
		if strings.EqualFold(name, iface) {
			return a, true
		}
	}
	return InterfaceAttrs{}, false
}

// DecodeInventory parses and validates an inventory document.
func DecodeInventory(data []byte) (*Inventory, error) {
	var inv Inventory
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&inv); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("inventory: %w: %w", ErrInputFormat, err)
	}
	if inv.Devices == nil {
		inv.Devices = map[string]Device{}
	}
	if err := validate.Struct(&inv); err != nil {
		return nil, fmt.Errorf("inventory: %w: %s", ErrInputFormat, describe(err))
	}
	return &inv, nil
}

// LoadInventory reads and validates the inventory at path.
// A missing file fails with ErrMissingResource.
func LoadInventory(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("inventory %q: %w", path, ErrMissingResource)
		}
		return nil, fmt.Errorf("inventory %q: %w", path, err)
	}
	inv, err := DecodeInventory(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inv, nil
}

// describe flattens validator errors to "Field: tag" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, e := range verrs {
		if e.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", e.Namespace(), e.Tag(), e.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", e.Namespace(), e.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
