package dictionary

import (
	"strconv"
	"strings"
)

// Common attribute data types found in FreeRADIUS dictionaries. The loader
// stores whatever type token a file declares; these are for callers.
const (
	DataTypeString     = "string"
	DataTypeOctets     = "octets"
	DataTypeInteger    = "integer"
	DataTypeIPAddr     = "ipaddr"
	DataTypeDate       = "date"
	DataTypeIPv6Addr   = "ipv6addr"
	DataTypeIPv6Prefix = "ipv6prefix"
	DataTypeIfID       = "ifid"
	DataTypeTLV        = "tlv"
	DataTypeABinary    = "abinary"
)

// Value is a named constant of an enumerated attribute
type Value struct {
	Name string `yaml:"name" json:"name"`
	ID   string `yaml:"id" json:"id"`
}

// Number returns the numeric form of the value id.
func (v *Value) Number() (uint64, bool) {
	return parseNumber(v.ID)
}

// Attribute defines a RADIUS attribute
type Attribute struct {
	Name   string   `yaml:"name" json:"name"`
	ID     string   `yaml:"id" json:"id"`
	Type   string   `yaml:"type" json:"type"`
	Flags  []string `yaml:"flags,omitempty" json:"flags,omitempty"`
	Values []*Value `yaml:"values,omitempty" json:"values,omitempty"`
}

// AddValue appends an enumerated value. Duplicates are not checked.
func (a *Attribute) AddValue(name, id string) *Value {
	v := &Value{Name: name, ID: id}
	a.Values = append(a.Values, v)
	return v
}

// FindValueByName returns the first value with the given name
func (a *Attribute) FindValueByName(name string) (*Value, bool) {
	for _, v := range a.Values {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// FindValueByID returns the first value with the given id
func (a *Attribute) FindValueByID(id string) (*Value, bool) {
	for _, v := range a.Values {
		if v.ID == id {
			return v, true
		}
	}
	return nil, false
}

// HasValues returns true if the attribute has enumerated values
func (a *Attribute) HasValues() bool {
	return len(a.Values) > 0
}

// HasFlag reports whether the attribute was declared with the given flag,
// ignoring any "=value" suffix (e.g. "encrypt" matches "encrypt=1").
func (a *Attribute) HasFlag(flag string) bool {
	for _, f := range a.Flags {
		if f == flag || strings.HasPrefix(f, flag+"=") {
			return true
		}
	}
	return false
}

// Number returns the numeric form of the attribute id. Dotted extended ids
// such as "241.1" are not numbers and report false.
func (a *Attribute) Number() (uint64, bool) {
	return parseNumber(a.ID)
}

// Vendor is a vendor namespace with its own private attribute table
type Vendor struct {
	Name       string          `yaml:"name" json:"name"`
	ID         uint32          `yaml:"id" json:"id"`
	Attributes *AttributeTable `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

func newVendor(name string, id uint32) *Vendor {
	return &Vendor{
		Name:       name,
		ID:         id,
		Attributes: NewAttributeTable(),
	}
}

// AddAttribute adds an attribute to the vendor scope
func (v *Vendor) AddAttribute(name, id, attrType string) *Attribute {
	return v.Attributes.Add(name, id, attrType)
}

// FindAttributeByName looks up a vendor attribute by name
func (v *Vendor) FindAttributeByName(name string) (*Attribute, bool) {
	return v.Attributes.FindByName(name)
}

// FindAttributeByID looks up a vendor attribute by id
func (v *Vendor) FindAttributeByID(id string) (*Attribute, bool) {
	return v.Attributes.FindByID(id)
}

// parseNumber accepts decimal, 0x hex and 0 octal notation.
func parseNumber(s string) (uint64, bool) {
	n, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
