package dictionary

import (
	"encoding/json"
)

// AttributeTable is an insertion-ordered set of attributes indexed by name
// and id. Duplicates are accepted; lookups return the first one added.
type AttributeTable struct {
	items  []*Attribute
	byName map[string]*Attribute
	byID   map[string]*Attribute
}

// NewAttributeTable creates an empty attribute table
func NewAttributeTable() *AttributeTable {
	return &AttributeTable{
		byName: make(map[string]*Attribute),
		byID:   make(map[string]*Attribute),
	}
}

// Add creates an attribute, appends it and returns it
func (t *AttributeTable) Add(name, id, attrType string) *Attribute {
	attr := &Attribute{Name: name, ID: id, Type: attrType}
	t.items = append(t.items, attr)

	if _, exists := t.byName[name]; !exists {
		t.byName[name] = attr
	}
	if _, exists := t.byID[id]; !exists {
		t.byID[id] = attr
	}

	return attr
}

// FindByName finds an attribute by name
func (t *AttributeTable) FindByName(name string) (*Attribute, bool) {
	attr, exists := t.byName[name]
	return attr, exists
}

// FindByID finds an attribute by its id as written in the dictionary
func (t *AttributeTable) FindByID(id string) (*Attribute, bool) {
	attr, exists := t.byID[id]
	return attr, exists
}

// Len returns the number of attributes, duplicates included
func (t *AttributeTable) Len() int {
	return len(t.items)
}

// All returns the attributes in insertion order
func (t *AttributeTable) All() []*Attribute {
	out := make([]*Attribute, len(t.items))
	copy(out, t.items)
	return out
}

// MarshalYAML encodes the table as a list of attributes in insertion order
func (t *AttributeTable) MarshalYAML() (interface{}, error) {
	return t.All(), nil
}

// MarshalJSON encodes the table as a list of attributes in insertion order
func (t *AttributeTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.All())
}

// VendorTable is an insertion-ordered set of vendors indexed by name and id
type VendorTable struct {
	items  []*Vendor
	byName map[string]*Vendor
	byID   map[uint32]*Vendor
}

// NewVendorTable creates an empty vendor table
func NewVendorTable() *VendorTable {
	return &VendorTable{
		byName: make(map[string]*Vendor),
		byID:   make(map[uint32]*Vendor),
	}
}

// Add creates a vendor with an empty attribute table and returns it
func (t *VendorTable) Add(name string, id uint32) *Vendor {
	vendor := newVendor(name, id)
	t.items = append(t.items, vendor)

	if _, exists := t.byName[name]; !exists {
		t.byName[name] = vendor
	}
	if _, exists := t.byID[id]; !exists {
		t.byID[id] = vendor
	}

	return vendor
}

// FindByName finds a vendor by name
func (t *VendorTable) FindByName(name string) (*Vendor, bool) {
	vendor, exists := t.byName[name]
	return vendor, exists
}

// FindByID finds a vendor by id
func (t *VendorTable) FindByID(id uint32) (*Vendor, bool) {
	vendor, exists := t.byID[id]
	return vendor, exists
}

// Len returns the number of vendors
func (t *VendorTable) Len() int {
	return len(t.items)
}

// All returns the vendors in insertion order
func (t *VendorTable) All() []*Vendor {
	out := make([]*Vendor, len(t.items))
	copy(out, t.items)
	return out
}

// MarshalYAML encodes the table as a list of vendors in insertion order
func (t *VendorTable) MarshalYAML() (interface{}, error) {
	return t.All(), nil
}

// MarshalJSON encodes the table as a list of vendors in insertion order
func (t *VendorTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.All())
}
