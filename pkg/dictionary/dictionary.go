package dictionary

import (
	"fmt"
	"io"

	"github.com/mzaccari/circumference/pkg/config"
	"github.com/mzaccari/circumference/pkg/log"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Dictionary holds the global attribute scope and all vendors.
//
// A Dictionary is built by one or more calls to Load and must not be
// modified afterwards; a fully loaded Dictionary is safe for concurrent reads.
type Dictionary struct {
	Attributes *AttributeTable `yaml:"attributes" json:"attributes"`
	Vendors    *VendorTable    `yaml:"vendors" json:"vendors"`

	fs     afero.Fs
	logger log.Logger
}

// Option configures a Dictionary
type Option func(*Dictionary)

// WithFs sets the filesystem dictionaries are read from
func WithFs(fs afero.Fs) Option {
	return func(d *Dictionary) {
		if fs != nil {
			d.fs = fs
		}
	}
}

// WithLogger sets the logger used while loading
func WithLogger(logger log.Logger) Option {
	return func(d *Dictionary) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates an empty dictionary reading from the OS filesystem
func New(opts ...Option) *Dictionary {
	d := &Dictionary{
		Attributes: NewAttributeTable(),
		Vendors:    NewVendorTable(),
		fs:         afero.NewOsFs(),
		logger:     log.NewNopLogger(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// NewFromPath creates a dictionary and loads every file in path.
// On failure no dictionary is returned.
func NewFromPath(path string, opts ...Option) (*Dictionary, error) {
	d := New(opts...)
	if err := d.Load(path); err != nil {
		return nil, err
	}
	return d, nil
}

// Default loads the dictionary directory named by cfg. A nil cfg means
// config.DefaultConfig(). Options are applied after the configured logger.
func Default(cfg *config.Config, opts ...Option) (*Dictionary, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	all := append([]Option{WithLogger(cfg.Logger())}, opts...)
	return NewFromPath(cfg.DictionaryPath, all...)
}

// FindAttributeByName finds a global attribute by name
func (d *Dictionary) FindAttributeByName(name string) (*Attribute, bool) {
	return d.Attributes.FindByName(name)
}

// FindAttributeByID finds a global attribute by id
func (d *Dictionary) FindAttributeByID(id string) (*Attribute, bool) {
	return d.Attributes.FindByID(id)
}

// IsAttributeNameDefined reports whether a global attribute has this name
func (d *Dictionary) IsAttributeNameDefined(name string) bool {
	_, exists := d.Attributes.FindByName(name)
	return exists
}

// IsAttributeIDDefined reports whether a global attribute has this id
func (d *Dictionary) IsAttributeIDDefined(id string) bool {
	_, exists := d.Attributes.FindByID(id)
	return exists
}

// FindVendorByName finds a vendor by name
func (d *Dictionary) FindVendorByName(name string) (*Vendor, bool) {
	return d.Vendors.FindByName(name)
}

// FindVendorByID finds a vendor by id
func (d *Dictionary) FindVendorByID(id uint32) (*Vendor, bool) {
	return d.Vendors.FindByID(id)
}

// FindVendorAttribute finds an attribute in a vendor's private scope
func (d *Dictionary) FindVendorAttribute(vendorName, attrName string) (*Attribute, bool) {
	vendor, exists := d.Vendors.FindByName(vendorName)
	if !exists {
		return nil, false
	}
	return vendor.FindAttributeByName(attrName)
}

// WriteYAML writes the dictionary contents as a YAML document
func (d *Dictionary) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode dictionary: %w", err)
	}

	return enc.Close()
}
