package dictionaries

import (
	"embed"
	"io/fs"

	"github.com/mzaccari/circumference/pkg/dictionary"
	"github.com/spf13/afero"
)

// Dir is the directory to load from FS
const Dir = "."

//go:embed files
var embedded embed.FS

// FS returns a read-only filesystem holding the bundled dictionary files:
//   - RFC 2865 and RFC 2866 attributes and values
//   - Mikrotik vendor attributes
//   - WISPr vendor attributes
func FS() afero.Fs {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		panic(err)
	}
	return afero.FromIOFS{FS: sub}
}

// NewDefault loads the bundled dictionaries. This is a convenience for
// callers without a FreeRADIUS installation.
//
// Example usage:
//
//	dict, err := dictionaries.NewDefault()
//	if err != nil {
//		return err
//	}
//	attr, ok := dict.FindAttributeByName("Service-Type")
func NewDefault(opts ...dictionary.Option) (*dictionary.Dictionary, error) {
	all := append([]dictionary.Option{}, opts...)
	all = append(all, dictionary.WithFs(FS()))
	return dictionary.NewFromPath(Dir, all...)
}
