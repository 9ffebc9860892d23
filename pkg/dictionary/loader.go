package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// Dictionary file directives
const (
	directiveAttribute   = "ATTRIBUTE"
	directiveValue       = "VALUE"
	directiveVendor      = "VENDOR"
	directiveBeginVendor = "BEGIN-VENDOR"
	directiveEndVendor   = "END-VENDOR"
)

var errNotDirectory = errors.New("not a directory")

type pass int

const (
	// passDefinitions creates attributes and vendors
	passDefinitions pass = iota + 1
	// passValues attaches VALUE constants to attributes created earlier
	passValues
)

func (p pass) String() string {
	switch p {
	case passDefinitions:
		return "definitions"
	case passValues:
		return "values"
	default:
		return fmt.Sprintf("pass(%d)", int(p))
	}
}

// Load reads every file in dir into the dictionary. Attributes and vendors
// from all files are read before any VALUE line, so values may refer to
// attributes defined in any other file of the same directory.
//
// Load is additive: calling it twice adds everything twice.
func (d *Dictionary) Load(dir string) error {
	files, err := d.listFiles(dir)
	if err != nil {
		return err
	}

	attrsBefore, vendorsBefore := d.Attributes.Len(), d.Vendors.Len()

	for _, p := range []pass{passDefinitions, passValues} {
		for _, file := range files {
			d.readFile(file, p)
		}
	}

	d.logger.Infof("Loaded dictionary %s: %d files, %d attributes, %d vendors",
		dir, len(files), d.Attributes.Len()-attrsBefore, d.Vendors.Len()-vendorsBefore)

	return nil
}

func (d *Dictionary) listFiles(dir string) ([]string, error) {
	info, err := d.fs.Stat(dir)
	if err != nil {
		return nil, &PathNotFoundError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &PathNotFoundError{Path: dir, Err: errNotDirectory}
	}

	entries, err := afero.ReadDir(d.fs, dir)
	if err != nil {
		return nil, &PathNotFoundError{Path: dir, Err: err}
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	return files, nil
}

// readFile runs one pass over a single file. Lines have no length limit.
// Vendor scope always starts closed so an unterminated BEGIN-VENDOR cannot
// leak into the next file.
func (d *Dictionary) readFile(path string, p pass) {
	f, err := d.fs.Open(path)
	if err != nil {
		d.logger.Warnf("Skipping dictionary file %s: %v", path, err)
		return
	}
	defer f.Close()

	var vendor *Vendor
	lineNo := 0

	reader := bufio.NewReader(f)

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lineNo++
			vendor = d.dispatch(vendor, tokenize(line), p, path, lineNo)
		}

		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			d.logger.Errorf("Stopped reading %s at line %d (%s pass): %v", path, lineNo, p, err)
			return
		}
	}
}

// dispatch applies one tokenized line and returns the vendor scope for the
// next line.
func (d *Dictionary) dispatch(vendor *Vendor, fields []string, p pass, path string, lineNo int) *Vendor {
	if len(fields) == 0 {
		return vendor
	}

	switch strings.ToUpper(fields[0]) {
	case directiveBeginVendor:
		return d.beginVendor(fields)
	case directiveEndVendor:
		return nil
	case directiveAttribute:
		if p == passDefinitions {
			d.addAttribute(vendor, fields, path, lineNo)
		}
	case directiveVendor:
		if p == passDefinitions {
			d.addVendor(fields, path, lineNo)
		}
	case directiveValue:
		if p == passValues {
			d.addValue(vendor, fields, path, lineNo)
		}
	}

	return vendor
}

// tokenize splits a line on whitespace. Comment lines yield no tokens.
func tokenize(line string) []string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || trimmed[0] == '#' {
		return nil
	}
	return strings.Fields(trimmed)
}

func (d *Dictionary) beginVendor(fields []string) *Vendor {
	if len(fields) < 2 {
		return nil
	}
	vendor, exists := d.Vendors.FindByName(fields[1])
	if !exists {
		d.logger.Debugf("BEGIN-VENDOR %s: vendor is not defined, using global scope", fields[1])
		return nil
	}
	return vendor
}

func (d *Dictionary) addAttribute(vendor *Vendor, fields []string, path string, lineNo int) {
	if len(fields) < 4 {
		d.logger.Debugf("%s:%d: ATTRIBUTE needs name, id and type", path, lineNo)
		return
	}

	var attr *Attribute
	if vendor != nil {
		attr = vendor.AddAttribute(fields[1], fields[2], fields[3])
	} else {
		attr = d.Attributes.Add(fields[1], fields[2], fields[3])
	}

	if len(fields) > 4 && !strings.HasPrefix(fields[4], "#") {
		attr.Flags = strings.Split(fields[4], ",")
	}
}

func (d *Dictionary) addVendor(fields []string, path string, lineNo int) {
	if len(fields) < 3 {
		d.logger.Debugf("%s:%d: VENDOR needs name and id", path, lineNo)
		return
	}

	id, err := strconv.ParseUint(fields[2], 0, 32)
	if err != nil {
		d.logger.Debugf("%s:%d: invalid vendor id %q for %s", path, lineNo, fields[2], fields[1])
		return
	}

	d.Vendors.Add(fields[1], uint32(id))
}

// addValue attaches a VALUE to the vendor's attribute when one is open and
// defines it, otherwise to the global attribute of the same name.
func (d *Dictionary) addValue(vendor *Vendor, fields []string, path string, lineNo int) {
	if len(fields) < 4 {
		d.logger.Debugf("%s:%d: VALUE needs attribute, name and id", path, lineNo)
		return
	}

	var attr *Attribute
	var exists bool

	if vendor != nil {
		attr, exists = vendor.FindAttributeByName(fields[1])
	}
	if !exists {
		attr, exists = d.Attributes.FindByName(fields[1])
	}
	if !exists {
		d.logger.Debugf("%s:%d: VALUE for unknown attribute %s", path, lineNo, fields[1])
		return
	}

	attr.AddValue(fields[2], fields[3])
}
