package catalogs

// File pairs an item record with the filename it was loaded from.
// The publisher writes each record back under the same name.
type File struct {
	// Name is the base filename within the source directory.
	Name string

	// Item is the parsed record.
	Item *Item
}

// Catalog is the full in-memory index of item records from one directory
// scan. The snapshot keeps every successfully parsed file in filename order;
// the index maps item IDs to records for ingredient resolution. Records
// without an ID are in the snapshot only.
type Catalog struct {
	files []File
	index map[string]*Item
}

// New builds a catalog from parsed record files. Files are indexed in the
// given order; when two records declare the same ID the later one wins.
func New(files ...File) *Catalog {
	cat := &Catalog{
		files: files,
		index: make(map[string]*Item, len(files)),
	}
	for _, f := range files {
		if id := f.Item.ID(); id != "" {
			cat.index[id] = f.Item
		}
	}
	return cat
}

// Files returns the snapshot of loaded record files in filename order.
func (c *Catalog) Files() []File {
	return c.files
}

// Item looks up a record by its ID.
func (c *Catalog) Item(id string) (*Item, bool) {
	item, ok := c.index[id]
	return item, ok
}

// Len returns the number of distinct item IDs in the catalog.
func (c *Catalog) Len() int {
	return len(c.index)
}
