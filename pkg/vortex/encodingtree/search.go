package encodingtree

// FindFirstStructChildren returns the fields of the first struct node found
// in a depth-first pre-order walk. The search stops at the first struct with
// at least one child and never looks inside it, so a struct nested below
// another struct is never returned. It returns nil when no struct is found.
func FindFirstStructChildren(root Node) []Node {
	if root == nil {
		return nil
	}
	if IsStruct(root) {
		return root.Children()
	}
	for _, child := range root.Children() {
		if fields := FindFirstStructChildren(child); len(fields) > 0 {
			return fields
		}
	}
	return nil
}

// ContainsEncoding reports whether root or any of its descendants uses the
// encoding id.
func ContainsEncoding(root Node, id string) bool {
	if root == nil {
		return false
	}
	if root.EncodingID() == id {
		return true
	}
	for _, child := range root.Children() {
		if ContainsEncoding(child, id) {
			return true
		}
	}
	return false
}

// FindColumnsWithEncoding returns the columns whose data uses the encoding id.
//
// If the encoding appears anywhere in the tree every column is returned. In a
// chunked tree a node cannot be attributed to a single column reliably, so
// flagging all of them is preferred over a precise but possibly wrong answer.
// Otherwise the fields of the first struct are matched to columnNames by
// position and each field subtree is checked on its own.
func FindColumnsWithEncoding(root Node, id string, columnNames []string) []string {
	if ContainsEncoding(root, id) {
		return append([]string(nil), columnNames...)
	}

	var matches []string
	fields := FindFirstStructChildren(root)
	for i := 0; i < len(fields) && i < len(columnNames); i++ {
		if ContainsEncoding(fields[i], id) {
			matches = append(matches, columnNames[i])
		}
	}
	return matches
}

// ColumnEncoding is the top-level encoding of a single column.
type ColumnEncoding struct {
	Name        string `json:"name"`
	EncodingID  string `json:"encoding"`
	ByteSize    uint64 `json:"bytes"`
	Description string `json:"description,omitempty"`
}

// ColumnEncodings pairs the fields of the first struct with columnNames by
// position, stopping at the shorter of the two. A nil field keeps its
// position and yields an entry with only the name set. An empty result means
// the columns could not be aligned with the tree.
func ColumnEncodings(root Node, columnNames []string) []ColumnEncoding {
	fields := FindFirstStructChildren(root)
	n := len(fields)
	if len(columnNames) < n {
		n = len(columnNames)
	}
	if n == 0 {
		return nil
	}
	columns := make([]ColumnEncoding, 0, n)
	for i := 0; i < n; i++ {
		column := ColumnEncoding{Name: columnNames[i]}
		if f := fields[i]; f != nil {
			column.EncodingID = f.EncodingID()
			column.ByteSize = f.ByteSize()
			column.Description = Describe(f)
		}
		columns = append(columns, column)
	}
	return columns
}
