// Package ir provides the in-memory representation of résumé documents.
//
// # Overview
//
// A document is a tree of *Node values.  The tree is a closed tagged union:
// the Type field says which of the value fields are meaningful.
//
//   - NullType: null value
//   - BoolType: boolean (Bool)
//   - NumberType: number (Int64, Float64, or Number as a textual fallback)
//   - StringType: string (String)
//   - ArrayType: ordered sequence of nodes (Values)
//   - ObjectType: string keyed map (Fields and Values)
//
// Consumers switch on Type rather than inspecting which fields are set.
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there will always be the same number of fields as values.  Fields are
// string typed and appear once.  Key order carries no meaning for lookups
// or comparison but is kept for serialization, so a document read from JSON
// is written back with its keys where they were.
//
// # Creating Nodes
//
//	doc := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "basic", Val: ir.FromMap(map[string]*ir.Node{
//	        "name": ir.FromString("Alice"),
//	    })},
//	    {Key: "education", Val: ir.EmptyArray()},
//	})
//
// # Navigation
//
// Nodes carry no parent links.  Code that needs to mutate a node through
// its container resolves a path with package edit, which records the chain
// of containers from the root for the duration of one operation.
//
// # JSON Interoperability
//
//	d, err := json.Marshal(node)
//	node, err := ir.FromJSON(d)
//
// Decoding keeps object keys in input order, decodes integers into Int64
// and other numbers into Float64.
//
// # Thread Safety
//
// Node structures are not thread-safe.  Callers serialize access to a
// document themselves.
package ir
